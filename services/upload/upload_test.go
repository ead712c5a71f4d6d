package upload

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePresigner records the request and returns a canned URL.
type fakePresigner struct {
	lastKey         string
	lastContentType string
}

func (f *fakePresigner) PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.lastKey = aws.ToString(params.Key)
	f.lastContentType = aws.ToString(params.ContentType)
	return &v4.PresignedHTTPRequest{URL: "https://signed.example.com/put"}, nil
}

func TestPresignUpload_explicitName(t *testing.T) {
	presigner := &fakePresigner{}
	svc := &DefaultUploadService{Presigner: presigner, Bucket: "uploads", Region: "us-east-1"}

	result, err := svc.PresignUpload(context.Background(), "avatar.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, "profile-photos/avatar.png", result.Key)
	assert.Equal(t, "profile-photos/avatar.png", presigner.lastKey)
	assert.Equal(t, "image/png", presigner.lastContentType)
	assert.Equal(t, "https://signed.example.com/put", result.UploadURL)
	assert.Equal(t, "https://uploads.s3.us-east-1.amazonaws.com/profile-photos/avatar.png", result.PublicURL)
}

func TestPresignUpload_defaults(t *testing.T) {
	presigner := &fakePresigner{}
	svc := &DefaultUploadService{Presigner: presigner, Bucket: "uploads", Region: "us-east-1"}

	result, err := svc.PresignUpload(context.Background(), "", "")
	require.NoError(t, err)

	assert.Regexp(t, `^profile-photos/image-[0-9a-f-]+\.jpg$`, result.Key)
	assert.Equal(t, "image/jpeg", presigner.lastContentType)
}
