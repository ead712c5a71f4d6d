package upload

import (
	"context"
	"fmt"
	"time"

	"connectplatform/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// presigned upload URLs expire quickly; the client uploads right away.
const urlExpiry = 5 * time.Minute

// Presigner is the slice of the S3 presign client the service uses.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// PresignedUpload is a one-shot PUT target plus the object's public URL.
type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	Key       string `json:"key"`
}

// UploadService issues presigned upload URLs for profile photos.
type UploadService interface {
	PresignUpload(ctx context.Context, fileName, fileType string) (*PresignedUpload, error)
}

// DefaultUploadService implements UploadService against S3.
type DefaultUploadService struct {
	Presigner Presigner
	Bucket    string
	Region    string
}

// PresignUpload builds a time-limited PUT URL under profile-photos/.
func (s *DefaultUploadService) PresignUpload(ctx context.Context, fileName, fileType string) (*PresignedUpload, error) {
	if fileName == "" {
		fileName = fmt.Sprintf("image-%s.jpg", uuid.New().String())
	}
	if fileType == "" {
		fileType = "image/jpeg"
	}

	key := fmt.Sprintf("profile-photos/%s", fileName)
	req, err := s.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(urlExpiry))
	if err != nil {
		utils.GetLogger().Error("Presigning upload failed",
			zap.String("key", key), zap.Error(err))
		return nil, utils.InternalError("Error generating upload URL", err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		PublicURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, key),
		Key:       key,
	}, nil
}
