package utils

import (
	"context"
	"log"
	"time"

	"connectplatform/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	chimeClient *chimesdkmeetings.Client
	s3Presigner *s3.PresignClient
)

// InitAWS builds the shared AWS clients (Chime SDK meetings, S3 presigner)
// from the default credential chain and the configured region.
func InitAWS() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.AppConfig.AWSRegion))
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}

	chimeClient = chimesdkmeetings.NewFromConfig(cfg)
	s3Presigner = s3.NewPresignClient(s3.NewFromConfig(cfg))
}

// GetChimeClient returns the shared Chime SDK meetings client.
func GetChimeClient() *chimesdkmeetings.Client {
	if chimeClient == nil {
		InitAWS()
	}
	return chimeClient
}

// GetS3Presigner returns the shared S3 presign client.
func GetS3Presigner() *s3.PresignClient {
	if s3Presigner == nil {
		InitAWS()
	}
	return s3Presigner
}
