package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/polotecnico/gestionale-api/config"
)

// ArchiveInterface defines the invoice archive operations
type ArchiveInterface interface {
	StoreInvoice(filename string, pdf []byte) (string, error)
	GetPresignedURL(key string) (string, error)
	DeleteInvoice(key string) error
}

// ArchiveService keeps a copy of every generated invoice in an S3 bucket.
// The archive is optional: the tool runs without AWS configuration and
// simply skips archival.
type ArchiveService struct {
	client *s3.Client
	bucket string
}

var archiveServiceInstance ArchiveInterface

// InitArchiveService initializes the invoice archive with AWS credentials
func InitArchiveService() (ArchiveInterface, error) {
	cfg := appConfig.GetConfig()

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig)

	archiveServiceInstance = &ArchiveService{
		client: client,
		bucket: cfg.AWSS3Bucket,
	}

	return archiveServiceInstance, nil
}

// GetArchiveService returns the initialized archive service instance
func GetArchiveService() ArchiveInterface {
	return archiveServiceInstance
}

// SetArchiveService sets the archive service instance (primarily for testing)
func SetArchiveService(service ArchiveInterface) {
	archiveServiceInstance = service
}

// StoreInvoice uploads a rendered invoice PDF and returns its S3 key.
// Key format: fatture/{timestamp}_{filename}
func (s *ArchiveService) StoreInvoice(filename string, pdf []byte) (string, error) {
	key := fmt.Sprintf("fatture/%d_%s", time.Now().Unix(), filename)

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload invoice to S3: %w", err)
	}

	return key, nil
}

// GetPresignedURL generates a presigned URL for a stored invoice.
// The URL expires after 1 hour.
func (s *ArchiveService) GetPresignedURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	presignClient := s3.NewPresignClient(s.client)
	request, err := presignClient.PresignGetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	log.Printf("Generated presigned URL for invoice %s", key)
	return request.URL, nil
}

// DeleteInvoice removes a stored invoice from the archive
func (s *ArchiveService) DeleteInvoice(key string) error {
	if key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete invoice from S3: %w", err)
	}

	return nil
}
