package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3ImageStore keeps training images in an S3 bucket using the same
// owner/date key scheme as the local store. Used when the API nodes
// have no shared disk.
type S3ImageStore struct {
	client *s3.Client
	bucket string
}

func NewS3ImageStore(ctx context.Context, bucket, region string) (*S3ImageStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for S3: %w", err)
	}
	return &S3ImageStore{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

func (s *S3ImageStore) Save(data []byte, originalFilename, userUniqueCode string) (string, error) {
	now := time.Now()
	ext := filepath.Ext(originalFilename)
	key := fmt.Sprintf("training-images/%s/%s/%s_%s%s",
		userUniqueCode,
		now.Format("2006/01/02"),
		uuid.New().String(),
		now.Format("150405"),
		ext,
	)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload image to S3: %w", err)
	}
	return key, nil
}

func (s *S3ImageStore) Exists(path string) bool {
	_, err := s.client.HeadObject(context.TODO(), &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	return err == nil
}

func (s *S3ImageStore) Delete(path string) (bool, error) {
	_, err := s.client.HeadObject(context.TODO(), &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("check image on S3: %w", err)
	}

	_, err = s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return false, fmt.Errorf("delete image from S3: %w", err)
	}
	return true, nil
}
