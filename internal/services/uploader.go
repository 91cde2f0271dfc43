package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	appconfig "github.com/mosorio19/Lomito/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader stores an uploaded file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, folder, filename string, body io.Reader) (string, error)
}

// S3Uploader stores photos in an S3 bucket.
type S3Uploader struct {
	client     *s3.Client
	bucket     string
	region     string
	publicBase string
}

// NewS3Uploader creates an uploader for the configured bucket. Static
// credentials and a custom endpoint are used when configured, otherwise
// the default AWS credential chain applies.
func NewS3Uploader(cfg appconfig.AWSConfig) (*S3Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:     client,
		bucket:     cfg.S3Bucket,
		region:     cfg.Region,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
	}, nil
}

// Upload puts the file under {folder}/{uuid}{ext} and returns the
// public object URL.
func (u *S3Uploader) Upload(ctx context.Context, folder, filename string, body io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentTypeForExt(ext)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	if u.publicBase != "" {
		return fmt.Sprintf("%s/%s", u.publicBase, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
