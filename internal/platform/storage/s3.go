// Package storage stores image attachments in an S3-compatible object store.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/blazer444/Talkalot/internal/config"
)

// ErrInvalidImageData is returned when the payload is not a base64 data URL.
var ErrInvalidImageData = errors.New("invalid image data")

// S3Storage uploads images and returns their public URLs.
type S3Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Storage builds the S3 client from the server configuration. Works
// against AWS as well as MinIO-style endpoints via S3_BASE_ENDPOINT.
func NewS3Storage(ctx context.Context, cfg *config.Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		}
	})

	return &S3Storage{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}, nil
}

// UploadImage decodes a base64 data URL, stores the bytes under a fresh key
// and returns the public URL of the object.
func (s *S3Storage) UploadImage(ctx context.Context, data string) (string, error) {
	contentType, raw, err := decodeDataURL(data)
	if err != nil {
		return "", err
	}

	key := storageKey()
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// storageKey builds a date-sharded object key with a random suffix.
func storageKey() string {
	d := time.Now()
	return fmt.Sprintf("images/%d/%02d/%02d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

// decodeDataURL splits a "data:<type>;base64,<payload>" string into its
// content type and decoded bytes. A bare base64 payload is accepted too and
// treated as PNG.
func decodeDataURL(data string) (string, []byte, error) {
	contentType := "image/png"
	payload := data

	if strings.HasPrefix(data, "data:") {
		meta, rest, ok := strings.Cut(data[len("data:"):], ",")
		if !ok {
			return "", nil, ErrInvalidImageData
		}
		payload = rest
		if ct, found := strings.CutSuffix(meta, ";base64"); found && ct != "" {
			contentType = ct
		} else if !found {
			return "", nil, ErrInvalidImageData
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalidImageData
	}
	return contentType, raw, nil
}
