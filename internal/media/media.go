// Package media contains object storage for user uploaded files.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/campusconnect/campus/internal/entities"
)

//go:generate mockgen -destination=./mock/media.go -package=mock -source=media.go

// Object key prefixes.
const (
	PhotoPrefix = "profile_pics"
	StoryPrefix = "stories"
	PostPrefix  = "posts"
)

const uploadTTL = 5 * time.Minute

// Uploader issues pre-signed upload targets.
type Uploader interface {
	// Presign returns upload target for a new object under prefix.
	Presign(ctx context.Context, prefix, contentType string) (*entities.UploadTicket, error)
}

// Options ...
type Options struct {
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type s3Uploader struct {
	presign *s3.PresignClient
	bucket  string
}

// NewS3 creates Uploader over S3 compatible storage.
// Static credentials are used when AccessKey is set, default chain otherwise.
func NewS3(ctx context.Context, o Options) (Uploader, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(o.Region)}
	if o.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(so *s3.Options) {
		if o.Endpoint != "" {
			so.BaseEndpoint = aws.String(o.Endpoint)
			so.UsePathStyle = true
		}
	})

	return s3Uploader{
		presign: s3.NewPresignClient(client),
		bucket:  o.Bucket,
	}, nil
}

func (u s3Uploader) Presign(ctx context.Context, prefix, contentType string) (*entities.UploadTicket, error) {
	key := NewKey(prefix, contentType)

	req, err := u.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = uploadTTL
	})
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &entities.UploadTicket{
		Key:       key,
		URL:       req.URL,
		ExpiresIn: uploadTTL,
	}, nil
}

// NewKey returns unique object key under prefix with extension derived from content type.
func NewKey(prefix, contentType string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), extension(contentType))
}

func extension(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	default:
		return ""
	}
}

// Allowed reports whether files of content type may be uploaded.
func Allowed(contentType string) bool {
	return extension(contentType) != ""
}
