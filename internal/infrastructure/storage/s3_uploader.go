package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"requisicoes/internal/usecase/interfaces"
)

// PutObjectAPI is the subset of *s3.Client used by the uploader.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores requisition attachments in a bucket.
type S3Uploader struct {
	client       PutObjectAPI
	bucket       string
	region       string
	publicDomain string
}

var _ interfaces.IAttachmentStorage = (*S3Uploader)(nil)

// NewS3Client builds the client; a custom endpoint (MinIO, localstack) switches to
// path-style addressing.
func NewS3Client(cfg aws.Config, endpoint string) *s3.Client {
	endpoint = strings.TrimSpace(endpoint)
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewS3Uploader(client PutObjectAPI, bucket, region, publicDomain string) *S3Uploader {
	return &S3Uploader{
		client:       client,
		bucket:       bucket,
		region:       region,
		publicDomain: strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(publicDomain, "https://"), "http://"), "/"),
	}
}

// Upload stores body under key and returns its public URL.
func (u *S3Uploader) Upload(ctx context.Context, key string, contentType string, body io.Reader, size int64) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}
	if _, err := u.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return u.URL(key), nil
}

func (u *S3Uploader) URL(key string) string {
	if u.publicDomain != "" {
		return fmt.Sprintf("https://%s/%s", u.publicDomain, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
