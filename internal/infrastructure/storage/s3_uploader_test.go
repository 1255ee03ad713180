package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakePutter struct {
	in  *s3.PutObjectInput
	err error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Uploader_Upload(t *testing.T) {
	t.Run("public domain url", func(t *testing.T) {
		f := &fakePutter{}
		u := NewS3Uploader(f, "bucket", "sa-east-1", "https://cdn.empresa.com/")
		url, err := u.Upload(context.Background(), "requisitions/r1/a.pdf", "application/pdf", strings.NewReader("x"), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://cdn.empresa.com/requisitions/r1/a.pdf" {
			t.Fatalf("unexpected url %s", url)
		}
		if aws.ToString(f.in.ContentType) != "application/pdf" || aws.ToInt64(f.in.ContentLength) != 1 {
			t.Fatalf("unexpected input %+v", f.in)
		}
	})

	t.Run("bucket url", func(t *testing.T) {
		u := NewS3Uploader(&fakePutter{}, "bucket", "sa-east-1", "")
		url, _ := u.Upload(context.Background(), "k", "", strings.NewReader(""), 0)
		if url != "https://bucket.s3.sa-east-1.amazonaws.com/k" {
			t.Fatalf("unexpected url %s", url)
		}
	})

	t.Run("failure", func(t *testing.T) {
		u := NewS3Uploader(&fakePutter{err: errors.New("denied")}, "bucket", "sa-east-1", "")
		if _, err := u.Upload(context.Background(), "k", "", strings.NewReader(""), 0); err == nil {
			t.Fatalf("expected error")
		}
	})
}
