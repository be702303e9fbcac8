package model

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Source resolves a logical artifact name to its serialized bytes.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Location() string
}

// DirSource reads artifacts from a local directory.
type DirSource struct {
	Dir string
}

func (s DirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s DirSource) Location() string { return s.Dir }

// ObjectGetter is the part of the S3 client used to fetch objects, model
// artifacts as well as uploaded resumes.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// BucketSource reads artifacts from an S3 compatible bucket (R2 in production).
type BucketSource struct {
	Client ObjectGetter
	Bucket string
	Prefix string
}

func (s BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(path.Join(s.Prefix, name)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return out.Body, nil
}

func (s BucketSource) Location() string {
	return "s3://" + path.Join(s.Bucket, s.Prefix)
}
