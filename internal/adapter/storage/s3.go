// Package storage issues presigned upload URLs for the media bucket.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner is the part of s3.PresignClient used for uploads.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3 implements port.ObjectStorage on one bucket.
type S3 struct {
	presigner Presigner
	bucket    string
}

// NewS3 creates an S3 storage; wrap an *s3.Client with s3.NewPresignClient
// to get the presigner.
func NewS3(presigner Presigner, bucket string) *S3 {
	return &S3{presigner: presigner, bucket: bucket}
}

// PresignPut returns a URL accepting one PUT of key with the given content
// type until ttl elapses.
func (s *S3) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presign put %s: %w", key, err)
	}
	return req.URL, nil
}
