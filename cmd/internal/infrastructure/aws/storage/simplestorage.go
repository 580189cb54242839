package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// HeadObjectAPI is the part of the S3 client the artifact store needs.
type HeadObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// ArtifactStore answers whether generated documents exist in a bucket.
type ArtifactStore struct {
	bucket string
	client HeadObjectAPI
}

func NewArtifactStore(ctx context.Context, region, bucket string) (*ArtifactStore, error) {
	if bucket == "" {
		return nil, errors.New("s3 bucket name is empty")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return NewArtifactStoreWithClient(s3.NewFromConfig(cfg), bucket), nil
}

func NewArtifactStoreWithClient(client HeadObjectAPI, bucket string) *ArtifactStore {
	return &ArtifactStore{
		bucket: bucket,
		client: client,
	}
}

// Exists reports whether the object keyed by path is present. A leading
// slash is ignored, so "/signed/a.pdf" and "signed/a.pdf" are the same key.
func (s *ArtifactStore) Exists(ctx context.Context, path string) (bool, error) {
	key := strings.TrimLeft(path, "/")
	if key == "" {
		return false, nil
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("head object %s: %w", key, err)
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}

	// HeadObject has no body, so some endpoints only report the status text.
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}
