package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"portfolio/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store writes to an S3-compatible endpoint. Buckets must allow public
// reads for the returned URLs to resolve.
type S3Store struct {
	client  *minio.Client
	baseURL string
}

func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.S3Endpoint)
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	s := &S3Store{client: client, baseURL: strings.TrimRight(cfg.PublicBaseURL, "/")}
	if s.baseURL == "" {
		s.baseURL = client.EndpointURL().String()
	}

	for _, b := range Buckets() {
		exists, err := client.BucketExists(ctx, string(b))
		if err != nil {
			return nil, fmt.Errorf("check bucket %s: %w", b, err)
		}
		if exists {
			continue
		}
		if err := client.MakeBucket(ctx, string(b), minio.MakeBucketOptions{Region: cfg.S3Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", b, err)
		}
	}
	return s, nil
}

func (s *S3Store) Put(ctx context.Context, bucket Bucket, key string, r io.Reader, size int64, contentType string) error {
	if err := validateKey(bucket, key); err != nil {
		return err
	}
	if size <= 0 {
		size = -1
	}
	_, err := s.client.PutObject(ctx, string(bucket), key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

func (s *S3Store) PublicURL(bucket Bucket, key string) string {
	return s.baseURL + "/" + string(bucket) + "/" + key
}
