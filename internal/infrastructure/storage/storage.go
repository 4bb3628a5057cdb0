package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"portfolio/internal/config"
)

type Bucket string

const (
	BucketProfileImages Bucket = "profile-images"
	BucketCVs           Bucket = "cvs"
	BucketProjectImages Bucket = "project-images"
	BucketSkillLogos    Bucket = "skill-logos"
)

func Buckets() []Bucket {
	return []Bucket{BucketProfileImages, BucketCVs, BucketProjectImages, BucketSkillLogos}
}

func (b Bucket) Valid() bool {
	for _, known := range Buckets() {
		if b == known {
			return true
		}
	}
	return false
}

var (
	ErrUnknownBucket = errors.New("unknown bucket")
	ErrInvalidKey    = errors.New("invalid object key")
)

// Store writes uploaded objects and resolves the URL they are served from.
type Store interface {
	Put(ctx context.Context, bucket Bucket, key string, r io.Reader, size int64, contentType string) error
	PublicURL(bucket Bucket, key string) string
}

// New builds the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStore(cfg.Dir, cfg.PublicBaseURL)
	case "s3":
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// ObjectKey builds "<owner>/<unix-millis>[-<n>].<ext>". index > 0 adds the
// batch suffix so files uploaded in the same millisecond stay distinct.
func ObjectKey(owner string, at time.Time, index int, filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		ext = "bin"
	}
	base := fmt.Sprintf("%s/%d", owner, at.UnixMilli())
	if index > 0 {
		base = fmt.Sprintf("%s-%d", base, index)
	}
	return base + "." + ext
}

func validateKey(bucket Bucket, key string) error {
	if !bucket.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}
	clean := path.Clean("/" + key)
	if key == "" || strings.HasSuffix(key, "/") || clean != "/"+key {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
