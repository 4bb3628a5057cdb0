package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"portfolio/internal/infrastructure/storage"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	MaxUploadSize = 10 << 20

	uploadConcurrency = 4
)

// FileInput is one uploaded file as received by the transport.
type FileInput struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

type Uploader interface {
	Upload(ctx context.Context, owner uuid.UUID, bucket storage.Bucket, files []FileInput) ([]string, error)
}

// StorageUploader writes a batch concurrently. The returned URLs are in the
// order of files. The first failure fails the batch; objects already written
// by sibling uploads are left in place.
type StorageUploader struct {
	store  storage.Store
	logger *log.Logger
	now    func() time.Time
}

func NewStorageUploader(store storage.Store, logger *log.Logger) *StorageUploader {
	return &StorageUploader{store: store, logger: logger, now: time.Now}
}

func (u *StorageUploader) Upload(ctx context.Context, owner uuid.UUID, bucket storage.Bucket, files []FileInput) ([]string, error) {
	if owner == uuid.Nil || len(files) == 0 {
		return nil, ErrInvalidInput
	}
	for _, f := range files {
		if err := checkFile(bucket, f); err != nil {
			return nil, err
		}
	}

	at := u.now()
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for i, f := range files {
		g.Go(func() error {
			key := storage.ObjectKey(owner.String(), at, i, f.Filename)
			if err := u.put(gctx, bucket, key, f); err != nil {
				return err
			}
			urls[i] = u.store.PublicURL(bucket, key)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Storage] upload failed bucket=%s owner=%s err=%v", bucket, owner, err)
		}
		return nil, ErrInternal
	}
	return urls, nil
}

func (u *StorageUploader) put(ctx context.Context, bucket storage.Bucket, key string, f FileInput) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Filename, err)
	}
	defer func() { _ = rc.Close() }()
	return u.store.Put(ctx, bucket, key, rc, f.Size, f.ContentType)
}

func checkFile(bucket storage.Bucket, f FileInput) error {
	if f.Open == nil {
		return ErrInvalidInput
	}
	if f.Size > MaxUploadSize {
		return ErrFileTooLarge
	}
	ct := strings.ToLower(strings.TrimSpace(f.ContentType))
	switch bucket {
	case storage.BucketCVs:
		if ct != "application/pdf" {
			return ErrUnsupportedFile
		}
	case storage.BucketProfileImages, storage.BucketProjectImages, storage.BucketSkillLogos:
		if !strings.HasPrefix(ct, "image/") {
			return ErrUnsupportedFile
		}
	default:
		return ErrInvalidInput
	}
	return nil
}
