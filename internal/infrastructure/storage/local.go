package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps objects under <dir>/<bucket>/<key>. The HTTP app serves
// dir at the configured public base URL.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "./storage"
	}
	for _, b := range Buckets() {
		if err := os.MkdirAll(filepath.Join(dir, string(b)), 0o755); err != nil {
			return nil, fmt.Errorf("create bucket dir %s: %w", b, err)
		}
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Put(ctx context.Context, bucket Bucket, key string, r io.Reader, _ int64, _ string) error {
	if err := validateKey(bucket, key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	full := filepath.Join(s.dir, string(bucket), filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close object: %w", err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return fmt.Errorf("rename object: %w", err)
	}
	return nil
}

func (s *LocalStore) PublicURL(bucket Bucket, key string) string {
	return s.baseURL + "/" + string(bucket) + "/" + key
}
