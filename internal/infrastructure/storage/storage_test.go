package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	if got := ObjectKey("owner", at, 0, "Photo.PNG"); got != "owner/1700000000123.png" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := ObjectKey("owner", at, 2, "cv.pdf"); got != "owner/1700000000123-2.pdf" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := ObjectKey("owner", at, 0, "noext"); got != "owner/1700000000123.bin" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestLocalStore_PutAndPublicURL(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "http://localhost:8080/storage/")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	key := "abc/123.png"
	if err := s.Put(context.Background(), BucketProjectImages, key, strings.NewReader("img"), 3, "image/png"); err != nil {
		t.Fatalf("put: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "project-images", "abc", "123.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "img" {
		t.Fatalf("unexpected content %q", b)
	}

	if got := s.PublicURL(BucketProjectImages, key); got != "http://localhost:8080/storage/project-images/abc/123.png" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestLocalStore_RejectsBadInput(t *testing.T) {
	s, err := NewLocalStore(t.TempDir(), "/storage")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	err = s.Put(context.Background(), Bucket("nope"), "a.png", strings.NewReader(""), 0, "")
	if !errors.Is(err, ErrUnknownBucket) {
		t.Fatalf("expected ErrUnknownBucket, got %v", err)
	}
	for _, key := range []string{"", "../escape.png", "a/../../b.png", "dir/"} {
		err = s.Put(context.Background(), BucketCVs, key, strings.NewReader(""), 0, "")
		if !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("key %q: expected ErrInvalidKey, got %v", key, err)
		}
	}
}
