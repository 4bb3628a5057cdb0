package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"portfolio/internal/domain/profile"
	"portfolio/internal/i18n"

	"github.com/google/uuid"
)

func TestProfileAdmin_GetMissingIsEmptyDraft(t *testing.T) {
	uc := NewProfileAdminUsecase(newFakeProfileRepo(), nil, nil, nil)
	d, err := uc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d != (ProfileDraft{}) {
		t.Fatalf("expected empty draft, got %+v", d)
	}
}

func TestProfileAdmin_SaveValidatesBeforeWrite(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewProfileAdminUsecase(repo, nil, nil, nil)

	_, err := uc.Save(context.Background(), uuid.New(), ProfileDraft{Name: "Jane"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0] != "short_bio_en" {
		t.Fatalf("unexpected fields %v", ve.Fields)
	}
	if repo.calls != 0 {
		t.Fatalf("expected no store call")
	}
}

func TestProfileAdmin_SaveUpsertsPerOwner(t *testing.T) {
	owner := uuid.New()
	repo := newFakeProfileRepo(profile.Profile{ID: uuid.New(), UserID: owner, Name: "Old"})
	n := &recordingNotifier{}
	uc := NewProfileAdminUsecase(repo, nil, n, nil)

	saved, err := uc.Save(context.Background(), owner, ProfileDraft{Name: " Jane ", ShortBioEN: "bio", YearsExperience: -2})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Name != "Jane" || saved.YearsExperience != 0 {
		t.Fatalf("expected normalized draft, got %+v", saved)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected one profile per owner, got %d", len(repo.items))
	}
	if len(n.events) != 1 || n.events[0] != "profile:updated" {
		t.Fatalf("unexpected events %v", n.events)
	}
}

func TestProfileAdmin_UploadCV(t *testing.T) {
	store := newMemStore()
	uc := NewProfileAdminUsecase(newFakeProfileRepo(), NewStorageUploader(store, nil), nil, nil)
	owner := uuid.New()

	url, err := uc.UploadCV(context.Background(), owner, textFile("cv.pdf", "application/pdf", "%PDF"), i18n.French)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.Contains(url, "/cvs/"+owner.String()+"/") {
		t.Fatalf("unexpected url %q", url)
	}
	if _, err := uc.UploadCV(context.Background(), owner, textFile("cv.png", "image/png", "x"), i18n.English); !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}
