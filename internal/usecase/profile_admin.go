package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"portfolio/internal/domain/profile"
	"portfolio/internal/i18n"
	"portfolio/internal/infrastructure/storage"
	"portfolio/internal/repository"

	"github.com/google/uuid"
)

// ProfileDraft is the editable profile form.
type ProfileDraft struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	ShortBioEN      string `json:"short_bio_en"`
	ShortBioFR      string `json:"short_bio_fr"`
	Description     string `json:"description"`
	DescriptionEN   string `json:"description_en"`
	DescriptionFR   string `json:"description_fr"`
	About           string `json:"about"`
	YearsExperience int    `json:"years_experience"`
	ProjectsCount   int    `json:"projects_count"`
	ProfileImage    string `json:"profile_image"`
	CVEN            string `json:"cv_en"`
	CVFR            string `json:"cv_fr"`
}

func profileDraftFrom(p profile.Profile) ProfileDraft {
	return ProfileDraft{
		Name:            p.Name,
		Title:           p.Title,
		ShortBioEN:      p.ShortBioEN,
		ShortBioFR:      p.ShortBioFR,
		Description:     p.Description,
		DescriptionEN:   p.DescriptionEN,
		DescriptionFR:   p.DescriptionFR,
		About:           p.About,
		YearsExperience: p.YearsExperience,
		ProjectsCount:   p.ProjectsCount,
		ProfileImage:    p.ProfileImage,
		CVEN:            p.CVEN,
		CVFR:            p.CVFR,
	}
}

func (d ProfileDraft) record() profile.Profile {
	p := profile.Profile{
		Name:            d.Name,
		Title:           d.Title,
		ShortBioEN:      d.ShortBioEN,
		ShortBioFR:      d.ShortBioFR,
		Description:     d.Description,
		DescriptionEN:   d.DescriptionEN,
		DescriptionFR:   d.DescriptionFR,
		About:           d.About,
		YearsExperience: d.YearsExperience,
		ProjectsCount:   d.ProjectsCount,
		ProfileImage:    d.ProfileImage,
		CVEN:            d.CVEN,
		CVFR:            d.CVFR,
	}
	p.Normalize()
	return p
}

type ProfileAdminUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (ProfileDraft, error)
	Save(ctx context.Context, userID uuid.UUID, d ProfileDraft) (ProfileDraft, error)
	UploadImage(ctx context.Context, userID uuid.UUID, file FileInput) (string, error)
	UploadCV(ctx context.Context, userID uuid.UUID, file FileInput, lang i18n.Language) (string, error)
}

type ProfileAdmin struct {
	repo     repository.ProfileRepository
	uploader Uploader
	notifier ContentNotifier
	logger   *log.Logger
}

func NewProfileAdminUsecase(repo repository.ProfileRepository, uploader Uploader, notifier ContentNotifier, logger *log.Logger) *ProfileAdmin {
	return &ProfileAdmin{repo: repo, uploader: uploader, notifier: notifierOrNoop(notifier), logger: logger}
}

// Get returns the owner's profile form. A missing row yields an empty form.
func (u *ProfileAdmin) Get(ctx context.Context, userID uuid.UUID) (ProfileDraft, error) {
	if userID == uuid.Nil {
		return ProfileDraft{}, ErrUnauthorized
	}
	p, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return ProfileDraft{}, nil
		}
		u.logf("[Admin] load profile failed user=%s err=%v", userID, err)
		return ProfileDraft{}, ErrInternal
	}
	return profileDraftFrom(p), nil
}

func (u *ProfileAdmin) Save(ctx context.Context, userID uuid.UUID, d ProfileDraft) (ProfileDraft, error) {
	if userID == uuid.Nil {
		return ProfileDraft{}, ErrUnauthorized
	}
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.ShortBioEN) == "" {
		missing = append(missing, "short_bio_en")
	}
	if len(missing) > 0 {
		return ProfileDraft{}, newValidationError("Name and short bio (English) are required", missing...)
	}

	p := d.record()
	p.UserID = userID
	saved, err := u.repo.Upsert(ctx, p)
	if err != nil {
		u.logf("[Admin] save profile failed user=%s err=%v", userID, err)
		return ProfileDraft{}, ErrInternal
	}
	u.notifier.ContentUpdated(EntityProfile, ActionUpdated, saved.ID)
	return profileDraftFrom(saved), nil
}

func (u *ProfileAdmin) UploadImage(ctx context.Context, userID uuid.UUID, file FileInput) (string, error) {
	return u.uploadOne(ctx, userID, storage.BucketProfileImages, file)
}

// UploadCV stores the CV file. lang only selects which draft field the
// caller fills; the object key does not depend on it.
func (u *ProfileAdmin) UploadCV(ctx context.Context, userID uuid.UUID, file FileInput, lang i18n.Language) (string, error) {
	if !lang.Valid() {
		return "", ErrInvalidInput
	}
	return u.uploadOne(ctx, userID, storage.BucketCVs, file)
}

func (u *ProfileAdmin) uploadOne(ctx context.Context, userID uuid.UUID, bucket storage.Bucket, file FileInput) (string, error) {
	if userID == uuid.Nil {
		return "", ErrUnauthorized
	}
	urls, err := u.uploader.Upload(ctx, userID, bucket, []FileInput{file})
	if err != nil {
		return "", err
	}
	return urls[0], nil
}

func (u *ProfileAdmin) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
