package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"portfolio/internal/domain/skill"
	"portfolio/internal/infrastructure/storage"
	"portfolio/internal/repository"

	"github.com/google/uuid"
)

type SkillInput struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	LogoURL   string `json:"logo_url"`
	IsVisible *bool  `json:"is_visible"`
}

type SkillAdminUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	Create(ctx context.Context, userID uuid.UUID, in SkillInput) (skill.Skill, error)
	Update(ctx context.Context, userID, id uuid.UUID, in SkillInput) (skill.Skill, error)
	Delete(ctx context.Context, userID, id uuid.UUID, confirm bool) error
	ToggleVisibility(ctx context.Context, userID, id uuid.UUID) (bool, error)
	UploadLogo(ctx context.Context, userID uuid.UUID, file FileInput) (string, error)
}

type SkillAdmin struct {
	repo     repository.SkillRepository
	uploader Uploader
	notifier ContentNotifier
	logger   *log.Logger
}

func NewSkillAdminUsecase(repo repository.SkillRepository, uploader Uploader, notifier ContentNotifier, logger *log.Logger) *SkillAdmin {
	return &SkillAdmin{repo: repo, uploader: uploader, notifier: notifierOrNoop(notifier), logger: logger}
}

func (u *SkillAdmin) List(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		u.logf("[Admin] list skills failed user=%s err=%v", userID, err)
		return nil, ErrInternal
	}
	return items, nil
}

// Create appends the skill at the end of its category.
func (u *SkillAdmin) Create(ctx context.Context, userID uuid.UUID, in SkillInput) (skill.Skill, error) {
	if userID == uuid.Nil {
		return skill.Skill{}, ErrUnauthorized
	}
	s, err := validateSkillInput(in)
	if err != nil {
		return skill.Skill{}, err
	}
	s.UserID = userID
	if in.IsVisible == nil {
		s.IsVisible = true
	}

	next, err := u.repo.NextSortOrder(ctx, userID, s.Category)
	if err != nil {
		u.logf("[Admin] skill sort order failed user=%s err=%v", userID, err)
		return skill.Skill{}, ErrInternal
	}
	s.SortOrder = next

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		u.logf("[Admin] create skill failed user=%s err=%v", userID, err)
		return skill.Skill{}, ErrInternal
	}
	u.notifier.ContentUpdated(EntitySkill, ActionCreated, created.ID)
	return created, nil
}

// Update keeps the position unless the category changes, in which case the
// skill moves to the end of the new category.
func (u *SkillAdmin) Update(ctx context.Context, userID, id uuid.UUID, in SkillInput) (skill.Skill, error) {
	if userID == uuid.Nil {
		return skill.Skill{}, ErrUnauthorized
	}
	s, err := validateSkillInput(in)
	if err != nil {
		return skill.Skill{}, err
	}

	current, err := u.repo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return skill.Skill{}, u.mapRepoError("load", id, err)
	}

	s.ID = id
	s.UserID = userID
	s.SortOrder = current.SortOrder
	if in.IsVisible == nil {
		s.IsVisible = current.IsVisible
	}
	if s.Category != current.Category {
		next, err := u.repo.NextSortOrder(ctx, userID, s.Category)
		if err != nil {
			u.logf("[Admin] skill sort order failed user=%s err=%v", userID, err)
			return skill.Skill{}, ErrInternal
		}
		s.SortOrder = next
	}

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return skill.Skill{}, u.mapRepoError("update", id, err)
	}
	u.notifier.ContentUpdated(EntitySkill, ActionUpdated, id)
	return updated, nil
}

func (u *SkillAdmin) Delete(ctx context.Context, userID, id uuid.UUID, confirm bool) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if !confirm {
		return ErrConfirmationRequired
	}
	if err := u.repo.Delete(ctx, id, userID); err != nil {
		return u.mapRepoError("delete", id, err)
	}
	u.notifier.ContentUpdated(EntitySkill, ActionDeleted, id)
	return nil
}

func (u *SkillAdmin) ToggleVisibility(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, ErrUnauthorized
	}
	visible, err := u.repo.ToggleVisibility(ctx, id, userID)
	if err != nil {
		return false, u.mapRepoError("toggle visibility", id, err)
	}
	u.notifier.ContentUpdated(EntitySkill, ActionVisibility, id)
	return visible, nil
}

func (u *SkillAdmin) UploadLogo(ctx context.Context, userID uuid.UUID, file FileInput) (string, error) {
	if userID == uuid.Nil {
		return "", ErrUnauthorized
	}
	urls, err := u.uploader.Upload(ctx, userID, storage.BucketSkillLogos, []FileInput{file})
	if err != nil {
		return "", err
	}
	return urls[0], nil
}

func (u *SkillAdmin) mapRepoError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, skill.ErrNotFound) {
		return ErrNotFound
	}
	u.logf("[Admin] %s skill failed id=%s err=%v", op, id, err)
	return ErrInternal
}

func (u *SkillAdmin) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func validateSkillInput(in SkillInput) (skill.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return skill.Skill{}, newValidationError("Skill name is required", "name")
	}
	category := skill.Category(strings.TrimSpace(in.Category))
	if !category.Valid() {
		return skill.Skill{}, newValidationError("Unknown skill category", "category")
	}
	s := skill.Skill{Name: name, Category: category, LogoURL: strings.TrimSpace(in.LogoURL)}
	if in.IsVisible != nil {
		s.IsVisible = *in.IsVisible
	}
	return s, nil
}
