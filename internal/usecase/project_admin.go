package usecase

import (
	"context"
	"errors"
	"log"

	"portfolio/internal/domain/project"
	"portfolio/internal/infrastructure/storage"
	"portfolio/internal/repository"

	"github.com/google/uuid"
)

type ProjectAdminUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]project.Project, error)
	Get(ctx context.Context, userID, id uuid.UUID) (project.Draft, error)
	Create(ctx context.Context, userID uuid.UUID, d project.Draft) (project.Project, error)
	Update(ctx context.Context, userID, id uuid.UUID, d project.Draft) (project.Project, error)
	Delete(ctx context.Context, userID, id uuid.UUID, confirm bool) error
	ToggleVisibility(ctx context.Context, userID, id uuid.UUID) (bool, error)
	UploadImages(ctx context.Context, userID uuid.UUID, files []FileInput) ([]string, error)
}

type ProjectAdmin struct {
	repo     repository.ProjectRepository
	uploader Uploader
	notifier ContentNotifier
	logger   *log.Logger
}

func NewProjectAdminUsecase(repo repository.ProjectRepository, uploader Uploader, notifier ContentNotifier, logger *log.Logger) *ProjectAdmin {
	return &ProjectAdmin{repo: repo, uploader: uploader, notifier: notifierOrNoop(notifier), logger: logger}
}

func (u *ProjectAdmin) List(ctx context.Context, userID uuid.UUID) ([]project.Project, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		u.logf("[Admin] list projects failed user=%s err=%v", userID, err)
		return nil, ErrInternal
	}
	return items, nil
}

func (u *ProjectAdmin) Get(ctx context.Context, userID, id uuid.UUID) (project.Draft, error) {
	if userID == uuid.Nil {
		return project.Draft{}, ErrUnauthorized
	}
	p, err := u.repo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return project.Draft{}, u.mapRepoError("get", id, err)
	}
	return project.DraftFromProject(p), nil
}

func (u *ProjectAdmin) Create(ctx context.Context, userID uuid.UUID, d project.Draft) (project.Project, error) {
	if userID == uuid.Nil {
		return project.Project{}, ErrUnauthorized
	}
	if err := validateProjectDraft(d); err != nil {
		return project.Project{}, err
	}

	p := d.Payload()
	p.UserID = userID
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.logf("[Admin] create project failed user=%s err=%v", userID, err)
		return project.Project{}, ErrInternal
	}
	u.notifier.ContentUpdated(EntityProject, ActionCreated, created.ID)
	return created, nil
}

func (u *ProjectAdmin) Update(ctx context.Context, userID, id uuid.UUID, d project.Draft) (project.Project, error) {
	if userID == uuid.Nil {
		return project.Project{}, ErrUnauthorized
	}
	if id == uuid.Nil {
		return project.Project{}, ErrInvalidInput
	}
	if err := validateProjectDraft(d); err != nil {
		return project.Project{}, err
	}

	p := d.Payload()
	p.ID = id
	p.UserID = userID
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return project.Project{}, u.mapRepoError("update", id, err)
	}
	u.notifier.ContentUpdated(EntityProject, ActionUpdated, id)
	return updated, nil
}

func (u *ProjectAdmin) Delete(ctx context.Context, userID, id uuid.UUID, confirm bool) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if !confirm {
		return ErrConfirmationRequired
	}
	if err := u.repo.Delete(ctx, id, userID); err != nil {
		return u.mapRepoError("delete", id, err)
	}
	u.notifier.ContentUpdated(EntityProject, ActionDeleted, id)
	return nil
}

func (u *ProjectAdmin) ToggleVisibility(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, ErrUnauthorized
	}
	visible, err := u.repo.ToggleVisibility(ctx, id, userID)
	if err != nil {
		return false, u.mapRepoError("toggle visibility", id, err)
	}
	u.notifier.ContentUpdated(EntityProject, ActionVisibility, id)
	return visible, nil
}

// UploadImages stores a batch of images and returns their URLs in input
// order. No project record is touched; the caller appends the URLs to its draft.
func (u *ProjectAdmin) UploadImages(ctx context.Context, userID uuid.UUID, files []FileInput) ([]string, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return u.uploader.Upload(ctx, userID, storage.BucketProjectImages, files)
}

func (u *ProjectAdmin) mapRepoError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, project.ErrNotFound) {
		return ErrNotFound
	}
	u.logf("[Admin] %s project failed id=%s err=%v", op, id, err)
	return ErrInternal
}

func (u *ProjectAdmin) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func validateProjectDraft(d project.Draft) error {
	if err := d.Validate(); err != nil {
		if errors.Is(err, project.ErrTitleAndDescriptionRequired) {
			return newValidationError("Title and description are required", "title", "description")
		}
		return newValidationError(err.Error())
	}
	return nil
}
