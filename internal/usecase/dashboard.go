package usecase

import (
	"context"
	"errors"
	"log"

	"portfolio/internal/domain/profile"
	"portfolio/internal/domain/project"
	"portfolio/internal/repository"

	"github.com/google/uuid"
)

type DashboardCounts struct {
	Projects        int `json:"projects"`
	VisibleProjects int `json:"visible_projects"`
	Skills          int `json:"skills"`
}

type Dashboard struct {
	Profile  *ProfileDraft     `json:"profile"`
	Projects []project.Project `json:"-"`
	Counts   DashboardCounts   `json:"counts"`
}

type DashboardUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (Dashboard, error)
}

// DashboardService assembles the admin landing page. Each read fails on its
// own: a broken read leaves its part empty and is logged.
type DashboardService struct {
	profiles repository.ProfileRepository
	projects repository.ProjectRepository
	skills   repository.SkillRepository
	logger   *log.Logger
}

func NewDashboardUsecase(
	profiles repository.ProfileRepository,
	projects repository.ProjectRepository,
	skills repository.SkillRepository,
	logger *log.Logger,
) *DashboardService {
	return &DashboardService{profiles: profiles, projects: projects, skills: skills, logger: logger}
}

func (u *DashboardService) Get(ctx context.Context, userID uuid.UUID) (Dashboard, error) {
	if userID == uuid.Nil {
		return Dashboard{}, ErrUnauthorized
	}

	d := Dashboard{Projects: make([]project.Project, 0)}

	p, err := u.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		draft := profileDraftFrom(p)
		d.Profile = &draft
	case !errors.Is(err, profile.ErrNotFound):
		u.logf("[Admin] dashboard profile failed user=%s err=%v", userID, err)
	}

	if items, err := u.projects.ListByUser(ctx, userID); err != nil {
		u.logf("[Admin] dashboard projects failed user=%s err=%v", userID, err)
	} else {
		d.Projects = items
	}

	if total, visible, err := u.projects.CountByUser(ctx, userID); err != nil {
		u.logf("[Admin] dashboard project counts failed user=%s err=%v", userID, err)
	} else {
		d.Counts.Projects = total
		d.Counts.VisibleProjects = visible
	}

	if n, err := u.skills.CountByUser(ctx, userID); err != nil {
		u.logf("[Admin] dashboard skill count failed user=%s err=%v", userID, err)
	} else {
		d.Counts.Skills = n
	}

	return d, nil
}

func (u *DashboardService) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
