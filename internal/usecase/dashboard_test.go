package usecase

import (
	"context"
	"testing"

	"portfolio/internal/domain/profile"
	"portfolio/internal/domain/project"
	"portfolio/internal/domain/skill"

	"github.com/google/uuid"
)

func TestDashboard_Get(t *testing.T) {
	owner := uuid.New()
	profiles := newFakeProfileRepo(profile.Profile{ID: uuid.New(), UserID: owner, Name: "Jane"})
	projects := newFakeProjectRepo(
		project.Project{ID: uuid.New(), UserID: owner, Title: "a", IsVisible: true},
		project.Project{ID: uuid.New(), UserID: owner, Title: "b", IsVisible: false},
		project.Project{ID: uuid.New(), UserID: uuid.New(), Title: "other", IsVisible: true},
	)
	skills := newFakeSkillRepo(skill.Skill{ID: uuid.New(), UserID: owner, Name: "Go", Category: skill.CategoryBackend})

	d, err := NewDashboardUsecase(profiles, projects, skills, nil).Get(context.Background(), owner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.Profile == nil || d.Profile.Name != "Jane" {
		t.Fatalf("unexpected profile %+v", d.Profile)
	}
	if len(d.Projects) != 2 {
		t.Fatalf("expected owner projects only, got %d", len(d.Projects))
	}
	if d.Counts != (DashboardCounts{Projects: 2, VisibleProjects: 1, Skills: 1}) {
		t.Fatalf("unexpected counts %+v", d.Counts)
	}
}

func TestDashboard_ReadFailuresDegrade(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.err = errStoreDown
	projects := newFakeProjectRepo()
	projects.err = errStoreDown
	skills := newFakeSkillRepo()
	skills.err = errStoreDown

	d, err := NewDashboardUsecase(profiles, projects, skills, nil).Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected degraded dashboard, got %v", err)
	}
	if d.Profile != nil || len(d.Projects) != 0 || d.Counts != (DashboardCounts{}) {
		t.Fatalf("expected empty dashboard, got %+v", d)
	}
}
