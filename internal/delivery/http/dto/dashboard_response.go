package dto

import (
	"time"

	"portfolio/internal/usecase"

	"github.com/google/uuid"
)

type DashboardProject struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	CoverImage         string    `json:"cover_image"`
	IsVisible          bool      `json:"is_visible"`
	IsUnderDevelopment bool      `json:"is_under_development"`
	CreatedAt          time.Time `json:"created_at"`
}

type DashboardResponse struct {
	Profile  *usecase.ProfileDraft   `json:"profile"`
	Projects []DashboardProject      `json:"projects"`
	Counts   usecase.DashboardCounts `json:"counts"`
}

func NewDashboardResponse(d usecase.Dashboard) DashboardResponse {
	projects := make([]DashboardProject, 0, len(d.Projects))
	for _, p := range d.Projects {
		projects = append(projects, DashboardProject{
			ID:                 p.ID,
			Title:              p.Title,
			CoverImage:         p.CoverImage(),
			IsVisible:          p.IsVisible,
			IsUnderDevelopment: p.IsUnderDevelopment,
			CreatedAt:          p.CreatedAt,
		})
	}
	return DashboardResponse{Profile: d.Profile, Projects: projects, Counts: d.Counts}
}
