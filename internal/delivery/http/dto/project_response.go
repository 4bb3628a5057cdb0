package dto

import (
	"time"

	"portfolio/internal/domain/project"

	"github.com/google/uuid"
)

// ProjectResponse is the admin view of a stored project, every language
// variant included.
type ProjectResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	DescriptionEN      string    `json:"description_en"`
	DescriptionFR      string    `json:"description_fr"`
	AboutProject       string    `json:"about_project"`
	AboutProjectEN     string    `json:"about_project_en"`
	AboutProjectFR     string    `json:"about_project_fr"`
	Images             []string  `json:"images"`
	CoverImage         string    `json:"cover_image"`
	LiveDemoLink       *string   `json:"live_demo_link"`
	GithubLink         *string   `json:"github_link"`
	Technologies       []string  `json:"technologies"`
	KeyFeatures        []string  `json:"key_features"`
	IsVisible          bool      `json:"is_visible"`
	IsUnderDevelopment bool      `json:"is_under_development"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewProjectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		DescriptionEN:      p.DescriptionEN,
		DescriptionFR:      p.DescriptionFR,
		AboutProject:       p.AboutProject,
		AboutProjectEN:     p.AboutProjectEN,
		AboutProjectFR:     p.AboutProjectFR,
		Images:             nonNil(p.Images),
		CoverImage:         p.CoverImage(),
		LiveDemoLink:       p.LiveDemoLink,
		GithubLink:         p.GithubLink,
		Technologies:       nonNil(p.Technologies),
		KeyFeatures:        nonNil(p.KeyFeatures),
		IsVisible:          p.IsVisible,
		IsUnderDevelopment: p.IsUnderDevelopment,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func NewProjectResponses(items []project.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

type VisibilityResponse struct {
	ID        uuid.UUID `json:"id"`
	IsVisible bool      `json:"is_visible"`
}

type UploadResponse struct {
	URLs []string `json:"urls"`
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
