package dto

import (
	"time"

	"portfolio/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	LogoURL   string    `json:"logo_url"`
	IsVisible bool      `json:"is_visible"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  string(s.Category),
		LogoURL:   s.LogoURL,
		IsVisible: s.IsVisible,
		SortOrder: s.SortOrder,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewSkillResponses(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, NewSkillResponse(s))
	}
	return out
}

// CategoryResponse is one entry of the fixed category list offered by the
// admin skill form.
type CategoryResponse struct {
	Value string `json:"value"`
	Title string `json:"title"`
}
