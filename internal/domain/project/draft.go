package project

import (
	"errors"
	"strings"
)

var ErrTitleAndDescriptionRequired = errors.New("title and description are required")

// Draft is the editable, not-yet-persisted form of a project. Image list
// edits on a draft never touch storage or the database.
type Draft struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	DescriptionEN      string   `json:"description_en"`
	DescriptionFR      string   `json:"description_fr"`
	AboutProject       string   `json:"about_project"`
	AboutProjectEN     string   `json:"about_project_en"`
	AboutProjectFR     string   `json:"about_project_fr"`
	Images             []string `json:"images"`
	LiveDemoLink       string   `json:"live_demo_link"`
	GithubLink         string   `json:"github_link"`
	Technologies       []string `json:"technologies"`
	KeyFeatures        []string `json:"key_features"`
	IsVisible          bool     `json:"is_visible"`
	IsUnderDevelopment bool     `json:"is_under_development"`
}

// NewDraft returns the blank create-mode form.
func NewDraft() Draft {
	return Draft{IsVisible: true, Images: []string{}, Technologies: []string{}, KeyFeatures: []string{}}
}

// DraftFromProject prefills the edit-mode form. Empty language variants are
// seeded from the generic text so the operator edits something meaningful.
func DraftFromProject(p Project) Draft {
	d := Draft{
		Title:              p.Title,
		Description:        p.Description,
		DescriptionEN:      firstNonEmpty(p.DescriptionEN, p.Description),
		DescriptionFR:      firstNonEmpty(p.DescriptionFR, p.Description),
		AboutProject:       p.AboutProject,
		AboutProjectEN:     firstNonEmpty(p.AboutProjectEN, p.AboutProject),
		AboutProjectFR:     firstNonEmpty(p.AboutProjectFR, p.AboutProject),
		Images:             append([]string{}, p.Images...),
		Technologies:       append([]string{}, p.Technologies...),
		KeyFeatures:        append([]string{}, p.KeyFeatures...),
		IsVisible:          p.IsVisible,
		IsUnderDevelopment: p.IsUnderDevelopment,
	}
	if p.LiveDemoLink != nil {
		d.LiveDemoLink = *p.LiveDemoLink
	}
	if p.GithubLink != nil {
		d.GithubLink = *p.GithubLink
	}
	return d
}

// AppendImages adds a batch of uploaded URLs after the existing ones, keeping batch order.
func (d *Draft) AppendImages(urls ...string) {
	d.Images = append(d.Images, urls...)
}

// RemoveImage drops the image at index i. Out-of-range indexes are ignored.
func (d *Draft) RemoveImage(i int) {
	if i < 0 || i >= len(d.Images) {
		return
	}
	out := make([]string, 0, len(d.Images)-1)
	out = append(out, d.Images[:i]...)
	out = append(out, d.Images[i+1:]...)
	d.Images = out
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Description) == "" {
		return ErrTitleAndDescriptionRequired
	}
	return nil
}

// Payload assembles the record written to the store: strings trimmed, empty
// links stored as NULL, list order kept, blank list entries dropped.
func (d Draft) Payload() Project {
	return Project{
		Title:              strings.TrimSpace(d.Title),
		Description:        strings.TrimSpace(d.Description),
		DescriptionEN:      strings.TrimSpace(d.DescriptionEN),
		DescriptionFR:      strings.TrimSpace(d.DescriptionFR),
		AboutProject:       strings.TrimSpace(d.AboutProject),
		AboutProjectEN:     strings.TrimSpace(d.AboutProjectEN),
		AboutProjectFR:     strings.TrimSpace(d.AboutProjectFR),
		Images:             compact(d.Images),
		LiveDemoLink:       nullable(d.LiveDemoLink),
		GithubLink:         nullable(d.GithubLink),
		Technologies:       compact(d.Technologies),
		KeyFeatures:        compact(d.KeyFeatures),
		IsVisible:          d.IsVisible,
		IsUnderDevelopment: d.IsUnderDevelopment,
	}
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
