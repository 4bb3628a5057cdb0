package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("project not found")

// Project is a portfolio entry. Images[0] is the cover image.
type Project struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Title              string
	Description        string
	DescriptionEN      string
	DescriptionFR      string
	AboutProject       string
	AboutProjectEN     string
	AboutProjectFR     string
	Images             []string
	LiveDemoLink       *string
	GithubLink         *string
	Technologies       []string
	KeyFeatures        []string
	IsVisible          bool
	IsUnderDevelopment bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (p Project) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
