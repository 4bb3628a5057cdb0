package profile

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Profile is the owner's public identity. There is at most one per user.
type Profile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Title           string
	ShortBioEN      string
	ShortBioFR      string
	Description     string
	DescriptionEN   string
	DescriptionFR   string
	About           string
	YearsExperience int
	ProjectsCount   int
	ProfileImage    string
	CVEN            string
	CVFR            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Normalize trims every free-text field in place.
func (p *Profile) Normalize() {
	for _, s := range []*string{
		&p.Name, &p.Title, &p.ShortBioEN, &p.ShortBioFR,
		&p.Description, &p.DescriptionEN, &p.DescriptionFR, &p.About,
		&p.ProfileImage, &p.CVEN, &p.CVFR,
	} {
		*s = strings.TrimSpace(*s)
	}
	if p.YearsExperience < 0 {
		p.YearsExperience = 0
	}
	if p.ProjectsCount < 0 {
		p.ProjectsCount = 0
	}
}
