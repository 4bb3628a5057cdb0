package skill

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("skill not found")

type Category string

const (
	CategoryFrontend Category = "Frontend Development"
	CategoryBackend  Category = "Backend Development"
	CategoryMobile   Category = "Mobile Development"
	CategoryData     Category = "Database & Cloud"
	CategoryTooling  Category = "Tools & DevOps"
)

// Categories lists the fixed set in display order.
func Categories() []Category {
	return []Category{CategoryFrontend, CategoryBackend, CategoryMobile, CategoryData, CategoryTooling}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// TranslationKey is the i18n key holding the category's display title.
func (c Category) TranslationKey() string {
	switch c {
	case CategoryFrontend:
		return "skills.category.frontend"
	case CategoryBackend:
		return "skills.category.backend"
	case CategoryMobile:
		return "skills.category.mobile"
	case CategoryData:
		return "skills.category.data"
	case CategoryTooling:
		return "skills.category.tools"
	default:
		return string(c)
	}
}

type Skill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Category  Category
	LogoURL   string
	IsVisible bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
