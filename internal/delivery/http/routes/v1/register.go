package v1

import (
	"portfolio/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers is everything mounted under /api/v1. A nil handler leaves its
// routes unmounted.
type Handlers struct {
	Public      *handler.PublicHandler
	Preferences *handler.PreferencesHandler
	Contact     *handler.ContactHandler
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Project     *handler.ProjectHandler
	Skill       *handler.SkillHandler
	Profile     *handler.ProfileHandler
	Dashboard   *handler.DashboardHandler

	// RequireAuth guards the session and admin routes.
	RequireAuth fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	RegisterPublic(r, h)

	if h.RequireAuth == nil {
		return
	}
	RegisterAdmin(r, h)
}
