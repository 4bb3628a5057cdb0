package v1

import "github.com/gofiber/fiber/v3"

// RegisterAdmin mounts the gated routes. Public routes must already be
// registered on r so /auth/login stays reachable without a token.
func RegisterAdmin(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	authGroup := r.Group("/auth", h.RequireAuth)
	if h.Auth != nil {
		h.Auth.RegisterProtectedRoutes(authGroup)
	}
	if h.User != nil {
		h.User.RegisterRoutes(authGroup)
	}

	admin := r.Group("/admin", h.RequireAuth)
	if h.Dashboard != nil {
		h.Dashboard.RegisterRoutes(admin)
	}
	if h.Project != nil {
		h.Project.RegisterRoutes(admin.Group("/projects"))
	}
	if h.Skill != nil {
		h.Skill.RegisterRoutes(admin.Group("/skills"))
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(admin.Group("/profile"))
	}
}
