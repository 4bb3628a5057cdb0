package v1

import "github.com/gofiber/fiber/v3"

func RegisterPublic(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Public != nil {
		h.Public.RegisterRoutes(r)
	}
	if h.Preferences != nil {
		h.Preferences.RegisterRoutes(r)
	}
	if h.Contact != nil {
		h.Contact.RegisterRoutes(r)
	}
	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
}
