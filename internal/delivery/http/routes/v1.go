package routes

import (
	v1 "portfolio/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, h v1.Handlers) {
	if r == nil {
		return
	}

	v1.Register(r, h)
}
