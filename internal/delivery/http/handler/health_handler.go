package handler

import (
	"context"
	"time"

	"portfolio/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is any dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the database as required and Redis as optional:
// the site keeps serving without Redis.
type HealthHandler struct {
	db    Pinger
	redis Pinger
}

func NewHealthHandler(db, redis Pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := fiber.Map{"database": "up", "redis": "up"}
	status := fiber.StatusOK

	if h.db == nil || h.db.Ping(ctx) != nil {
		data["database"] = "down"
		status = fiber.StatusServiceUnavailable
	}
	if h.redis == nil || h.redis.Ping(ctx) != nil {
		data["redis"] = "down"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "degraded", data)
	}
	return response.Success(c, status, response.MessageOK, data)
}
