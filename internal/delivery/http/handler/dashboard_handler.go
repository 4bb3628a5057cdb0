package handler

import (
	"portfolio/internal/delivery/http/dto"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.Get)
}

func (h *DashboardHandler) Get(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	d, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapAdminUsecaseError(err, "", "Not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDashboardResponse(d))
}
