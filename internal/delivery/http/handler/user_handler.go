package handler

import (
	"portfolio/internal/delivery/http/dto"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"
	useruc "portfolio/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

// UserHandler serves the signed-in operator's own account.
type UserHandler struct {
	uc usecase.AuthUsecase
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func NewUserHandler(uc usecase.AuthUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/password", h.ChangePassword)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	usr, err := h.uc.Me(c.Context(), userID)
	if err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) ChangePassword(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := h.uc.ChangePassword(c.Context(), userID, useruc.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
