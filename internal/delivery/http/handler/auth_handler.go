package handler

import (
	"errors"

	"portfolio/internal/delivery/http/dto"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/pkg/jwt"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"
	ucauth "portfolio/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
}

// RegisterProtectedRoutes mounts the routes that need a signed-in operator.
func (h *AuthHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/logout", h.Logout)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := dto.LoginResponse{
		User:        dto.NewUserResponse(res.User),
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, ok := c.Locals(middleware.CtxClaimsKey).(jwt.Claims)
	if !ok {
		return middleware.Unauthorized("", nil)
	}

	if err := h.uc.Logout(c.Context(), claims); err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"redirect": middleware.AdminLoginPath})
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, ve.Message, fiber.Map{"fields": ve.Fields}, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, usecase.ErrWrongPassword):
		return middleware.NewAppError(fiber.StatusBadRequest, "Current password is incorrect", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.Unauthorized("", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
