package handler

import (
	"errors"

	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/i18n"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ContactHandler accepts the public contact form. The visitor sees a
// localized success or error text, never the cause.
type ContactHandler struct {
	uc usecase.ContactUsecase
	tr *i18n.Translator
}

func NewContactHandler(uc usecase.ContactUsecase, tr *i18n.Translator) *ContactHandler {
	if tr == nil {
		tr = i18n.Default()
	}
	return &ContactHandler{uc: uc, tr: tr}
}

func (h *ContactHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/contact", h.Send)
}

func (h *ContactHandler) Send(c fiber.Ctx) error {
	lang := middleware.LanguageFrom(c)

	var req usecase.ContactInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, h.tr.T(lang, "contact.form.error"), nil, err)
	}

	err := h.uc.Send(c.Context(), c.IP(), req)
	if err == nil {
		return response.Success(c, fiber.StatusOK, h.tr.T(lang, "contact.form.success"), nil)
	}

	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, h.tr.T(lang, "contact.form.error"), fiber.Map{"fields": ve.Fields}, err)
	case errors.Is(err, usecase.ErrRateLimited):
		return middleware.NewAppError(fiber.StatusTooManyRequests, h.tr.T(lang, "contact.form.throttled"), nil, err)
	default:
		// Written directly so the localized text survives; the error
		// middleware replaces 5xx messages with a generic one.
		return response.Error(c, fiber.StatusInternalServerError, h.tr.T(lang, "contact.form.error"), nil)
	}
}
