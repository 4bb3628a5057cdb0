package handler

import (
	"errors"

	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/i18n"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// PublicHandler serves the visitor-facing content. Every route answers 200
// with defaults when the store fails, except a missing project.
type PublicHandler struct {
	uc usecase.ContentUsecase
	tr *i18n.Translator
}

func NewPublicHandler(uc usecase.ContentUsecase, tr *i18n.Translator) *PublicHandler {
	if tr == nil {
		tr = i18n.Default()
	}
	return &PublicHandler{uc: uc, tr: tr}
}

func (h *PublicHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.GetProfile)
	r.Get("/projects", h.ListProjects)
	r.Get("/projects/:id", h.GetProject)
	r.Get("/skills", h.ListSkills)
}

func (h *PublicHandler) GetProfile(c fiber.Ctx) error {
	view := h.uc.GetProfile(c.Context(), middleware.LanguageFrom(c))
	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}

func (h *PublicHandler) ListProjects(c fiber.Ctx) error {
	list := h.uc.ListProjects(c.Context(), middleware.LanguageFrom(c))
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *PublicHandler) GetProject(c fiber.Ctx) error {
	lang := middleware.LanguageFrom(c)

	detail, err := h.uc.GetProject(c.Context(), c.Params("id"), lang)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(
				fiber.StatusNotFound,
				h.tr.T(lang, "projects.notFound"),
				fiber.Map{"action": "home", "href": "/"},
				err,
			)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, detail)
}

func (h *PublicHandler) ListSkills(c fiber.Ctx) error {
	view := h.uc.ListSkills(c.Context(), middleware.LanguageFrom(c))
	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}
