package handler

import (
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/i18n"
	"portfolio/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type preferencesResponse struct {
	Language i18n.Language `json:"language"`
	Theme    i18n.Theme    `json:"theme"`
}

// PreferencesHandler exposes the string tables and the visitor's language
// and theme. Toggles persist through cookies only.
type PreferencesHandler struct {
	tr    *i18n.Translator
	prefs *middleware.PreferencesMiddleware
}

func NewPreferencesHandler(tr *i18n.Translator, prefs *middleware.PreferencesMiddleware) *PreferencesHandler {
	if tr == nil {
		tr = i18n.Default()
	}
	return &PreferencesHandler{tr: tr, prefs: prefs}
}

func (h *PreferencesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/i18n/:lang", h.Messages)
	r.Get("/preferences", h.Get)
	r.Post("/preferences/toggle-language", h.ToggleLanguage)
	r.Post("/preferences/toggle-theme", h.ToggleTheme)
}

func (h *PreferencesHandler) Messages(c fiber.Ctx) error {
	lang, ok := i18n.ParseLanguage(c.Params("lang"))
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Unsupported language", fiber.Map{"supported": i18n.Supported()}, nil)
	}

	data := fiber.Map{
		"language": lang,
		"messages": h.tr.Messages(lang),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *PreferencesHandler) Get(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, current(c))
}

func (h *PreferencesHandler) ToggleLanguage(c fiber.Ctx) error {
	lang := middleware.PreferencesFrom(c).ToggleLanguage()
	if h.prefs != nil {
		h.prefs.SetLanguageCookie(c, lang)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, current(c))
}

func (h *PreferencesHandler) ToggleTheme(c fiber.Ctx) error {
	theme := middleware.PreferencesFrom(c).ToggleTheme()
	if h.prefs != nil {
		h.prefs.SetThemeCookie(c, theme)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, current(c))
}

func current(c fiber.Ctx) preferencesResponse {
	p := middleware.PreferencesFrom(c)
	return preferencesResponse{Language: p.Language(), Theme: p.Theme()}
}
