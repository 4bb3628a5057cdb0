package handler

import (
	"portfolio/internal/delivery/http/dto"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/domain/skill"
	"portfolio/internal/i18n"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const skillNotFound = "Skill not found"

type SkillHandler struct {
	uc usecase.SkillAdminUsecase
	tr *i18n.Translator
}

func NewSkillHandler(uc usecase.SkillAdminUsecase, tr *i18n.Translator) *SkillHandler {
	if tr == nil {
		tr = i18n.Default()
	}
	return &SkillHandler{uc: uc, tr: tr}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/categories", h.Categories)
	r.Post("/logo", h.UploadLogo)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Patch("/:id/visibility", h.ToggleVisibility)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapAdminUsecaseError(err, "", skillNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponses(items))
}

func (h *SkillHandler) Categories(c fiber.Ctx) error {
	lang := middleware.LanguageFrom(c)
	cats := skill.Categories()
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, dto.CategoryResponse{Value: string(cat), Title: h.tr.T(lang, cat.TranslationKey())})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req usecase.SkillInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	var created skill.Skill
	state, err := submit(func() error {
		var err error
		created, err = h.uc.Create(c.Context(), userID, req)
		return err
	})
	if err != nil {
		return mapAdminUsecaseError(err, state, skillNotFound)
	}

	data := fiber.Map{formStateKey: state, "skill": dto.NewSkillResponse(created)}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, data)
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, skillNotFound)
	if err != nil {
		return err
	}

	var req usecase.SkillInput
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	var updated skill.Skill
	state, err := submit(func() error {
		var err error
		updated, err = h.uc.Update(c.Context(), userID, id, req)
		return err
	})
	if err != nil {
		return mapAdminUsecaseError(err, state, skillNotFound)
	}

	data := fiber.Map{formStateKey: state, "skill": dto.NewSkillResponse(updated)}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, skillNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), userID, id, confirmed(c)); err != nil {
		return mapAdminUsecaseError(err, "", skillNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id})
}

func (h *SkillHandler) ToggleVisibility(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, skillNotFound)
	if err != nil {
		return err
	}

	visible, err := h.uc.ToggleVisibility(c.Context(), userID, id)
	if err != nil {
		return mapAdminUsecaseError(err, "", skillNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.VisibilityResponse{ID: id, IsVisible: visible})
}

func (h *SkillHandler) UploadLogo(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	file, err := singleFile(c, "file")
	if err != nil {
		return err
	}

	url, err := h.uc.UploadLogo(c.Context(), userID, file)
	if err != nil {
		return mapAdminUsecaseError(err, "", skillNotFound)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.UploadResponse{URLs: []string{url}})
}
