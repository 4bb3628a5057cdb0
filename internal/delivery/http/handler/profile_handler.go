package handler

import (
	"portfolio/internal/delivery/http/dto"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/i18n"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const profileNotFound = "Profile not found"

type ProfileHandler struct {
	uc usecase.ProfileAdminUsecase
}

func NewProfileHandler(uc usecase.ProfileAdminUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Put("/", h.Save)
	r.Post("/image", h.UploadImage)
	r.Post("/cv", h.UploadCV)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	m := usecase.NewFormMachine()
	_ = m.To(usecase.FormLoading)

	draft, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		_ = m.To(usecase.FormFailure)
		return mapAdminUsecaseError(err, m.State(), profileNotFound)
	}
	_ = m.To(usecase.FormEditing)

	data := fiber.Map{formStateKey: m.State(), "draft": draft}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *ProfileHandler) Save(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var draft usecase.ProfileDraft
	if err := c.Bind().Body(&draft); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	var saved usecase.ProfileDraft
	state, err := submit(func() error {
		var err error
		saved, err = h.uc.Save(c.Context(), userID, draft)
		return err
	})
	if err != nil {
		return mapAdminUsecaseError(err, state, profileNotFound)
	}

	data := fiber.Map{formStateKey: state, "draft": saved}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *ProfileHandler) UploadImage(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	file, err := singleFile(c, "file")
	if err != nil {
		return err
	}

	url, err := h.uc.UploadImage(c.Context(), userID, file)
	if err != nil {
		return mapAdminUsecaseError(err, "", profileNotFound)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.UploadResponse{URLs: []string{url}})
}

// UploadCV stores the CV for ?lang=en|fr, English when absent.
func (h *ProfileHandler) UploadCV(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	lang := i18n.English
	if q := c.Query("lang"); q != "" {
		parsed, ok := i18n.ParseLanguage(q)
		if !ok {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported language", nil, nil)
		}
		lang = parsed
	}

	file, err := singleFile(c, "file")
	if err != nil {
		return err
	}

	url, err := h.uc.UploadCV(c.Context(), userID, file, lang)
	if err != nil {
		return mapAdminUsecaseError(err, "", profileNotFound)
	}

	data := fiber.Map{"urls": []string{url}, "language": lang}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, data)
}
