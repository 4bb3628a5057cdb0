package handler

import (
	"portfolio/internal/delivery/http/dto"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/domain/project"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const projectNotFound = "Project not found"

// ProjectHandler is the admin project area. Every route expects the auth
// middleware in front of it.
type ProjectHandler struct {
	uc usecase.ProjectAdminUsecase
}

func NewProjectHandler(uc usecase.ProjectAdminUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/new", h.New)
	r.Post("/images", h.UploadImages)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Patch("/:id/visibility", h.ToggleVisibility)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapAdminUsecaseError(err, "", projectNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponses(items))
}

// New returns the blank create-mode draft.
func (h *ProjectHandler) New(c fiber.Ctx) error {
	data := fiber.Map{formStateKey: usecase.FormEditing, "draft": project.NewDraft()}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

// Get loads the edit-mode draft.
func (h *ProjectHandler) Get(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, projectNotFound)
	if err != nil {
		return err
	}

	m := usecase.NewFormMachine()
	_ = m.To(usecase.FormLoading)

	draft, err := h.uc.Get(c.Context(), userID, id)
	if err != nil {
		_ = m.To(usecase.FormFailure)
		return mapAdminUsecaseError(err, m.State(), projectNotFound)
	}
	_ = m.To(usecase.FormEditing)

	data := fiber.Map{"id": id, formStateKey: m.State(), "draft": draft}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var draft project.Draft
	if err := c.Bind().Body(&draft); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	var created project.Project
	state, err := submit(func() error {
		var err error
		created, err = h.uc.Create(c.Context(), userID, draft)
		return err
	})
	if err != nil {
		return mapAdminUsecaseError(err, state, projectNotFound)
	}

	data := fiber.Map{formStateKey: state, "project": dto.NewProjectResponse(created)}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, data)
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, projectNotFound)
	if err != nil {
		return err
	}

	var draft project.Draft
	if err := c.Bind().Body(&draft); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	var updated project.Project
	state, err := submit(func() error {
		var err error
		updated, err = h.uc.Update(c.Context(), userID, id, draft)
		return err
	})
	if err != nil {
		return mapAdminUsecaseError(err, state, projectNotFound)
	}

	data := fiber.Map{formStateKey: state, "project": dto.NewProjectResponse(updated)}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, projectNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), userID, id, confirmed(c)); err != nil {
		return mapAdminUsecaseError(err, "", projectNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"id": id})
}

func (h *ProjectHandler) ToggleVisibility(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, projectNotFound)
	if err != nil {
		return err
	}

	visible, err := h.uc.ToggleVisibility(c.Context(), userID, id)
	if err != nil {
		return mapAdminUsecaseError(err, "", projectNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.VisibilityResponse{ID: id, IsVisible: visible})
}

// UploadImages stores a batch from the "files" field and returns the URLs in
// upload order. The client appends them to its draft.
func (h *ProjectHandler) UploadImages(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	files, err := multipleFiles(c, "files")
	if err != nil {
		return err
	}

	urls, err := h.uc.UploadImages(c.Context(), userID, files)
	if err != nil {
		return mapAdminUsecaseError(err, "", projectNotFound)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.UploadResponse{URLs: urls})
}
