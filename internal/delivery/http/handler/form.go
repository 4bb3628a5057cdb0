package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"

	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/pkg/response"
	"portfolio/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const formStateKey = "form_state"

func currentUserID(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, middleware.Unauthorized("", nil)
	}
	return id, nil
}

func parseIDParam(c fiber.Ctx, notFoundMsg string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, notFoundMsg, nil, err)
	}
	return id, nil
}

func confirmed(c fiber.Ctx) bool {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return ok
}

// submit runs one form submission through a fresh FormMachine.
func submit(fn func() error) (usecase.FormState, error) {
	return usecase.NewFormMachine().Submit(fn)
}

func fileInput(fh *multipart.FileHeader) usecase.FileInput {
	return usecase.FileInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func singleFile(c fiber.Ctx, field string) (usecase.FileInput, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return usecase.FileInput{}, middleware.NewAppError(fiber.StatusBadRequest, "A file is required", nil, err)
	}
	return fileInput(fh), nil
}

func multipleFiles(c fiber.Ctx, field string) ([]usecase.FileInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid multipart form", nil, err)
	}
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "At least one file is required", nil, nil)
	}
	files := make([]usecase.FileInput, 0, len(headers))
	for _, fh := range headers {
		files = append(files, fileInput(fh))
	}
	return files, nil
}

// mapAdminUsecaseError turns an admin write or read error into the one-shot
// error response. The final form state travels with it.
func mapAdminUsecaseError(err error, state usecase.FormState, notFoundMsg string) error {
	if err == nil {
		return nil
	}

	data := fiber.Map{}
	if state != "" {
		data[formStateKey] = state
	}

	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		data["fields"] = ve.Fields
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, ve.Message, data, err)
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return middleware.NewAppError(fiber.StatusConflict, "Confirmation required", data, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, notFoundMsg, data, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.Unauthorized("", err)
	case errors.Is(err, usecase.ErrUnsupportedFile):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported file type", data, err)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", data, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", data, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, data, err)
	}
}
