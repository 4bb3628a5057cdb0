package usecase

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrInternal             = errors.New("internal error")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRateLimited          = errors.New("rate limited")
	ErrUnsupportedFile      = errors.New("unsupported file")
	ErrFileTooLarge         = errors.New("file too large")
)

// ValidationError is a form rejected before any store call. Message is shown
// to the operator as is.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string, fields ...string) *ValidationError {
	return &ValidationError{Message: msg, Fields: fields}
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
