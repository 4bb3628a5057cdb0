package usecase

import (
	"context"
	"log"
	"net/mail"
	"strings"
	"time"

	"portfolio/internal/infrastructure/mailer"
)

const maxContactMessageLen = 5000

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactThrottle limits how often one sender may submit the form.
type ContactThrottle interface {
	AllowContact(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type ContactUsecase interface {
	Send(ctx context.Context, senderKey string, in ContactInput) error
}

type Contact struct {
	sender   mailer.Sender
	throttle ContactThrottle
	window   time.Duration
	logger   *log.Logger
}

func NewContactUsecase(sender mailer.Sender, throttle ContactThrottle, window time.Duration, logger *log.Logger) *Contact {
	return &Contact{sender: sender, throttle: throttle, window: window, logger: logger}
}

// Send delivers one contact message. The outcome is binary for the visitor:
// nil, or an error whose text is never shown.
func (u *Contact) Send(ctx context.Context, senderKey string, in ContactInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		missing = append(missing, "email")
	}
	if in.Message == "" || len(in.Message) > maxContactMessageLen {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return newValidationError("Name, a valid email and a message are required", missing...)
	}

	if u.throttle != nil && u.window > 0 {
		ok, err := u.throttle.AllowContact(ctx, senderKey, u.window)
		if err != nil {
			u.logf("[Contact] throttle check failed key=%s err=%v", senderKey, err)
		} else if !ok {
			return ErrRateLimited
		}
	}

	if u.sender == nil {
		u.logf("[Contact] no sender configured")
		return ErrInternal
	}
	if err := u.sender.SendContact(ctx, mailer.ContactMessage{Name: in.Name, Email: in.Email, Message: in.Message}); err != nil {
		u.logf("[Contact] send failed err=%v", err)
		return ErrInternal
	}
	return nil
}

func (u *Contact) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
