package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	s := NewHMACService("secret", time.Hour, "portfolio")
	uid := uuid.New()

	tok, issued, err := s.GenerateAccessToken(uid, "admin@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	c, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if c.UserID != uid || c.Email != "admin@example.com" {
		t.Fatalf("unexpected claims %+v", c)
	}
	if c.TokenID() == "" || c.TokenID() != issued.TokenID() {
		t.Fatalf("expected matching token id, got %q vs %q", c.TokenID(), issued.TokenID())
	}
}

func TestHMACService_Expired(t *testing.T) {
	s := NewHMACService("secret", time.Minute, "portfolio")
	base := time.Now()
	s.now = func() time.Time { return base }

	tok, _, err := s.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := s.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, _, err := NewHMACService("a", time.Hour, "").GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewHMACService("b", time.Hour, "").ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_RefusesEmptySecret(t *testing.T) {
	if _, _, err := NewHMACService("", time.Hour, "").GenerateAccessToken(uuid.New(), ""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestClaims_Remaining(t *testing.T) {
	now := time.Now()
	c := Claims{ExpiredAt: now.Add(time.Minute)}
	if c.Remaining(now) != time.Minute {
		t.Fatalf("unexpected remaining %v", c.Remaining(now))
	}
	if (Claims{ExpiredAt: now.Add(-time.Minute)}).Remaining(now) != 0 {
		t.Fatalf("expected zero remaining for expired claims")
	}
}
