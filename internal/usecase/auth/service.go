package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

const MinPasswordLength = 8

type LoginInput struct {
	Email    string
	Password string
}

// Service checks admin credentials. There is no public sign-up: accounts are
// provisioned by EnsureAccount from the seeder.
type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

// EnsureAccount creates the account, or resets its password when the stored
// hash does not match. created reports whether a new row was inserted.
func (s *Service) EnsureAccount(ctx context.Context, email, password string) (u user.User, created bool, err error) {
	email = NormalizeEmail(email)
	if email == "" || !IsValidPassword(password) {
		return user.User{}, false, ErrInvalidInput
	}

	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) == nil {
			return sanitizeUser(existing), false, nil
		}
		hash, err := HashPassword(password)
		if err != nil {
			return user.User{}, false, err
		}
		if err := s.users.UpdatePasswordHash(ctx, existing.ID, hash); err != nil {
			return user.User{}, false, ErrInternal
		}
		return sanitizeUser(existing), false, nil
	case !errors.Is(err, user.ErrNotFound):
		return user.User{}, false, ErrInternal
	}

	hash, err := HashPassword(password)
	if err != nil {
		return user.User{}, false, err
	}
	nu := user.User{ID: uuid.New(), Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, nu); err != nil {
		return user.User{}, false, ErrInternal
	}
	stored, err := s.users.GetByID(ctx, nu.ID)
	if err != nil {
		return user.User{}, false, ErrInternal
	}
	return sanitizeUser(stored), true, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= MinPasswordLength
}

func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrInternal
	}
	return string(hash), nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
