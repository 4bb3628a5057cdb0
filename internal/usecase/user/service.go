package user

import (
	"context"
	"errors"

	"portfolio/internal/domain/user"
	"portfolio/internal/usecase/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrWrongPassword = errors.New("current password does not match")
	ErrNotFound      = errors.New("user not found")
	ErrInternal      = errors.New("internal error")
)

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// GetMe returns the signed-in account without its password hash.
func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, in ChangePasswordInput) error {
	if !auth.IsValidPassword(in.NewPassword) {
		return ErrInvalidInput
	}

	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.CurrentPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return ErrInternal
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return ErrInternal
	}
	return nil
}
