package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"portfolio/internal/domain/user"
	"portfolio/internal/pkg/jwt"
	ucauth "portfolio/internal/usecase/auth"
	ucuser "portfolio/internal/usecase/user"

	"github.com/google/uuid"
)

var ErrWrongPassword = errors.New("current password does not match")

// SessionRevoker remembers signed-out token ids until they expire.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type LoginResult struct {
	User        user.User
	AccessToken string
	ExpiresAt   time.Time
}

type AuthUsecase interface {
	Login(ctx context.Context, in ucauth.LoginInput) (LoginResult, error)
	Logout(ctx context.Context, claims jwt.Claims) error
	Me(ctx context.Context, userID uuid.UUID) (user.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, in ucuser.ChangePasswordInput) error
}

type Auth struct {
	authSvc  *ucauth.Service
	userSvc  *ucuser.Service
	jwt      jwt.Service
	sessions SessionRevoker
	logger   *log.Logger
	now      func() time.Time
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, sessions SessionRevoker, logger *log.Logger) *Auth {
	return &Auth{
		authSvc:  ucauth.NewService(users),
		userSvc:  ucuser.NewService(users),
		jwt:      jwtSvc,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (LoginResult, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, ErrInternal
	}

	token, claims, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return LoginResult{}, ErrInternal
	}
	if u.logger != nil {
		u.logger.Printf("[Session] signed in user=%s", usr.ID)
	}
	return LoginResult{User: usr, AccessToken: token, ExpiresAt: claims.ExpiredAt}, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (u *Auth) Logout(ctx context.Context, claims jwt.Claims) error {
	if claims.UserID == uuid.Nil || claims.TokenID() == "" {
		return ErrUnauthorized
	}
	if u.sessions == nil {
		return nil
	}
	if err := u.sessions.Revoke(ctx, claims.TokenID(), claims.Remaining(u.now())); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Session] revoke failed user=%s err=%v", claims.UserID, err)
		}
		return ErrInternal
	}
	return nil
}

func (u *Auth) Me(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := u.userSvc.GetMe(ctx, userID)
	if err != nil {
		if errors.Is(err, ucuser.ErrNotFound) {
			return user.User{}, ErrUnauthorized
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

func (u *Auth) ChangePassword(ctx context.Context, userID uuid.UUID, in ucuser.ChangePasswordInput) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	err := u.userSvc.ChangePassword(ctx, userID, in)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ucuser.ErrInvalidInput):
		return newValidationError("New password must be at least 8 characters", "new_password")
	case errors.Is(err, ucuser.ErrWrongPassword):
		return ErrWrongPassword
	case errors.Is(err, ucuser.ErrNotFound):
		return ErrUnauthorized
	default:
		return ErrInternal
	}
}
