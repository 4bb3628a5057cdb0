package middleware

import (
	"context"
	"errors"
	"strings"

	"portfolio/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
	CtxClaimsKey = "claims"

	// AdminLoginPath is where the client sends an operator without a session.
	AdminLoginPath = "/admin"
)

// RevocationChecker reports signed-out token ids.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthMiddleware struct {
	jwt     jwt.Service
	revoked RevocationChecker
}

func NewAuthMiddleware(jwtSvc jwt.Service, revoked RevocationChecker) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, revoked: revoked}
}

// Unauthorized is the 401 every gated route returns, carrying the redirect
// target for the client.
func Unauthorized(message string, cause error) *AppError {
	if message == "" {
		message = "Unauthorized"
	}
	return NewAppError(fiber.StatusUnauthorized, message, fiber.Map{"redirect": AdminLoginPath}, cause)
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return Unauthorized("", nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return Unauthorized("Token expired", err)
			}
			return Unauthorized("Invalid token", err)
		}

		if m.revoked != nil {
			// A failed lookup is treated as not revoked; the token still expires.
			if revoked, _ := m.revoked.IsRevoked(c.Context(), claims.TokenID()); revoked {
				return Unauthorized("Session ended", nil)
			}
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)
		c.Locals(CtxClaimsKey, claims)

		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
