package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeAccess = "access"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carry the admin identity. RegisteredClaims.ID is the token id
// used to revoke a session on sign-out.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"token_type"`

	IssuedAt  time.Time `json:"issued_at"`
	ExpiredAt time.Time `json:"expired_at"`

	jwtlib.RegisteredClaims
}

// TokenID returns the jti claim.
func (c Claims) TokenID() string {
	return c.RegisteredClaims.ID
}

// Remaining is how long the token stays valid after now.
func (c Claims) Remaining(now time.Time) time.Duration {
	d := c.ExpiredAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, Claims, error)
	ValidateToken(tokenString string) (Claims, error)
}

type HMACService struct {
	secret    []byte
	expiresIn time.Duration
	issuer    string

	now func() time.Time
}

func NewHMACService(secret string, expiresIn time.Duration, issuer string) *HMACService {
	return &HMACService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		issuer:    issuer,
		now:       time.Now,
	}
}

func (s *HMACService) ExpiresIn() time.Duration {
	return s.expiresIn
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email string) (string, Claims, error) {
	if len(s.secret) == 0 || s.expiresIn <= 0 || userID == uuid.Nil {
		return "", Claims{}, ErrTokenInvalid
	}

	now := s.now().UTC()
	exp := now.Add(s.expiresIn)

	c := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: TokenTypeAccess,
		IssuedAt:  now,
		ExpiredAt: exp,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(exp),
			Subject:   userID.String(),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", Claims{}, err
	}
	return signed, c, nil
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if !c.ExpiredAt.IsZero() && s.now().UTC().After(c.ExpiredAt.UTC()) {
		return Claims{}, ErrTokenExpired
	}
	if c.TokenType != TokenTypeAccess || c.UserID == uuid.Nil || c.TokenID() == "" {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
