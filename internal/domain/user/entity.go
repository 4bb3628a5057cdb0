package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the single operator account that owns all portfolio content.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
