package seeder

import (
	"context"
	"errors"
	"strings"

	"portfolio/internal/database"
)

var ErrOwnerNotFound = errors.New("seed owner not found")

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// ownerID finds the account that seeded content belongs to.
func ownerID(ctx context.Context, db database.DB, email string) (string, error) {
	var id string
	err := db.QueryRow(ctx, `SELECT id::text FROM users WHERE email = $1`, strings.ToLower(strings.TrimSpace(email))).Scan(&id)
	if err != nil {
		return "", ErrOwnerNotFound
	}
	return id, nil
}
