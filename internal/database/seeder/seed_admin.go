package seeder

import (
	"context"
	"log"
	"strings"

	"portfolio/internal/database"
	"portfolio/internal/repository"
	ucauth "portfolio/internal/usecase/auth"
)

// AdminSeeder creates the single operator account, or resets its password
// to the configured one.
type AdminSeeder struct {
	Email    string
	Password string
}

func (AdminSeeder) Name() string { return "admin" }

func (s AdminSeeder) Run(ctx context.Context, db database.DB) error {
	if strings.TrimSpace(s.Email) == "" {
		return nil
	}

	svc := ucauth.NewService(repository.NewPostgresUserRepository(db))
	u, created, err := svc.EnsureAccount(ctx, s.Email, s.Password)
	if err != nil {
		return err
	}
	log.Printf("[Seeder] admin | email=%s created=%t id=%s", u.Email, created, u.ID)
	return nil
}
