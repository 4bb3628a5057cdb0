package seeder

import (
	"context"
	"strings"

	"portfolio/internal/database"
)

// ProfileSeeder inserts a starter profile unless the owner already has one.
type ProfileSeeder struct {
	OwnerEmail string
}

func (ProfileSeeder) Name() string { return "profile" }

func (s ProfileSeeder) Run(ctx context.Context, db database.DB) error {
	if strings.TrimSpace(s.OwnerEmail) == "" {
		return nil
	}
	if err := EnsureTableColumns(ctx, db, "profiles", "user_id", "name", "title", "short_bio_en", "short_bio_fr", "years_experience", "projects_count"); err != nil {
		return err
	}

	owner, err := ownerID(ctx, db, s.OwnerEmail)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		ctx,
		`INSERT INTO profiles (user_id, name, title, short_bio_en, short_bio_fr, description, years_experience, projects_count)
		 VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO NOTHING`,
		owner,
		"Your Name",
		"Full Stack Developer",
		"I build fast, accessible web applications.",
		"Je conçois des applications web rapides et accessibles.",
		"",
		3,
		12,
	)
	return err
}
