package repository

import (
	"context"

	"portfolio/internal/database"
	"portfolio/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	// GetFirst returns the single public profile, if any.
	GetFirst(ctx context.Context) (profile.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, user_id, name, title, short_bio_en, short_bio_fr, description, description_en, description_fr,
	about, years_experience, projects_count, profile_image, cv_en, cv_fr, created_at, updated_at`

func (r *PostgresProfileRepository) GetFirst(ctx context.Context) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY created_at ASC LIMIT 1`)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (id, user_id, name, title, short_bio_en, short_bio_fr, description, description_en,
			description_fr, about, years_experience, projects_count, profile_image, cv_en, cv_fr)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		 ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			short_bio_en = EXCLUDED.short_bio_en,
			short_bio_fr = EXCLUDED.short_bio_fr,
			description = EXCLUDED.description,
			description_en = EXCLUDED.description_en,
			description_fr = EXCLUDED.description_fr,
			about = EXCLUDED.about,
			years_experience = EXCLUDED.years_experience,
			projects_count = EXCLUDED.projects_count,
			profile_image = EXCLUDED.profile_image,
			cv_en = EXCLUDED.cv_en,
			cv_fr = EXCLUDED.cv_fr,
			updated_at = now()
		 RETURNING `+profileColumns,
		p.ID,
		p.UserID,
		p.Name,
		textOrNull(p.Title),
		textOrNull(p.ShortBioEN),
		textOrNull(p.ShortBioFR),
		p.Description,
		textOrNull(p.DescriptionEN),
		textOrNull(p.DescriptionFR),
		textOrNull(p.About),
		p.YearsExperience,
		p.ProjectsCount,
		textOrNull(p.ProfileImage),
		textOrNull(p.CVEN),
		textOrNull(p.CVFR),
	)
	return scanProfile(row)
}

func scanProfile(row rowScanner) (profile.Profile, error) {
	var (
		p                                          profile.Profile
		title, bioEN, bioFR, descEN, descFR, about *string
		image, cvEN, cvFR                          *string
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &title, &bioEN, &bioFR, &p.Description, &descEN, &descFR,
		&about, &p.YearsExperience, &p.ProjectsCount, &image, &cvEN, &cvFR, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.Title = deref(title)
	p.ShortBioEN = deref(bioEN)
	p.ShortBioFR = deref(bioFR)
	p.DescriptionEN = deref(descEN)
	p.DescriptionFR = deref(descFR)
	p.About = deref(about)
	p.ProfileImage = deref(image)
	p.CVEN = deref(cvEN)
	p.CVFR = deref(cvFR)
	return p, nil
}
