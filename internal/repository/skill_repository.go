package repository

import (
	"context"

	"portfolio/internal/database"
	"portfolio/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillRepository interface {
	ListVisible(ctx context.Context) ([]skill.Skill, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (skill.Skill, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	// NextSortOrder is the position after the last skill of the category.
	NextSortOrder(ctx context.Context, userID uuid.UUID, category skill.Category) (int, error)
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Update(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	ToggleVisibility(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, user_id, name, category, logo_url, is_visible, sort_order, created_at, updated_at`

func (r *PostgresSkillRepository) ListVisible(ctx context.Context) ([]skill.Skill, error) {
	return r.list(ctx, `SELECT `+skillColumns+` FROM skills WHERE is_visible = true ORDER BY category ASC, sort_order ASC`)
}

func (r *PostgresSkillRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	return r.list(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE user_id = $1 ORDER BY category ASC, sort_order ASC`,
		userID,
	)
}

func (r *PostgresSkillRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (skill.Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	return scanSkill(row)
}

func (r *PostgresSkillRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM skills WHERE user_id = $1`, userID)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresSkillRepository) NextSortOrder(ctx context.Context, userID uuid.UUID, category skill.Category) (int, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(sort_order) + 1, 0) FROM skills WHERE user_id = $1 AND category = $2`,
		userID, string(category),
	)
	var next int
	if err := row.Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, user_id, name, category, logo_url, is_visible, sort_order)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+skillColumns,
		s.ID, s.UserID, s.Name, string(s.Category), textOrNull(s.LogoURL), s.IsVisible, s.SortOrder,
	)
	return scanSkill(row)
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE skills SET
			name = $3,
			category = $4,
			logo_url = $5,
			is_visible = $6,
			sort_order = $7,
			updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+skillColumns,
		s.ID, s.UserID, s.Name, string(s.Category), textOrNull(s.LogoURL), s.IsVisible, s.SortOrder,
	)
	return scanSkill(row)
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func (r *PostgresSkillRepository) ToggleVisibility(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE skills SET is_visible = NOT is_visible, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING is_visible`,
		id, userID,
	)
	var visible bool
	if err := row.Scan(&visible); err != nil {
		if isNoRows(err) {
			return false, skill.ErrNotFound
		}
		return false, err
	}
	return visible, nil
}

func (r *PostgresSkillRepository) list(ctx context.Context, query string, args ...any) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSkill(row rowScanner) (skill.Skill, error) {
	var (
		s        skill.Skill
		category string
		logo     *string
	)
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &category, &logo, &s.IsVisible, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return skill.Skill{}, skill.ErrNotFound
		}
		return skill.Skill{}, err
	}
	s.Category = skill.Category(category)
	s.LogoURL = deref(logo)
	return s, nil
}
