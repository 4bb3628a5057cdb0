package repository

import (
	"context"

	"portfolio/internal/database"
	"portfolio/internal/domain/project"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	ListVisible(ctx context.Context) ([]project.Project, error)
	GetVisibleByID(ctx context.Context, id uuid.UUID) (project.Project, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]project.Project, error)
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (project.Project, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (total int, visible int, err error)
	Create(ctx context.Context, p project.Project) (project.Project, error)
	Update(ctx context.Context, p project.Project) (project.Project, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	ToggleVisibility(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, user_id, title, description, description_en, description_fr, about_project, about_project_en,
	about_project_fr, images, live_demo_link, github_link, technologies, key_features, is_visible, is_under_development,
	created_at, updated_at`

func (r *PostgresProjectRepository) ListVisible(ctx context.Context) ([]project.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects WHERE is_visible = true ORDER BY created_at DESC`)
}

func (r *PostgresProjectRepository) GetVisibleByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1 AND is_visible = true`, id)
	return scanProject(row)
}

func (r *PostgresProjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]project.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PostgresProjectRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	return scanProject(row)
}

func (r *PostgresProjectRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, int, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1), COUNT(1) FILTER (WHERE is_visible) FROM projects WHERE user_id = $1`,
		userID,
	)
	var total, visible int
	if err := row.Scan(&total, &visible); err != nil {
		return 0, 0, err
	}
	return total, visible, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO projects (id, user_id, title, description, description_en, description_fr, about_project,
			about_project_en, about_project_fr, images, live_demo_link, github_link, technologies, key_features,
			is_visible, is_under_development)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		 RETURNING `+projectColumns,
		p.ID,
		p.UserID,
		p.Title,
		p.Description,
		textOrNull(p.DescriptionEN),
		textOrNull(p.DescriptionFR),
		textOrNull(p.AboutProject),
		textOrNull(p.AboutProjectEN),
		textOrNull(p.AboutProjectFR),
		nonNilStrings(p.Images),
		p.LiveDemoLink,
		p.GithubLink,
		nonNilStrings(p.Technologies),
		nonNilStrings(p.KeyFeatures),
		p.IsVisible,
		p.IsUnderDevelopment,
	)
	return scanProject(row)
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE projects SET
			title = $3,
			description = $4,
			description_en = $5,
			description_fr = $6,
			about_project = $7,
			about_project_en = $8,
			about_project_fr = $9,
			images = $10,
			live_demo_link = $11,
			github_link = $12,
			technologies = $13,
			key_features = $14,
			is_visible = $15,
			is_under_development = $16,
			updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+projectColumns,
		p.ID,
		p.UserID,
		p.Title,
		p.Description,
		textOrNull(p.DescriptionEN),
		textOrNull(p.DescriptionFR),
		textOrNull(p.AboutProject),
		textOrNull(p.AboutProjectEN),
		textOrNull(p.AboutProjectFR),
		nonNilStrings(p.Images),
		p.LiveDemoLink,
		p.GithubLink,
		nonNilStrings(p.Technologies),
		nonNilStrings(p.KeyFeatures),
		p.IsVisible,
		p.IsUnderDevelopment,
	)
	return scanProject(row)
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return project.ErrNotFound
	}
	return nil
}

func (r *PostgresProjectRepository) ToggleVisibility(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE projects SET is_visible = NOT is_visible, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING is_visible`,
		id, userID,
	)
	var visible bool
	if err := row.Scan(&visible); err != nil {
		if isNoRows(err) {
			return false, project.ErrNotFound
		}
		return false, err
	}
	return visible, nil
}

func (r *PostgresProjectRepository) list(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProject(row rowScanner) (project.Project, error) {
	var (
		p                                         project.Project
		descEN, descFR, about, aboutEN, aboutFR *string
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Description, &descEN, &descFR, &about, &aboutEN, &aboutFR,
		&p.Images, &p.LiveDemoLink, &p.GithubLink, &p.Technologies, &p.KeyFeatures, &p.IsVisible,
		&p.IsUnderDevelopment, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	p.DescriptionEN = deref(descEN)
	p.DescriptionFR = deref(descFR)
	p.AboutProject = deref(about)
	p.AboutProjectEN = deref(aboutEN)
	p.AboutProjectFR = deref(aboutFR)
	p.Images = nonNilStrings(p.Images)
	p.Technologies = nonNilStrings(p.Technologies)
	p.KeyFeatures = nonNilStrings(p.KeyFeatures)
	return p, nil
}
