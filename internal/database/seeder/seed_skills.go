package seeder

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/database"
	"portfolio/internal/domain/skill"
)

// SkillsSeeder adds a starter skill set when the owner has no skills yet.
// sort_order counts up within each category.
type SkillsSeeder struct {
	OwnerEmail string
}

func (SkillsSeeder) Name() string { return "skills" }

var starterSkills = []struct {
	Name     string
	Category skill.Category
}{
	{Name: "React", Category: skill.CategoryFrontend},
	{Name: "TypeScript", Category: skill.CategoryFrontend},
	{Name: "Tailwind CSS", Category: skill.CategoryFrontend},
	{Name: "Go", Category: skill.CategoryBackend},
	{Name: "Node.js", Category: skill.CategoryBackend},
	{Name: "React Native", Category: skill.CategoryMobile},
	{Name: "PostgreSQL", Category: skill.CategoryData},
	{Name: "Redis", Category: skill.CategoryData},
	{Name: "Docker", Category: skill.CategoryTooling},
	{Name: "Git", Category: skill.CategoryTooling},
}

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if strings.TrimSpace(s.OwnerEmail) == "" {
		return nil
	}
	if err := EnsureTableColumns(ctx, db, "skills", "id", "user_id", "name", "category", "sort_order", "is_visible"); err != nil {
		return err
	}

	owner, err := ownerID(ctx, db, s.OwnerEmail)
	if err != nil {
		return err
	}

	var existing int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM skills WHERE user_id = $1::uuid`, owner).Scan(&existing); err != nil {
		return fmt.Errorf("count skills: %w", err)
	}
	if existing > 0 {
		return nil
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		next := map[skill.Category]int{}
		for _, it := range starterSkills {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, user_id, name, category, is_visible, sort_order)
				 VALUES (gen_random_uuid(), $1::uuid, $2, $3, TRUE, $4)`,
				owner,
				it.Name,
				string(it.Category),
				next[it.Category],
			)
			if err != nil {
				return err
			}
			next[it.Category]++
		}
		return nil
	})
}
