package seeder

import "portfolio/internal/config"

// Defaults seeds the operator account, then sample content owned by it.
// Without ADMIN_EMAIL nothing is seeded.
func Defaults(admin config.AdminSeedConfig) []Seeder {
	return []Seeder{
		AdminSeeder{Email: admin.Email, Password: admin.Password},
		ProfileSeeder{OwnerEmail: admin.Email},
		SkillsSeeder{OwnerEmail: admin.Email},
	}
}
