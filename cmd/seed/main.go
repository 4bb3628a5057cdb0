package main

import (
	"context"
	"flag"
	"log"
	"time"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/database/seeder"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	skipMigrate := flag.Bool("skip-migrate", false, "do not apply pending migrations first")
	adminOnly := flag.Bool("admin-only", false, "seed the operator account only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	if !*skipMigrate {
		migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
		err := c.Migrate(migCtx)
		migCancel()
		if err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	seeders := seeder.Defaults(cfg.Admin)
	if *adminOnly {
		seeders = seeders[:1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	r := seeder.Runner{Seeders: seeders, Logger: c.Logger}
	if err := r.Run(ctx, c.DB); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("seed complete")
}
