package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/database/migration"
	dbpostgres "portfolio/internal/database/postgres"
	"portfolio/internal/i18n"
	"portfolio/internal/infrastructure/mailer"
	"portfolio/internal/infrastructure/session"
	"portfolio/internal/infrastructure/storage"
	"portfolio/internal/ws"
)

// Container owns the process-wide dependencies. Close releases them in
// reverse order of acquisition.
type Container struct {
	Config     config.Config
	Logger     *log.Logger
	DB         database.DB
	Sessions   *session.Store
	Storage    storage.Store
	Mailer     mailer.Sender
	Hub        *ws.Hub
	Translator *i18n.Translator
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: %w", err)
	}

	return &Container{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Sessions:   session.NewRedis(cfg.Redis, logger),
		Storage:    store,
		Mailer:     mailer.NewSMTPSender(cfg.SMTP, logger),
		Hub:        ws.NewHub(logger),
		Translator: i18n.Default(),
	}, nil
}

// Migrate applies pending migrations from the configured directory.
func (c *Container) Migrate(ctx context.Context) error {
	if c == nil || c.DB == nil {
		return errors.New("nil db")
	}
	r := migration.Runner{Dir: c.Config.Database.MigrationsDir, Logger: c.Logger}
	return r.Run(ctx, c.DB.SQLDB())
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Sessions != nil {
		errs = append(errs, c.Sessions.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
