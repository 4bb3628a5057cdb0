package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/delivery/http/handler"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/routes"
	v1 "portfolio/internal/delivery/http/routes/v1"
	"portfolio/internal/infrastructure/storage"
	"portfolio/internal/pkg/jwt"
	"portfolio/internal/repository"
	"portfolio/internal/usecase"
	"portfolio/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/static"
)

const jwtIssuer = "portfolio"

type App struct {
	Fiber *fiber.App
}

// New assembles the HTTP app from c. It starts nothing; the hub must be
// run by the caller.
func New(c *Container) *App {
	cfg := c.Config
	logger := c.Logger
	if logger == nil {
		logger = log.Default()
	}

	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
		BodyLimit:    cfg.App.BodyLimit,
	})

	prefs := middleware.NewPreferencesMiddleware(cfg.IsProduction())
	registerGlobalMiddleware(f, cfg, logger, prefs)
	registerStorage(f, c.Storage)

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn, jwtIssuer)
	authMw := middleware.NewAuthMiddleware(jwtSvc, c.Sessions)

	userRepo := repository.NewPostgresUserRepository(c.DB)
	profileRepo := repository.NewPostgresProfileRepository(c.DB)
	projectRepo := repository.NewPostgresProjectRepository(c.DB)
	skillRepo := repository.NewPostgresSkillRepository(c.DB)

	notifier := ws.NewNotifier(c.Hub)
	uploader := usecase.NewStorageUploader(c.Storage, logger)

	contentUC := usecase.NewContentUsecase(profileRepo, projectRepo, skillRepo, c.Translator, logger)
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc, c.Sessions, logger)
	contactUC := usecase.NewContactUsecase(c.Mailer, c.Sessions, cfg.Redis.ContactTTL, logger)
	projectUC := usecase.NewProjectAdminUsecase(projectRepo, uploader, notifier, logger)
	skillUC := usecase.NewSkillAdminUsecase(skillRepo, uploader, notifier, logger)
	profileUC := usecase.NewProfileAdminUsecase(profileRepo, uploader, notifier, logger)
	dashboardUC := usecase.NewDashboardUsecase(profileRepo, projectRepo, skillRepo, logger)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Sessions),
		ws.NewHandler(c.Hub, cfg.App.CORSOrigins, logger),
		v1.Handlers{
			Public:      handler.NewPublicHandler(contentUC, c.Translator),
			Preferences: handler.NewPreferencesHandler(c.Translator, prefs),
			Contact:     handler.NewContactHandler(contactUC, c.Translator),
			Auth:        handler.NewAuthHandler(authUC),
			User:        handler.NewUserHandler(authUC),
			Project:     handler.NewProjectHandler(projectUC),
			Skill:       handler.NewSkillHandler(skillUC, c.Translator),
			Profile:     handler.NewProfileHandler(profileUC),
			Dashboard:   handler.NewDashboardHandler(dashboardUC),
			RequireAuth: authMw.Middleware(),
		},
	)
	registry.Register(f)

	return &App{Fiber: f}
}

// Bootstrap builds the container, migrates when configured, starts the hub
// and returns the app with its cleanup.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		err := c.Migrate(ctx)
		cancel()
		if err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger, prefs *middleware.PreferencesMiddleware) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(cors.New(corsConfig(cfg.App.CORSOrigins)))
	app.Use(prefs.Middleware())
}

func corsConfig(origins []string) cors.Config {
	cleaned := make([]string, 0, len(origins))
	wildcard := false
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			wildcard = true
		}
		cleaned = append(cleaned, o)
	}

	return cors.Config{
		AllowOrigins: cleaned,
		AllowHeaders: []string{
			fiber.HeaderOrigin,
			fiber.HeaderContentType,
			fiber.HeaderAccept,
			fiber.HeaderAuthorization,
			fiber.HeaderAcceptLanguage,
			fiber.HeaderXRequestID,
		},
		// Preference cookies need credentials, which a wildcard origin forbids.
		AllowCredentials: !wildcard && len(cleaned) > 0,
	}
}

// registerStorage serves uploaded objects when they live on local disk.
func registerStorage(app *fiber.App, store storage.Store) {
	local, ok := store.(*storage.LocalStore)
	if !ok || local == nil {
		return
	}
	app.Use("/storage", static.New(local.Dir()))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
