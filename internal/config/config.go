package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Storage  StorageConfig
	SMTP     SMTPConfig
	Admin    AdminSeedConfig
}

type AppConfig struct {
	AppName       string        `env:"APP_NAME" envDefault:"portfolio"`
	Environment   string        `env:"APP_ENV" envDefault:"development"`
	HTTPPort      string        `env:"HTTP_PORT" envDefault:"8080"`
	PublicBaseURL string        `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	CORSOrigins   []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	ReadTimeout   time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout  time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	BodyLimit     int           `env:"HTTP_BODY_LIMIT" envDefault:"52428800"`
}

type DatabaseConfig struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	ConnectTimeout        time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	PoolMaxConns          int32         `env:"DB_POOL_MAX_CONNS" envDefault:"10"`
	PoolMinConns          int32         `env:"DB_POOL_MIN_CONNS" envDefault:"0"`
	PoolMaxConnLifetime   time.Duration `env:"DB_POOL_MAX_CONN_LIFETIME" envDefault:"1h"`
	PoolMaxConnIdleTime   time.Duration `env:"DB_POOL_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	PoolHealthCheckPeriod time.Duration `env:"DB_POOL_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	MigrationsDir string `env:"DB_MIGRATIONS_DIR" envDefault:"migrations"`
	AutoMigrate   bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET"`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`
}

type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	ContactTTL time.Duration `env:"CONTACT_THROTTLE_TTL" envDefault:"1m"`
}

type StorageConfig struct {
	Driver        string `env:"STORAGE_DRIVER" envDefault:"local"`
	Dir           string `env:"STORAGE_DIR" envDefault:"./storage"`
	PublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Region    string `env:"S3_REGION"`
	S3UseSSL    bool   `env:"S3_USE_SSL" envDefault:"true"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST"`
	Port string `env:"SMTP_PORT" envDefault:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	From string `env:"SMTP_FROM"`
	To   string `env:"CONTACT_TO_EMAIL"`
}

type AdminSeedConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	var missing []string
	req := func(key, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}

	req("DB_NAME", cfg.Database.DBName)
	req("DB_USER", cfg.Database.DBUser)
	req("JWT_SECRET", cfg.JWT.Secret)

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	switch cfg.Storage.Driver {
	case "local":
	case "s3":
		req("S3_ENDPOINT", cfg.Storage.S3Endpoint)
		req("S3_ACCESS_KEY", cfg.Storage.S3AccessKey)
		req("S3_SECRET_KEY", cfg.Storage.S3SecretKey)
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Storage.Driver)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if strings.TrimSpace(cfg.Storage.PublicBaseURL) == "" && cfg.Storage.Driver == "local" {
		cfg.Storage.PublicBaseURL = strings.TrimRight(cfg.App.PublicBaseURL, "/") + "/storage"
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.App.Environment), "production")
}
