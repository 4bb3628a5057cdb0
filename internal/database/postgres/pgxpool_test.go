package postgres

import (
	"strings"
	"testing"

	"portfolio/internal/config"
)

func TestDSN_EscapesPassword(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		DBHost:     "db",
		DBPort:     "5432",
		DBName:     "portfolio",
		DBUser:     "admin",
		DBPassword: "p@ss word",
		DBSSLMode:  "disable",
	})

	if !strings.HasPrefix(dsn, "postgres://admin:") {
		t.Fatalf("unexpected dsn prefix: %s", dsn)
	}
	if strings.Contains(dsn, "p@ss word") {
		t.Fatalf("password not escaped: %s", dsn)
	}
	if !strings.HasSuffix(dsn, "@db:5432/portfolio?sslmode=disable") {
		t.Fatalf("unexpected dsn: %s", dsn)
	}
}

func TestNilPool(t *testing.T) {
	var p *Pool
	if err := p.Close(); err != nil {
		t.Fatalf("close on nil pool: %v", err)
	}
	if _, err := p.Exec(t.Context(), "SELECT 1"); err == nil {
		t.Fatal("expected error from nil pool")
	}
	var n int
	if err := p.QueryRow(t.Context(), "SELECT 1").Scan(&n); err == nil {
		t.Fatal("expected scan error from nil pool")
	}
}
