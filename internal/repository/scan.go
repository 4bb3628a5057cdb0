package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func isNoRows(err error) bool {
	return err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows)
}

// textOrNull stores blank optional text as NULL.
func textOrNull(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
