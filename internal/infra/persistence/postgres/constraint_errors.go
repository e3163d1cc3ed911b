package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) (string, *pgconn.PgError) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr
	}

	return "", nil
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if code, _ := pgErrorCode(err); code == pgNotNullViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "violates not-null")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgCheckViolation
}

// conflictingColumn extracts the column behind a unique violation from the
// constraint name gorm generates (uni_<table>_<column> or idx_<table>_<column>).
// It returns fallback when the name does not follow that shape.
func conflictingColumn(err error, table, fallback string) string {
	_, pgErr := pgErrorCode(err)
	if pgErr == nil || pgErr.ConstraintName == "" {
		return fallback
	}

	name := pgErr.ConstraintName
	for _, prefix := range []string{"uni_" + table + "_", "idx_" + table + "_", table + "_"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			return strings.TrimSuffix(rest, "_key")
		}
	}

	return fallback
}

// fieldLabel turns a column name into the user-facing field name, e.g. tax_id -> Tax ID.
func fieldLabel(column string) string {
	parts := strings.Split(column, "_")
	for i, p := range parts {
		switch p {
		case "id", "sku", "url":
			parts[i] = strings.ToUpper(p)
		default:
			if p != "" {
				parts[i] = strings.ToUpper(p[:1]) + p[1:]
			}
		}
	}

	return strings.Join(parts, " ")
}
