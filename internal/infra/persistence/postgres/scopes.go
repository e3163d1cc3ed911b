package postgres

import (
	"strings"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID assigns ids client side so inserts need no RETURNING round trip for the key.
func newID(id uuid.UUID) uuid.UUID {
	if id != uuid.Nil {
		return id
	}

	return uuid.Must(uuid.NewV7())
}

// paginate applies LIMIT/OFFSET for a normalized page.
func paginate(page entity.Pagination) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.Limit <= 0 {
			return db
		}

		return db.Offset(page.Offset()).Limit(page.Limit)
	}
}

// likePattern builds a case-insensitive substring pattern with LIKE wildcards escaped.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}

// truncate cuts s to at most n runes so free-form client strings fit their column.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
