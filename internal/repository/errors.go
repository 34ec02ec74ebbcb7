package repository

import (
	"errors"
	"strings"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// translateError turns store errors the use cases care about into domain
// error kinds. Everything else is returned unchanged.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case isForeignKeyViolation(err):
		return domain.Conflict(err)
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "foreign_key_violation"
	}
	// pgx and sqlite report the violation only through the message.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint")
}
