package postgres

import (
	"strings"

	"conduit/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err comes from a unique
// index or primary key conflict.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	return strings.Contains(err.Error(), "violates not-null constraint")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
