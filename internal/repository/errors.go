package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned by the FindByID methods when no row matches.
// Update and Delete do not raise it; they report zero rows affected and the
// caller checks the count.
var ErrNotFound = gorm.ErrRecordNotFound

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsConstraintErr reports a unique-field collision or foreign-key violation
// from SQLite, e.g. "UNIQUE constraint failed: employees.id_number". These
// are recoverable and surfaced to the caller for user-facing correction.
func IsConstraintErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
