package utils

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Sentinels for the storage-level failures the handlers distinguish.
// Credential and field-parse failures never leave the form boundary,
// so they have no sentinel; everything else surfaces as a 500.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConstraint = errors.New("constraint violation")
)

// IsNotFound reports whether err means the requested row is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// IsConstraintViolation reports whether err is a foreign-key or
// uniqueness violation surfaced by the storage layer. Recognizes our
// own sentinel, postgres error classes 23503/23505 and the sqlite
// constraint message used by the test driver.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConstraint) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503" || pqErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23503") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "constraint failed") ||
		strings.Contains(msg, "UNIQUE constraint")
}
