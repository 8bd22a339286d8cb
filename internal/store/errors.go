package store

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate is returned when a unique index rejects an insert.
	ErrDuplicate = errors.New("record already exists")
	// ErrNotFound is returned when the targeted row does not exist.
	ErrNotFound = errors.New("record not found")
)

const pqUniqueViolation = "23505"

// isUniqueViolation recognises duplicate-key failures from every driver we run on:
// gorm's translated error, lib/pq, and SQLite's message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}
