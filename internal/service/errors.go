package service

import (
	"errors"
	"fmt"
)

// Domain outcomes. Handlers map each to a fixed status and message.
var (
	ErrDuplicateFavorite      = errors.New("this recipe is already in the favorites")
	ErrFavoriteNotFound       = errors.New("the recipe is not in the user's favorites")
	ErrRatingRequiresFavorite = errors.New("recipe is not in the user's favorite list")
	ErrDuplicateRating        = errors.New("user has already rated this recipe")
	ErrRecipeNotFound         = errors.New("recipe not found")

	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")

	ErrRecommenderUnavailable = errors.New("recommendation service unavailable")
)

// ValidationError reports a malformed input. Nothing was read or written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StorageError wraps an unexpected persistence failure. It is never retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
