package services

import (
	"errors"
	"fmt"

	"boardcamp/internal/repositories"
)

var (
	// ErrNotFound is returned when the addressed entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("conflict")
	// ErrInvalidReference is returned when a referenced entity does not exist.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrOutOfStock is returned when every copy of a game is already rented.
	ErrOutOfStock = errors.New("out of stock")
	// ErrAlreadyReturned is returned when returning a rental twice.
	ErrAlreadyReturned = errors.New("rental already returned")
	// ErrNotReturned is returned when deleting a rental still out.
	ErrNotReturned = errors.New("rental not returned")
	// ErrInvalidInput is returned for input the service cannot act on.
	ErrInvalidInput = errors.New("invalid input")
)

// lookup runs a repository lookup and reports whether it found a row.
// A repository ErrNotFound is not an error here.
func lookup[T any](get func() (*T, error)) (*T, bool, error) {
	v, err := get()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, true, nil
}

func conflictOr(err error, format string, args ...interface{}) error {
	if errors.Is(err, repositories.ErrDuplicate) {
		return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
	}
	return err
}
