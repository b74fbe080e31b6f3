// Package apperr defines the error taxonomy shared by services and
// handlers. Services wrap one of the sentinel errors with context; the
// handler layer maps them to HTTP status codes and never exposes raw
// store errors to clients.
package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

var (
	// ErrValidation marks a request rejected before any store access.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized marks bad credentials or a missing session. Login
	// failures carry no detail about which factor failed.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate unique field, e.g. an email already
	// registered.
	ErrConflict = errors.New("conflict")
)

// Validationf wraps ErrValidation with a caller-facing message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with a caller-facing message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflictf wraps ErrConflict with a caller-facing message.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// uniqueViolation is the postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// FromStore classifies a store error: no rows becomes ErrNotFound, a
// unique-constraint violation becomes ErrConflict, everything else passes
// through untouched and surfaces as a 500.
func FromStore(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrConflict, pqErr.Constraint)
	}
	return err
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
