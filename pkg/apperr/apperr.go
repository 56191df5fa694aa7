// Package apperr defines the failure classes the services speak in.
// Controllers never inspect error strings; they map a wrapped sentinel to an
// HTTP status via Status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation = errors.New("invalid input")
	ErrPermission = errors.New("permission denied")
	ErrNotFound   = errors.New("not found")
	ErrProtected  = errors.New("referenced by other records")
	ErrEmptyCart  = errors.New("cart is empty")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Protectedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrProtected, fmt.Sprintf(format, args...))
}

// Status maps a domain error to its HTTP status. Anything unrecognized is a
// server error.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrProtected):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
