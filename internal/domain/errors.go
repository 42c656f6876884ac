package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services and repositories. HTTP mapping lives in
// internal/http/response.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials is the single error returned for any login
	// failure. It must not reveal whether the identifier or the password
	// was wrong.
	ErrInvalidCredentials = errors.New("invalid email/phone or password")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
