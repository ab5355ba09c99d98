package errs

import (
	"errors"
	"net/http"
)

var (
	ErrMissingToken           = errors.New("token not provided")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrValidation             = errors.New("validation failed")
	ErrNotFoundOrUnauthorized = errors.New("not found or not authorized")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailTaken             = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrStore                  = errors.New("store error")
)

// ErrStatusMap holds the status for every error whose code does not depend
// on the route. ErrStore is absent: callers pick 400 or 500 for it.
var ErrStatusMap = map[error]int{
	ErrMissingToken:           http.StatusForbidden,
	ErrInvalidToken:           http.StatusUnauthorized,
	ErrValidation:             http.StatusBadRequest,
	ErrNotFoundOrUnauthorized: http.StatusNotFound,
	ErrInvalidCredentials:     http.StatusBadRequest,
	ErrEmailTaken:             http.StatusBadRequest,
	ErrUserNotFound:           http.StatusNotFound,
}

// StatusFor returns the mapped status for err, or fallback.
func StatusFor(err error, fallback int) int {
	for knownErr, statusCode := range ErrStatusMap {
		if errors.Is(err, knownErr) {
			return statusCode
		}
	}
	return fallback
}
