package auth

import (
	"errors"
	"fmt"
)

type SessionKey string

// ExchangeError is returned when the hub's token endpoint rejects a code
// exchange or refresh. The session is never mutated when one is returned.
type ExchangeError struct {
	Code    string
	Message string
}

func (e *ExchangeError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewExchangeError builds the typed auth_failed error surfaced to callers.
func NewExchangeError(code, format string, args ...any) *ExchangeError {
	return &ExchangeError{Code: code, Message: fmt.Sprintf(format, args...)}
}

var (
	// ErrSessionExpired is returned when the profile check fails and the
	// refresh flow also fails; the caller must clear the session.
	ErrSessionExpired = errors.New("session expired")

	// ErrNoRefreshToken is returned when a refresh is requested but the
	// session never stored a refresh token.
	ErrNoRefreshToken = errors.New("no refresh token in session")
)
