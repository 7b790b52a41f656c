package domain

import "errors"

var (
	// ErrInvalidCredentials is returned when the backend rejects a login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrLoginUnavailable covers every other login failure.
	ErrLoginUnavailable = errors.New("login is temporarily unavailable")
)
