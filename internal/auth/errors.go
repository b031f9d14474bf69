package auth

import "errors"

var (
	// ErrUnauthorized represents missing or invalid webhook tokens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoSecret is returned when a token is requested without a configured secret.
	ErrNoSecret = errors.New("webhook secret not configured")
)
