package auth

import "errors"

var (
	// ErrUserNotFound is returned by the repository when no record exists
	// for a (oauthID, provider) pair.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken covers signature mismatch, malformed tokens and
	// expiry. Verification never tells the caller which check failed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrWrongTokenType marks a structurally valid token presented where
	// the other kind is required (refresh as access or vice versa).
	ErrWrongTokenType = errors.New("wrong token type")
)
