// Package common defines shared constants and sentinel errors used across
// client and server layers of tokenkeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Startup errors. Any error wrapping ErrConfiguration is fatal.
	ErrConfiguration = errors.New("configuration error")

	// Access token errors.
	ErrInvalidAccessToken = errors.New("invalid access token")
	ErrTokenExpired       = errors.New("token expired")

	// Refresh token lifecycle errors.
	ErrInvalidRefreshToken          = errors.New("invalid refresh token")
	ErrRefreshTokenExpiredOrRevoked = errors.New("refresh token expired or revoked")
)

// IsAuthError reports whether err is one of the token authentication
// failures returned by rotation. Storage and internal errors never match.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidAccessToken) ||
		errors.Is(err, ErrInvalidRefreshToken) ||
		errors.Is(err, ErrRefreshTokenExpiredOrRevoked) ||
		errors.Is(err, ErrTokenExpired)
}
