// Package refreshtokens declares the server-side repository contract for
// persisting refresh tokens, with PostgreSQL and in-memory implementations.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
)

// Repository defines storage operations for refresh tokens. Rows are never
// deleted; revocation only sets revoked_at.
type Repository interface {
	// Create inserts token. A row with the same value already present
	// yields common.ErrorAlreadyExists and leaves the existing row untouched.
	Create(ctx context.Context, token *models.RefreshToken) error

	// FindByValue returns the row for value, or common.ErrorNotFound.
	FindByValue(ctx context.Context, value string) (*models.RefreshToken, error)

	// Revoke marks value revoked at at unless it already is. The result
	// reports whether the row exists.
	Revoke(ctx context.Context, value string, at time.Time) (bool, error)

	// RevokeIfActive revokes value only when it is unrevoked and unexpired
	// at at. The result reports whether this call performed the revocation.
	RevokeIfActive(ctx context.Context, value string, at time.Time) (bool, error)

	// RevokeAllForUser revokes every active token of userID and returns
	// how many were revoked.
	RevokeAllForUser(ctx context.Context, userID string, at time.Time) (int64, error)
}
