// Package session persists the CLI session in a local SQLite database as a
// small key/value table.
package session

import (
	"context"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/models"
)

// Repository loads and stores the single local session.
//
// Load returns (nil, nil) when nothing was saved. Save replaces whatever was
// stored before, including clearing a refresh token that is no longer held.
type Repository interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Clear(ctx context.Context) error
}
