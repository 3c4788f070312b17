package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
)

const (
	keyEmail        = "email"
	keyDisplayName  = "display_name"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	if value == "" {
		_, err := db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
		if err != nil {
			return fmt.Errorf("failed to delete session[%s]: %w", key, err)
		}
		return nil
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.Session, error) {
	s := &models.Session{}
	fields := []struct {
		key string
		dst *string
	}{
		{keyEmail, &s.Email},
		{keyDisplayName, &s.DisplayName},
		{keyAccessToken, &s.AccessToken},
		{keyRefreshToken, &s.RefreshToken},
	}
	for _, f := range fields {
		v, err := get(ctx, r.db, f.key)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	if s.AccessToken == "" {
		return nil, nil
	}
	return s, nil
}

// Save writes every field in one transaction so a rotated pair is never
// stored half-updated.
func (r *SQLiteRepository) Save(ctx context.Context, s *models.Session) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyEmail, s.Email); err != nil {
			return err
		}
		if err := set(ctx, tx, keyDisplayName, s.DisplayName); err != nil {
			return err
		}
		if err := set(ctx, tx, keyAccessToken, s.AccessToken); err != nil {
			return err
		}
		return set(ctx, tx, keyRefreshToken, s.RefreshToken)
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
