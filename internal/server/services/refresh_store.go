package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/repomanager"
)

// maxCreateAttempts bounds how many fresh values Create tries when the
// generated one is already taken.
const maxCreateAttempts = 3

// RefreshTokenStore creates, looks up and revokes refresh tokens. Every
// call takes the DBTX it should run on, so callers decide whether it joins
// a transaction.
type RefreshTokenStore struct {
	repos    repomanager.RepositoryManager
	clock    func() time.Time
	newValue func() (string, error)
}

func NewRefreshTokenStore(repos repomanager.RepositoryManager, clock func() time.Time) *RefreshTokenStore {
	return &RefreshTokenStore{
		repos: repos,
		clock: clock,
		newValue: func() (string, error) {
			return common.MakeRandToken(common.RefreshTokenSize)
		},
	}
}

// Create persists a new token for user that expires ttl from now.
func (s *RefreshTokenStore) Create(ctx context.Context, db dbx.DBTX, user *models.User, ttl time.Duration) (*models.RefreshToken, error) {
	repo := s.repos.RefreshTokens(db)

	var token *models.RefreshToken
	op := func() error {
		value, err := s.newValue()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("generate refresh token: %w", err))
		}
		now := s.clock()
		t := &models.RefreshToken{
			Token:     value,
			UserID:    user.ID,
			CreatedAt: now,
			ExpiresAt: now.Add(ttl),
		}
		if err := repo.Create(ctx, t); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return err
			}
			return backoff.Permanent(fmt.Errorf("store refresh token: %w", err))
		}
		token = t
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, maxCreateAttempts-1), ctx)
	if err := backoff.Retry(op, b); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, fmt.Errorf("refresh token collision after %d attempts: %w", maxCreateAttempts, err)
		}
		return nil, err
	}
	return token, nil
}

// FindByValue returns common.ErrorNotFound for unknown values.
func (s *RefreshTokenStore) FindByValue(ctx context.Context, db dbx.DBTX, value string) (*models.RefreshToken, error) {
	return s.repos.RefreshTokens(db).FindByValue(ctx, value)
}

// Revoke is idempotent; a second call keeps the first revocation instant.
// The result reports whether the token exists.
func (s *RefreshTokenStore) Revoke(ctx context.Context, db dbx.DBTX, value string) (bool, error) {
	found, err := s.repos.RefreshTokens(db).Revoke(ctx, value, s.clock())
	if err != nil {
		return false, fmt.Errorf("revoke refresh token: %w", err)
	}
	return found, nil
}

// RevokeIfActive returns false when the token was already revoked or has
// expired, i.e. another caller consumed it first.
func (s *RefreshTokenStore) RevokeIfActive(ctx context.Context, db dbx.DBTX, value string) (bool, error) {
	won, err := s.repos.RefreshTokens(db).RevokeIfActive(ctx, value, s.clock())
	if err != nil {
		return false, fmt.Errorf("revoke refresh token: %w", err)
	}
	return won, nil
}

func (s *RefreshTokenStore) RevokeAllForUser(ctx context.Context, db dbx.DBTX, userID string) (int64, error) {
	n, err := s.repos.RefreshTokens(db).RevokeAllForUser(ctx, userID, s.clock())
	if err != nil {
		return 0, fmt.Errorf("revoke user refresh tokens: %w", err)
	}
	return n, nil
}
