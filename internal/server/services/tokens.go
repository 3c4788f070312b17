// Package services contains server-side business logic: the token
// lifecycle (issuance, rotation, revocation) and the user directory.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/auth"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/reuse"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService owns the token lifecycle. It keeps no mutable state of its
// own; all coordination happens in storage.
type TokenService struct {
	repos      repomanager.RepositoryManager
	issuer     *auth.Issuer
	store      *RefreshTokenStore
	detector   reuse.Detector
	logger     logging.Logger
	clock      func() time.Time
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type TokenOption func(*TokenService)

// WithClock replaces time.Now for expiry decisions. Give the Issuer the
// same clock.
func WithClock(clock func() time.Time) TokenOption {
	return func(s *TokenService) { s.clock = clock }
}

// WithReuseDetector enables the reuse cascade: once d reports its
// threshold, every active refresh token of the user is revoked.
func WithReuseDetector(d reuse.Detector) TokenOption {
	return func(s *TokenService) { s.detector = d }
}

func WithLogger(l logging.Logger) TokenOption {
	return func(s *TokenService) { s.logger = l }
}

func NewTokenService(repos repomanager.RepositoryManager, issuer *auth.Issuer, accessTTL, refreshTTL time.Duration, opts ...TokenOption) *TokenService {
	s := &TokenService{
		repos:      repos,
		issuer:     issuer,
		detector:   reuse.Nop{},
		logger:     logging.Nop{},
		clock:      time.Now,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.With("module", "tokens")
	s.store = NewRefreshTokenStore(repos, s.clock)
	return s
}

// IssueAccessToken signs an access token for user with the configured TTL.
func (s *TokenService) IssueAccessToken(user *models.User) (string, error) {
	return s.issuer.IssueAccessToken(user, s.accessTTL)
}

// CreateRefreshToken persists a new refresh token for user and returns its value.
func (s *TokenService) CreateRefreshToken(ctx context.Context, user *models.User) (string, error) {
	t, err := s.store.Create(ctx, s.repos.Conn(), user, s.refreshTTL)
	if err != nil {
		return "", err
	}
	return t.Token, nil
}

// RevokeRefreshToken reports whether the token exists. Revoking twice is
// not an error.
func (s *TokenService) RevokeRefreshToken(ctx context.Context, value string) (bool, error) {
	found, err := s.store.Revoke(ctx, s.repos.Conn(), value)
	if err != nil {
		return false, err
	}
	metrics.Revocation(found)
	if found {
		s.logger.Info(ctx, "refresh token revoked")
	}
	return found, nil
}

// RefreshTokenOwner loads the user a refresh token belongs to, or
// common.ErrorNotFound.
func (s *TokenService) RefreshTokenOwner(ctx context.Context, value string) (*models.User, error) {
	conn := s.repos.Conn()
	t, err := s.store.FindByValue(ctx, conn, value)
	if err != nil {
		return nil, err
	}
	return s.repos.Users(conn).GetByID(ctx, t.UserID)
}

// Rotate exchanges a (possibly expired) access token and an active refresh
// token for a new pair. The old refresh token is consumed: revoking it and
// storing its successor happen in one transaction, and of two concurrent
// calls with the same refresh token only one can succeed.
//
// Auth failures are common.ErrInvalidAccessToken,
// common.ErrInvalidRefreshToken or common.ErrRefreshTokenExpiredOrRevoked.
func (s *TokenService) Rotate(ctx context.Context, accessToken, refreshToken string) (pair *TokenPair, err error) {
	defer func() { metrics.Rotation(err) }()

	claims, err := s.issuer.InspectExpiredToken(accessToken)
	if err != nil {
		return nil, common.ErrInvalidAccessToken
	}

	conn := s.repos.Conn()

	stored, err := s.store.FindByValue(ctx, conn, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}

	user, err := s.repos.Users(conn).GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("load token owner: %w", err)
	}
	if user.Email != claims.Subject {
		s.logger.Warn(ctx, "refresh token presented with another user's access token", "user_id", user.ID)
		return nil, common.ErrInvalidRefreshToken
	}

	if !stored.IsActive(s.clock()) {
		if stored.IsRevoked() {
			s.onReuse(ctx, user)
		}
		return nil, common.ErrRefreshTokenExpiredOrRevoked
	}

	access, err := s.issuer.IssueAccessToken(user, s.accessTTL)
	if err != nil {
		return nil, err
	}

	var next *models.RefreshToken
	err = s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		won, err := s.store.RevokeIfActive(ctx, tx, refreshToken)
		if err != nil {
			return err
		}
		if !won {
			return common.ErrRefreshTokenExpiredOrRevoked
		}
		next, err = s.store.Create(ctx, tx, user, s.refreshTTL)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpiredOrRevoked) {
			s.logger.Info(ctx, "lost refresh token rotation race", "user_id", user.ID)
			return nil, err
		}
		return nil, fmt.Errorf("rotate refresh token: %w", err)
	}

	metrics.AccessTokenIssued(metrics.SourceRotation)
	metrics.RefreshTokenIssued(metrics.SourceRotation)
	s.logger.Info(ctx, "refresh token rotated", "user_id", user.ID)

	return &TokenPair{AccessToken: access, RefreshToken: next.Token}, nil
}

// onReuse handles a revoked refresh token being presented again. Failures
// here are logged only; the caller is rejected either way.
func (s *TokenService) onReuse(ctx context.Context, user *models.User) {
	s.logger.Warn(ctx, "revoked refresh token presented", "user_id", user.ID)
	metrics.ReuseDetected()

	trip, err := s.detector.Observe(ctx, user.ID)
	if err != nil {
		s.logger.Error(ctx, "reuse detector failed", "user_id", user.ID, "error", err)
		return
	}
	if !trip {
		return
	}

	n, err := s.store.RevokeAllForUser(ctx, s.repos.Conn(), user.ID)
	if err != nil {
		s.logger.Error(ctx, "reuse cascade failed", "user_id", user.ID, "error", err)
		return
	}
	metrics.CascadeRevoked(n)
	s.logger.Warn(ctx, "revoked all refresh tokens after repeated reuse", "user_id", user.ID, "revoked", n)

	if err := s.detector.Reset(ctx, user.ID); err != nil {
		s.logger.Error(ctx, "reuse counter reset failed", "user_id", user.ID, "error", err)
	}
}
