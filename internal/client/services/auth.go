// Package services contains application services for the tokenkeeper CLI.
// The auth service drives the remote client and keeps the local session in
// step with every token the server hands out.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/client"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/repositories/session"
)

// AuthService defines the session operations of the CLI.
//
// Contract:
//   - Register / Login: authenticate and persist the returned session.
//   - Refresh: rotate the stored pair.
//   - Revoke: revoke a refresh token; an empty token means the stored one.
//   - Logout: revoke the stored refresh token (if any) and forget the session.
//   - Current: the stored session, or client.ErrNotLoggedIn.
type AuthService interface {
	Register(ctx context.Context, email, displayName string, password []byte, rememberMe bool) (*models.Session, error)
	Login(ctx context.Context, email string, password []byte, rememberMe bool) (*models.Session, error)
	Refresh(ctx context.Context) (*models.Session, error)
	Revoke(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
	Close() error
}

type authService struct {
	client   client.Client
	sessions session.Repository
}

func NewAuthService(c client.Client, sessions session.Repository) AuthService {
	return &authService{client: c, sessions: sessions}
}

func (a *authService) Register(ctx context.Context, email, displayName string, password []byte, rememberMe bool) (*models.Session, error) {
	s, err := a.client.Register(ctx, email, displayName, password, rememberMe)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if err := a.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return s, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte, rememberMe bool) (*models.Session, error) {
	s, err := a.client.Login(ctx, email, password, rememberMe)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return s, nil
}

func (a *authService) Current(ctx context.Context) (*models.Session, error) {
	s, err := a.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, client.ErrNotLoggedIn
	}
	return s, nil
}

// load restores the stored pair into the client.
func (a *authService) load(ctx context.Context) (*models.Session, error) {
	s, err := a.Current(ctx)
	if err != nil {
		return nil, err
	}
	a.client.SetTokens(s.AccessToken, s.RefreshToken)
	return s, nil
}

// store saves whatever pair the client holds now. It runs even after a
// failed call, because the client may have rotated before failing.
func (a *authService) store(ctx context.Context, s *models.Session) error {
	s.AccessToken, s.RefreshToken = a.client.Tokens()
	return a.sessions.Save(ctx, s)
}

func (a *authService) Refresh(ctx context.Context) (*models.Session, error) {
	s, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	if !s.CanRefresh() {
		return nil, fmt.Errorf("%w: no refresh token, log in with remember-me", client.ErrNotLoggedIn)
	}

	if err := a.client.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("refresh error: %w", err)
	}
	if err := a.store(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return s, nil
}

func (a *authService) Revoke(ctx context.Context, token string) error {
	s, err := a.load(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		token = s.RefreshToken
	}
	if token == "" {
		return fmt.Errorf("%w: no refresh token to revoke", client.ErrInvalidArgument)
	}

	own := token == s.RefreshToken
	revokeErr := a.client.Revoke(ctx, token)

	if err := a.store(ctx, s); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	if revokeErr != nil {
		return fmt.Errorf("revoke error: %w", revokeErr)
	}

	if own {
		// the client rotated mid-call, so the stored token is a successor
		if s.RefreshToken != "" && s.RefreshToken != token {
			if err := a.client.Revoke(ctx, s.RefreshToken); err != nil {
				return fmt.Errorf("revoke error: %w", err)
			}
		}
		s.RefreshToken = ""
		a.client.SetTokens(s.AccessToken, "")
		if err := a.sessions.Save(ctx, s); err != nil {
			return fmt.Errorf("session saving error: %w", err)
		}
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	s, err := a.Current(ctx)
	if err != nil {
		return err
	}
	if s.RefreshToken != "" {
		if err := a.Revoke(ctx, s.RefreshToken); err != nil {
			return err
		}
	}
	a.client.SetTokens("", "")
	return a.sessions.Clear(ctx)
}

func (a *authService) Close() error {
	return a.client.Close()
}
