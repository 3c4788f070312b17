package client

import (
	"context"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, email, displayName string, password []byte, rememberMe bool) (*models.Session, error)
	Login(ctx context.Context, email string, password []byte, rememberMe bool) (*models.Session, error)
	Refresh(ctx context.Context) error
	Revoke(ctx context.Context, token string) error
	SetTokens(accessToken, refreshToken string)
	Tokens() (accessToken, refreshToken string)
}
