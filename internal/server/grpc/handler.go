package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/tokenkeeper/internal/api/authv1"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *authv1.RegisterRequest) (*authv1.SessionResponse, error) {

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}

	session, err := s.users.Register(ctx, req.Email, req.DisplayName, req.Password, req.RememberMe)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "user already exists")
		}
		s.logger.Error(ctx, "registration failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &authv1.SessionResponse{
		Email:        session.User.Email,
		DisplayName:  session.User.DisplayName,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *authv1.LoginRequest) (*authv1.SessionResponse, error) {

	session, err := s.users.Login(ctx, req.Email, req.Password, req.RememberMe)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		s.logger.Error(ctx, "login failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &authv1.SessionResponse{
		Email:        session.User.Email,
		DisplayName:  session.User.DisplayName,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}, nil
}

// RefreshToken answers every authentication failure the same way so callers
// cannot tell which of the two tokens was rejected.
func (s *GRPCServer) RefreshToken(ctx context.Context, req *authv1.RefreshTokenRequest) (*authv1.RefreshTokenResponse, error) {

	pair, err := s.tokens.Rotate(ctx, req.AccessToken, req.RefreshToken)
	if err != nil {
		if common.IsAuthError(err) {
			s.logger.Debug(ctx, "refresh rejected", "reason", err.Error())
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		s.logger.Error(ctx, "refresh failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &authv1.RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// RevokeToken revokes one of the caller's own refresh tokens. Tokens of
// other users are reported as not found.
func (s *GRPCServer) RevokeToken(ctx context.Context, req *authv1.RevokeTokenRequest) (*authv1.RevokeTokenResponse, error) {

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if req.Token == "" {
		return nil, status.Error(codes.InvalidArgument, "token is required")
	}

	owner, err := s.tokens.RefreshTokenOwner(ctx, req.Token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "token not found")
		}
		s.logger.Error(ctx, "revoke lookup failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	if owner.Email != claims.Subject {
		return nil, status.Error(codes.NotFound, "token not found")
	}

	found, err := s.tokens.RevokeRefreshToken(ctx, req.Token)
	if err != nil {
		s.logger.Error(ctx, "revoke failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	if !found {
		return nil, status.Error(codes.NotFound, "token not found")
	}

	return &authv1.RevokeTokenResponse{}, nil
}
