package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/tokenkeeper/internal/api/authv1"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client authv1.AuthServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the access token to RevokeToken calls.
// When the server rejects it and a refresh token is held, the pair is
// rotated once and the call retried with the new access token.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if method != authv1.AuthService_RevokeToken_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := s.Tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if status.Code(err) != codes.Unauthenticated || refresh == "" {
		return err
	}

	if rerr := s.Refresh(ctx); rerr != nil {
		return err
	}

	access, _ = s.Tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

// NewGRPCClient dials target without transport security. Extra dial options
// are appended, which tests use to plug in an in-memory listener.
func NewGRPCClient(target string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = authv1.NewAuthServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

func (s *GRPCClient) Tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) session(resp *authv1.SessionResponse) *models.Session {
	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return &models.Session{
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
}

func (s *GRPCClient) Register(ctx context.Context, email, displayName string, password []byte, rememberMe bool) (*models.Session, error) {
	req := &authv1.RegisterRequest{Email: email, DisplayName: displayName, Password: string(password), RememberMe: rememberMe}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.session(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, password []byte, rememberMe bool) (*models.Session, error) {
	req := &authv1.LoginRequest{Email: email, Password: string(password), RememberMe: rememberMe}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.session(resp), nil
}

// Refresh trades the held pair for a new one. The old refresh token is
// spent on success and must not be presented again.
func (s *GRPCClient) Refresh(ctx context.Context) error {
	access, refresh := s.Tokens()
	if access == "" || refresh == "" {
		return ErrNotLoggedIn
	}

	resp, err := s.client.RefreshToken(ctx, &authv1.RefreshTokenRequest{AccessToken: access, RefreshToken: refresh})
	if err != nil {
		return s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) Revoke(ctx context.Context, token string) error {
	_, err := s.client.RevokeToken(ctx, &authv1.RevokeTokenRequest{Token: token})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
