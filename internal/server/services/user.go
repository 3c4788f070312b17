package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Session is what a client receives after registering or logging in.
// RefreshToken is empty unless the client asked to be remembered.
type Session struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// UserService provides the user directory operations:
// - Register: create a user and open a session
// - Login: verify credentials and open a session
type UserService struct {
	repos      repomanager.RepositoryManager
	tokens     *TokenService
	logger     logging.Logger
	bcryptCost int
	// compared against when the email is unknown so both paths cost a hash
	dummyHash []byte
}

type UserOption func(*UserService)

func WithBcryptCost(cost int) UserOption {
	return func(s *UserService) { s.bcryptCost = cost }
}

func WithUserLogger(l logging.Logger) UserOption {
	return func(s *UserService) { s.logger = l }
}

// NewUserService constructs a UserService on top of the token lifecycle.
func NewUserService(repos repomanager.RepositoryManager, tokens *TokenService, opts ...UserOption) (*UserService, error) {
	s := &UserService{
		repos:      repos,
		tokens:     tokens,
		logger:     logging.Nop{},
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = s.logger.With("module", "users")

	h, err := bcrypt.GenerateFromPassword([]byte("tokenkeeper-dummy-password"), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("prepare password hashing: %w", err)
	}
	s.dummyHash = h
	return s, nil
}

// Register creates a user. A taken email yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, displayName, password string, rememberMe bool) (*Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: hash,
	}

	u, err := s.repos.Users(s.repos.Conn()).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return s.openSession(ctx, u, rememberMe, metrics.SourceRegister)
}

// Login checks credentials. Unknown email and wrong password both yield
// common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string, rememberMe bool) (*Session, error) {
	user, err := s.repos.Users(s.repos.Conn()).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.openSession(ctx, user, rememberMe, metrics.SourceLogin)
}

func (s *UserService) openSession(ctx context.Context, user *models.User, rememberMe bool, source string) (*Session, error) {
	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	metrics.AccessTokenIssued(source)

	session := &Session{User: user, AccessToken: access}
	if rememberMe {
		refresh, err := s.tokens.CreateRefreshToken(ctx, user)
		if err != nil {
			return nil, err
		}
		metrics.RefreshTokenIssued(source)
		session.RefreshToken = refresh
	}
	return session, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
