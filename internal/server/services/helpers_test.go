package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/auth"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/keys"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessTTL  = 15 * time.Minute
	testRefreshTTL = 7 * 24 * time.Hour
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	repos  repomanager.RepositoryManager
	clock  *testClock
	issuer *auth.Issuer
	tokens *TokenService
	users  *UserService
}

func newFixture(t *testing.T, repos repomanager.RepositoryManager, opts ...TokenOption) *fixture {
	t.Helper()
	if repos == nil {
		repos = repomanager.NewMemoryRepositoryManager()
	}
	clock := newTestClock()

	p, err := keys.NewProvider(strings.Repeat("k", keys.MinKeyLength), "HS512", "tokenkeeper")
	require.NoError(t, err)
	issuer := auth.NewIssuer(p, auth.WithClock(clock.Now))

	tokens := NewTokenService(repos, issuer, testAccessTTL, testRefreshTTL, append([]TokenOption{WithClock(clock.Now)}, opts...)...)
	users, err := NewUserService(repos, tokens, WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, err)

	return &fixture{repos: repos, clock: clock, issuer: issuer, tokens: tokens, users: users}
}

// login registers email with remember_me and returns the session.
func (f *fixture) login(t *testing.T, email string) *Session {
	t.Helper()
	s, err := f.users.Register(context.Background(), email, "Name "+email, "pa55word", true)
	require.NoError(t, err)
	require.NotEmpty(t, s.RefreshToken)
	return s
}

// flakyCreates queues errors for flakyRefreshRepo.Create and counts calls.
type flakyCreates struct {
	mu        sync.Mutex
	createErr []error
	creates   int
}

// flakyRefreshRepo fails Create with the queued errors before delegating.
type flakyRefreshRepo struct {
	refreshtokens.Repository
	state *flakyCreates
}

func (r *flakyRefreshRepo) Create(ctx context.Context, t *models.RefreshToken) error {
	r.state.mu.Lock()
	r.state.creates++
	var err error
	if len(r.state.createErr) > 0 {
		err, r.state.createErr = r.state.createErr[0], r.state.createErr[1:]
	}
	r.state.mu.Unlock()
	if err != nil {
		return err
	}
	return r.Repository.Create(ctx, t)
}

type flakyManager struct {
	*repomanager.MemoryRepositoryManager
	refresh *flakyCreates
}

func newFlakyManager(errs ...error) *flakyManager {
	return &flakyManager{
		MemoryRepositoryManager: repomanager.NewMemoryRepositoryManager(),
		refresh:                 &flakyCreates{createErr: errs},
	}
}

func (m *flakyManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return &flakyRefreshRepo{Repository: m.MemoryRepositoryManager.RefreshTokens(db), state: m.refresh}
}

type brokenRefreshRepo struct {
	refreshtokens.Repository
}

func (brokenRefreshRepo) FindByValue(context.Context, string) (*models.RefreshToken, error) {
	return nil, errors.New("connection reset")
}

type brokenManager struct {
	*repomanager.MemoryRepositoryManager
}

func (m brokenManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return brokenRefreshRepo{m.MemoryRepositoryManager.RefreshTokens(db)}
}

// pausingManager holds every transaction open until release is closed.
type pausingManager struct {
	*flakyManager
	entered chan struct{}
	release chan struct{}
}

func newPausingManager() *pausingManager {
	return &pausingManager{
		flakyManager: newFlakyManager(),
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}
}

func (m *pausingManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return m.flakyManager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		close(m.entered)
		<-m.release
		return fn(ctx, tx)
	})
}
