package repomanager

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory.
//
// A transaction holds txMu exclusively and restores a snapshot when fn
// fails or panics. Repositories obtained through Conn take txMu for every
// call, so they wait for a running transaction to finish and a rollback
// never discards their writes or exposes uncommitted ones.
type MemoryRepositoryManager struct {
	txMu          sync.RWMutex
	users         *users.MemoryRepository
	refreshTokens *refreshtokens.MemoryRepository
}

// memoryTx is the handle passed to WithTx callbacks. The memory repositories
// never query it.
type memoryTx struct {
	dbx.DBTX
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:         users.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

// Conn returns nil; the memory repositories ignore their DBTX.
func (m *MemoryRepositoryManager) Conn() dbx.DBTX { return nil }

func (m *MemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	if _, ok := db.(*memoryTx); ok {
		return m.users
	}
	return lockedUsers{mu: &m.txMu, repo: m.users}
}

func (m *MemoryRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	if _, ok := db.(*memoryTx); ok {
		return m.refreshTokens
	}
	return lockedRefreshTokens{mu: &m.txMu, repo: m.refreshTokens}
}

// WithTx runs fn with exclusive access to the store. fn must use the tx
// handle it is given; repositories from Conn would wait on the same lock.
func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) (err error) {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	userSnap := m.users.Snapshot()
	tokenSnap := m.refreshTokens.Snapshot()

	defer func() {
		if p := recover(); p != nil {
			m.users.Restore(userSnap)
			m.refreshTokens.Restore(tokenSnap)
			panic(p)
		}
		if err != nil {
			m.users.Restore(userSnap)
			m.refreshTokens.Restore(tokenSnap)
		}
	}()

	return fn(ctx, &memoryTx{})
}

func (m *MemoryRepositoryManager) Close() error { return nil }

type lockedUsers struct {
	mu   *sync.RWMutex
	repo users.Repository
}

func (r lockedUsers) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repo.Create(ctx, user)
}

func (r lockedUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.repo.GetByEmail(ctx, email)
}

func (r lockedUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.repo.GetByID(ctx, id)
}

type lockedRefreshTokens struct {
	mu   *sync.RWMutex
	repo refreshtokens.Repository
}

func (r lockedRefreshTokens) Create(ctx context.Context, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repo.Create(ctx, token)
}

func (r lockedRefreshTokens) FindByValue(ctx context.Context, value string) (*models.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.repo.FindByValue(ctx, value)
}

func (r lockedRefreshTokens) Revoke(ctx context.Context, value string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repo.Revoke(ctx, value, at)
}

func (r lockedRefreshTokens) RevokeIfActive(ctx context.Context, value string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repo.RevokeIfActive(ctx, value, at)
}

func (r lockedRefreshTokens) RevokeAllForUser(ctx context.Context, userID string, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repo.RevokeAllForUser(ctx, userID, at)
}
