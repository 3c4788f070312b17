package refreshtokens

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
)

// MemoryRepository keeps refresh tokens in a map. Values handed in and out
// are copies, so callers never share state with the store.
type MemoryRepository struct {
	mu     sync.RWMutex
	tokens map[string]models.RefreshToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: make(map[string]models.RefreshToken)}
}

func (r *MemoryRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[token.Token]; ok {
		return common.ErrorAlreadyExists
	}
	r.tokens[token.Token] = clone(*token)
	return nil
}

func (r *MemoryRepository) FindByValue(ctx context.Context, value string) (*models.RefreshToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tokens[value]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := clone(t)
	return &c, nil
}

func (r *MemoryRepository) Revoke(ctx context.Context, value string, at time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[value]
	if !ok {
		return false, nil
	}
	if t.RevokedAt == nil {
		t.RevokedAt = &at
		r.tokens[value] = t
	}
	return true, nil
}

func (r *MemoryRepository) RevokeIfActive(ctx context.Context, value string, at time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[value]
	if !ok || !t.IsActive(at) {
		return false, nil
	}
	t.RevokedAt = &at
	r.tokens[value] = t
	return true, nil
}

func (r *MemoryRepository) RevokeAllForUser(ctx context.Context, userID string, at time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for k, t := range r.tokens {
		if t.UserID != userID || !t.IsActive(at) {
			continue
		}
		t.RevokedAt = &at
		r.tokens[k] = t
		n++
	}
	return n, nil
}

// Snapshot returns a copy of the current contents for Restore.
func (r *MemoryRepository) Snapshot() map[string]models.RefreshToken {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.tokens)
}

// Restore replaces the contents with a snapshot.
func (r *MemoryRepository) Restore(s map[string]models.RefreshToken) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = s
}

func clone(t models.RefreshToken) models.RefreshToken {
	if t.RevokedAt != nil {
		at := *t.RevokedAt
		t.RevokedAt = &at
	}
	return t
}
