package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage.
// Expired entries are dropped lazily on read.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Workspace
	clock clock.Clock
	ttl   time.Duration
}

// NewInMemory creates a new in-memory repository. A nil clock uses the real clock.
func NewInMemory(clk clock.Clock, ttl time.Duration) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &InMemoryRepository{
		store: make(map[string]*Workspace),
		clock: clk,
		ttl:   ttl,
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a workspace by identity
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Identity == "" {
		return nil, errors.InvalidArgument(errIdentityEmpty)
	}

	r.mu.RLock()
	ws, exists := r.store[input.Identity]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("no workspace for %s", input.Identity)
	}

	if !r.clock.Now().Before(ws.ExpiresAt) {
		r.mu.Lock()
		// Re-check under the write lock, a concurrent Save may have refreshed it
		if current, ok := r.store[input.Identity]; ok && current == ws {
			delete(r.store, input.Identity)
		}
		r.mu.Unlock()
		return nil, errors.NotFoundf("no workspace for %s", input.Identity)
	}

	return &GetOutput{Workspace: copyWorkspace(ws)}, nil
}

// Save stores a copy of the workspace
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateWorkspace(input.Workspace); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	ws := copyWorkspace(input.Workspace)
	ws.UpdatedAt = now
	ws.ExpiresAt = now.Add(ttl)

	r.mu.Lock()
	r.store[ws.Identity] = ws
	r.mu.Unlock()

	return &SaveOutput{Workspace: copyWorkspace(ws)}, nil
}

// Delete removes a workspace
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Identity == "" {
		return nil, errors.InvalidArgument(errIdentityEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.Identity]
	delete(r.store, input.Identity)

	return &DeleteOutput{Deleted: exists}, nil
}

// Return a copy to prevent external modification
func copyWorkspace(ws *Workspace) *Workspace {
	out := *ws
	out.State = ws.State.Clone()
	return &out
}
