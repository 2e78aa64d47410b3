package raids

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
)

// InMemoryRepository serves a catalog held in memory. Set replaces it at runtime.
type InMemoryRepository struct {
	mu    sync.RWMutex
	raids []*entities.RaidDefinition
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a repository seeded with the given raids
func NewInMemory(raids []*entities.RaidDefinition) *InMemoryRepository {
	r := &InMemoryRepository{}
	r.Set(raids)
	return r
}

// Set replaces the catalog
func (r *InMemoryRepository) Set(raids []*entities.RaidDefinition) {
	sorted := copyRaids(raids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	r.mu.Lock()
	r.raids = sorted
	r.mu.Unlock()
}

// List returns copies of the catalog entries
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &ListOutput{Raids: copyRaids(r.raids)}, nil
}
