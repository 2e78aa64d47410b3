package selections

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/clock"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/idgen"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*entities.SelectionRecord
	clock   clock.Clock
	ids     idgen.Generator
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository. Nil dependencies use the defaults.
func NewInMemory(clk clock.Clock, ids idgen.Generator) *InMemoryRepository {
	clk, ids = defaults(clk, ids)
	return &InMemoryRepository{
		records: make(map[string]*entities.SelectionRecord),
		clock:   clk,
		ids:     ids,
	}
}

// Get returns a copy of the saved record
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Identity == "" {
		return nil, errors.InvalidArgument(errIdentityEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[input.Identity]
	if !exists {
		return nil, errors.NotFoundf("no saved selections for %s", input.Identity)
	}

	return &GetOutput{Record: copyRecord(record)}, nil
}

// Save stores a normalized copy of the state
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSaveInput(input); err != nil {
		return nil, err
	}

	record := newRecord(input, r.clock, r.ids)

	r.mu.Lock()
	r.records[input.Identity] = copyRecord(record)
	r.mu.Unlock()

	return &SaveOutput{Record: record}, nil
}

// List returns the stored identities
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	identities := make([]string, 0, len(r.records))
	for identity := range r.records {
		identities = append(identities, identity)
	}
	r.mu.RUnlock()

	sort.Strings(identities)
	return &ListOutput{Identities: identities}, nil
}

func copyRecord(record *entities.SelectionRecord) *entities.SelectionRecord {
	out := *record
	out.State = record.State.Clone()
	return &out
}
