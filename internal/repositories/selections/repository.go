// Package selections persists saved selection states, one record per player identity
package selections

//go:generate mockgen -destination=mock/mock_repository.go -package=selectionsmock github.com/KirkDiggler/raid-gold-api/internal/repositories/selections Repository

import (
	"context"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
)

// GetInput contains parameters for loading a saved selection
type GetInput struct {
	Identity string
}

// GetOutput contains the loaded record
type GetOutput struct {
	Record *entities.SelectionRecord
}

// SaveInput contains the state to persist. The state is normalized before it is written.
type SaveInput struct {
	Identity string
	State    *entities.SelectionState
}

// SaveOutput contains the record as written, with revision and timestamp
type SaveOutput struct {
	Record *entities.SelectionRecord
}

// ListInput has no parameters yet
type ListInput struct{}

// ListOutput contains every identity with a saved record, sorted
type ListOutput struct {
	Identities []string
}

// Repository defines the durable storage operations for selection states
type Repository interface {
	// Get returns errors.NotFound if nothing was ever saved for the identity
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the saved state for the identity
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns the identities that have a saved record
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
