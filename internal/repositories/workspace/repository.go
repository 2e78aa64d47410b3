// Package workspace stores the in-progress selection state of each player between requests
package workspace

//go:generate mockgen -destination=mock/mock_repository.go -package=workspacemock github.com/KirkDiggler/raid-gold-api/internal/repositories/workspace Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
)

// Workspace is the working copy of a player's selections.
// It is what mutations act on until the player saves.
type Workspace struct {
	Identity string                   `json:"identity"`
	State    *entities.SelectionState `json:"state"`

	// Loaded is false when the durable store had nothing for this identity
	Loaded bool `json:"loaded"`

	// Revision of the saved record this workspace started from, empty if none
	Revision string `json:"revision,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GetInput contains parameters for retrieving a workspace
type GetInput struct {
	Identity string
}

// GetOutput contains the retrieved workspace
type GetOutput struct {
	Workspace *Workspace
}

// SaveInput contains the workspace to store
type SaveInput struct {
	Workspace *Workspace
	TTL       time.Duration // zero uses the repository default
}

// SaveOutput contains the stored workspace with timestamps applied
type SaveOutput struct {
	Workspace *Workspace
}

// DeleteInput contains parameters for discarding a workspace
type DeleteInput struct {
	Identity string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the storage operations for workspaces
type Repository interface {
	// Get returns errors.NotFound when the identity has no live workspace
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the workspace and refreshes its expiry
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete discards the workspace
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
