package expedition

import (
	"time"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
)

// Selections is a player's working state together with its computed gold
type Selections struct {
	Identity string
	State    *entities.SelectionState
	Totals   *entities.Totals

	// Saved is true when the state started from a saved record
	Saved    bool
	Revision string
}

// GetRosterInput defines the request for looking up a player's characters
type GetRosterInput struct {
	Identity string
}

// GetRosterOutput contains at most MaxRosterSize characters, highest item level first
type GetRosterOutput struct {
	Characters []*entities.CharacterSummary
}

// ListRaidsInput defines the request for the raid catalog
type ListRaidsInput struct{}

// ListRaidsOutput contains the catalog ordered by raid ID
type ListRaidsOutput struct {
	Raids []*entities.RaidDefinition
}

// LoadSelectionsInput defines the request for loading saved selections.
// Any unsaved working state for the identity is discarded.
type LoadSelectionsInput struct {
	Identity string
}

// LoadSelectionsOutput contains the loaded selections
type LoadSelectionsOutput struct {
	Selections *Selections
}

// GetSelectionsInput defines the request for the current working selections
type GetSelectionsInput struct {
	Identity string
}

// GetSelectionsOutput contains the working selections
type GetSelectionsOutput struct {
	Selections *Selections
}

// ToggleRaidInput defines the request for selecting or deselecting a raid
type ToggleRaidInput struct {
	Identity  string
	Character string
	RaidID    int32
}

// ToggleRaidOutput reports what the toggle did
type ToggleRaidOutput struct {
	Selected   bool
	Tier       entities.Tier
	Selections *Selections
}

// SetDifficultyInput defines the request for choosing a raid tier
type SetDifficultyInput struct {
	Identity  string
	Character string
	RaidID    int32
	Tier      entities.Tier
}

// SetDifficultyOutput contains the updated selections
type SetDifficultyOutput struct {
	Selections *Selections
}

// SetExtraIncomeInput defines the request for recording extra income
type SetExtraIncomeInput struct {
	Identity  string
	Character string
	// Amount is kept as typed; non integers count as zero gold
	Amount string
}

// SetExtraIncomeOutput contains the updated selections
type SetExtraIncomeOutput struct {
	Selections *Selections
}

// SaveSelectionsInput defines the request for persisting selections.
// With a nil State the working state is saved; otherwise State replaces it after validation.
type SaveSelectionsInput struct {
	Identity string
	State    *entities.SelectionState
}

// SaveSelectionsOutput contains the saved selections
type SaveSelectionsOutput struct {
	Selections *Selections
	SavedAt    time.Time
}

// ResetSelectionsInput defines the request for clearing all selections
type ResetSelectionsInput struct {
	Identity string
}

// ResetSelectionsOutput contains the now empty selections
type ResetSelectionsOutput struct {
	Selections *Selections
	SavedAt    time.Time
}
