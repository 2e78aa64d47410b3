package selections

import (
	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/clock"
	"github.com/KirkDiggler/raid-gold-api/internal/pkg/idgen"
	"github.com/KirkDiggler/raid-gold-api/internal/selection"
)

const (
	errIdentityEmpty = "identity cannot be empty"
	errStateNil      = "state cannot be nil"
)

func validateSaveInput(input SaveInput) error {
	if input.Identity == "" {
		return errors.InvalidArgument(errIdentityEmpty)
	}
	if input.State == nil {
		return errors.InvalidArgument(errStateNil)
	}
	return nil
}

// newRecord builds the record a backend writes: a normalized copy of the input state
// stamped with a fresh revision
func newRecord(input SaveInput, clk clock.Clock, ids idgen.Generator) *entities.SelectionRecord {
	state := input.State.Clone()
	selection.Normalize(state)

	return &entities.SelectionRecord{
		Identity:  input.Identity,
		State:     state,
		Revision:  ids.Generate(),
		UpdatedAt: clk.Now(),
	}
}

func defaults(clk clock.Clock, ids idgen.Generator) (clock.Clock, idgen.Generator) {
	if clk == nil {
		clk = clock.New()
	}
	if ids == nil {
		ids = idgen.NewUUID("rev")
	}
	return clk, ids
}
