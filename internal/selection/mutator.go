// Package selection enforces the rules for changing a player's weekly raid plan.
//
// Every operation validates before touching the state, so a rejected call
// leaves the state exactly as it was.
package selection

import (
	"strings"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
)

// ToggleResult reports what ToggleRaid did
type ToggleResult struct {
	Selected bool
	Tier     entities.Tier
}

// ToggleRaid deselects the raid when it is selected and selects it otherwise.
// Selecting requires a free slot and a raid that offers at least one tier.
func ToggleRaid(state *entities.SelectionState, catalog entities.RaidCatalog, character string, raidID int32) (*ToggleResult, error) {
	if strings.TrimSpace(character) == "" {
		return nil, errors.InvalidArgument("character is required")
	}

	current := state.ChosenRaids[character]
	for i, id := range current {
		if id != raidID {
			continue
		}

		remaining := make([]int32, 0, len(current)-1)
		remaining = append(remaining, current[:i]...)
		remaining = append(remaining, current[i+1:]...)
		if len(remaining) == 0 {
			delete(state.ChosenRaids, character)
		} else {
			state.ChosenRaids[character] = remaining
		}
		delete(state.Difficulties, entities.SelectionKey{Character: character, RaidID: raidID})

		return &ToggleResult{Selected: false}, nil
	}

	if len(current) >= entities.MaxRaidsPerCharacter {
		return nil, errors.ResourceExhaustedf("%s already has %d raids selected", character, entities.MaxRaidsPerCharacter).
			WithMeta("character", character).
			WithMeta("raid_id", raidID)
	}

	raid, ok := catalog.Lookup(raidID)
	if !ok {
		return nil, errors.NotFoundf("raid %d not found", raidID).WithMeta("raid_id", raidID)
	}
	if !raid.Selectable() {
		return nil, errors.FailedPreconditionf("raid %s offers no gold and cannot be selected", raid.Name).
			WithMeta("raid_id", raidID)
	}

	tier := raid.DefaultTier()
	state.ChosenRaids[character] = append(append([]int32(nil), current...), raidID)
	state.Difficulties[entities.SelectionKey{Character: character, RaidID: raidID}] = tier

	return &ToggleResult{Selected: true, Tier: tier}, nil
}

// SetDifficulty records the tier for a raid whether or not it is currently selected.
// Raids unknown to the catalog are accepted since they never contribute gold.
func SetDifficulty(state *entities.SelectionState, catalog entities.RaidCatalog, character string, raidID int32, tier entities.Tier) error {
	if strings.TrimSpace(character) == "" {
		return errors.InvalidArgument("character is required")
	}
	if !tier.Valid() {
		return errors.InvalidArgumentf("unknown difficulty %q", tier)
	}

	if raid, ok := catalog.Lookup(raidID); ok && !raid.Available(tier) {
		return errors.FailedPreconditionf("raid %s has no %s difficulty", raid.Name, tier).
			WithMeta("raid_id", raidID).
			WithMeta("tier", tier.String())
	}

	state.Difficulties[entities.SelectionKey{Character: character, RaidID: raidID}] = tier
	return nil
}

// SetExtraIncome stores the amount exactly as given. Non-numeric values count as zero gold.
func SetExtraIncome(state *entities.SelectionState, character, amount string) error {
	if strings.TrimSpace(character) == "" {
		return errors.InvalidArgument("character is required")
	}

	state.ExtraIncome[character] = amount
	return nil
}

// ResetAll clears every selection, difficulty and income entry
func ResetAll(state *entities.SelectionState) {
	state.ChosenRaids = make(map[string][]int32)
	state.Difficulties = make(map[entities.SelectionKey]entities.Tier)
	state.ExtraIncome = make(map[string]string)
}

// Normalize drops difficulty entries that have no matching selected raid
// and characters left with an empty selection
func Normalize(state *entities.SelectionState) {
	for character, raids := range state.ChosenRaids {
		if len(raids) == 0 {
			delete(state.ChosenRaids, character)
		}
	}
	for key := range state.Difficulties {
		if !state.IsSelected(key.Character, key.RaidID) {
			delete(state.Difficulties, key)
		}
	}
}

// Validate checks a complete state received from a client against the selection rules
func Validate(state *entities.SelectionState, catalog entities.RaidCatalog) error {
	if state == nil {
		return errors.InvalidArgument("selection state is required")
	}

	vb := errors.NewValidationBuilder()

	for character, raids := range state.ChosenRaids {
		field := "chosen_raids." + character
		if strings.TrimSpace(character) == "" {
			vb.Field("chosen_raids", "character name cannot be empty")
			continue
		}
		if len(raids) > entities.MaxRaidsPerCharacter {
			vb.Fieldf(field, "at most %d raids may be selected", entities.MaxRaidsPerCharacter)
		}

		seen := make(map[int32]bool, len(raids))
		for _, raidID := range raids {
			if seen[raidID] {
				vb.Fieldf(field, "raid %d selected more than once", raidID)
			}
			seen[raidID] = true

			raid, ok := catalog.Lookup(raidID)
			if !ok {
				continue
			}
			if !raid.Selectable() {
				vb.Fieldf(field, "raid %d cannot be selected", raidID)
				continue
			}
			// explicit entries are checked with the difficulties below
			key := entities.SelectionKey{Character: character, RaidID: raidID}
			if _, set := state.Difficulties[key]; !set && !raid.Available(entities.TierNormal) {
				vb.Fieldf(field, "raid %d has no normal difficulty and needs an explicit tier", raidID)
			}
		}
	}

	for key, tier := range state.Difficulties {
		field := "difficulties." + key.Character
		if !tier.Valid() {
			vb.Fieldf(field, "unknown difficulty %q for raid %d", tier, key.RaidID)
			continue
		}
		if raid, ok := catalog.Lookup(key.RaidID); ok && !raid.Available(tier) {
			vb.Fieldf(field, "raid %d has no %s difficulty", key.RaidID, tier)
		}
	}

	return vb.Build()
}
