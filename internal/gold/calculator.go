// Package gold computes the weekly gold a player's selections are worth
package gold

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
)

// ComputeTotals folds the selection state over the raid catalog.
// Raids missing from the catalog contribute nothing. Extra income that does not
// parse as an integer counts as zero. The result is a pure function of its inputs.
func ComputeTotals(state *entities.SelectionState, catalog entities.RaidCatalog) *entities.Totals {
	totals := &entities.Totals{
		PerCharacter: make(map[string]int64),
	}
	if state == nil {
		return totals
	}

	for character, raidIDs := range state.ChosenRaids {
		if len(raidIDs) == 0 {
			continue
		}

		var subtotal int64
		for _, raidID := range raidIDs {
			raid, ok := catalog.Lookup(raidID)
			if !ok {
				continue
			}
			// Unavailable tiers report a zero reward
			reward, _ := raid.Reward(state.Tier(character, raidID))
			subtotal += reward
		}

		totals.PerCharacter[character] = subtotal
		totals.Grand += subtotal
	}

	for character, raw := range state.ExtraIncome {
		amount := ParseIncome(raw)
		totals.PerCharacter[character] += amount
		totals.Grand += amount
	}

	return totals
}

// ParseIncome reads an extra income entry, returning 0 for anything that is not an integer
func ParseIncome(raw string) int64 {
	amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return amount
}
