package client

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	expeditionv1alpha1 "github.com/KirkDiggler/raid-gold-api/internal/api/expedition/v1alpha1"
)

// formatGold renders gold with thousands separators
func formatGold(amount int64) string {
	return humanize.Comma(amount) + "g"
}

func formatGoldPtr(amount *int64) string {
	if amount == nil {
		return "-"
	}
	return formatGold(*amount)
}

func formatSavedAt(unix int64) string {
	if unix == 0 {
		return "just now"
	}
	return humanize.Time(time.Unix(unix, 0))
}

func printSelections(w io.Writer, selections *expeditionv1alpha1.Selections) {
	if selections == nil || selections.State == nil {
		fmt.Fprintf(w, "No selections\n")
		return
	}

	tiers := make(map[string]map[int32]string)
	for _, entry := range selections.State.Difficulties {
		if tiers[entry.Character] == nil {
			tiers[entry.Character] = make(map[int32]string)
		}
		tiers[entry.Character][entry.RaidID] = entry.Tier
	}

	var perCharacter map[string]int64
	var grand int64
	if selections.Totals != nil {
		perCharacter = selections.Totals.PerCharacter
		grand = selections.Totals.Grand
	}

	characters := make([]string, 0, len(perCharacter))
	for character := range perCharacter {
		characters = append(characters, character)
	}
	for character := range selections.State.ChosenRaids {
		if _, ok := perCharacter[character]; !ok {
			characters = append(characters, character)
		}
	}
	sort.Strings(characters)

	fmt.Fprintf(w, "\nPlan for %s", selections.Identity)
	if !selections.Saved {
		fmt.Fprintf(w, " (never saved)")
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "==========\n")

	for _, character := range characters {
		fmt.Fprintf(w, "%s: %s\n", character, formatGold(perCharacter[character]))
		for _, raidID := range selections.State.ChosenRaids[character] {
			tier := tiers[character][raidID]
			if tier == "" {
				tier = "normal"
			}
			fmt.Fprintf(w, "  raid %d (%s)\n", raidID, tier)
		}
		if income := selections.State.ExtraIncome[character]; income != "" {
			fmt.Fprintf(w, "  extra income %s\n", income)
		}
	}

	fmt.Fprintf(w, "\nTotal: %s\n", formatGold(grand))
}
