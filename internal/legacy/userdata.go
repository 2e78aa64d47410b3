// Package legacy converts the user_data.json file written by the
// file-backed planner into selection states.
//
// The file maps a nickname to
//
//	{
//	  "selectedRaids": {"Bob": [1, 2]},
//	  "selectedDifficulties": {"Bob_1": "normal", "Bob_2": "hard"},
//	  "extraIncome": {"Bob": "500"}
//	}
//
// Raid IDs and income amounts may appear as numbers or strings.
package legacy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/selection"
)

// PlayerRecord is one nickname's entry in user_data.json
type PlayerRecord struct {
	SelectedRaids        map[string][]flexString `json:"selectedRaids"`
	SelectedDifficulties map[string]flexString   `json:"selectedDifficulties"`
	ExtraIncome          map[string]flexString   `json:"extraIncome"`
}

// Player is a converted record
type Player struct {
	Identity string
	State    *entities.SelectionState

	// Warnings lists entries that were dropped during conversion
	Warnings []string
}

// flexString accepts a JSON string or number
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

// Parse decodes user_data.json and converts every player, sorted by identity
func Parse(data []byte) ([]*Player, error) {
	var raw map[string]*PlayerRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.InvalidArgumentf("malformed user data: %v", err)
	}

	players := make([]*Player, 0, len(raw))
	for identity, record := range raw {
		players = append(players, Convert(identity, record))
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].Identity < players[j].Identity
	})

	return players, nil
}

// Convert maps a legacy record onto a normalized selection state.
// Entries that cannot be represented are dropped and reported as warnings.
func Convert(identity string, record *PlayerRecord) *Player {
	player := &Player{
		Identity: identity,
		State:    entities.NewSelectionState(),
	}
	if record == nil {
		return player
	}

	for character, ids := range record.SelectedRaids {
		seen := make(map[int32]bool, len(ids))
		for _, rawID := range ids {
			id, err := strconv.ParseInt(strings.TrimSpace(string(rawID)), 10, 32)
			if err != nil {
				player.warn("%s: raid id %q is not a number", character, rawID)
				continue
			}
			raidID := int32(id)
			if seen[raidID] {
				continue
			}
			if len(player.State.ChosenRaids[character]) >= entities.MaxRaidsPerCharacter {
				player.warn("%s: raid %d dropped, already %d raids", character, raidID, entities.MaxRaidsPerCharacter)
				continue
			}
			seen[raidID] = true
			player.State.ChosenRaids[character] = append(player.State.ChosenRaids[character], raidID)
		}
	}

	for rawKey, rawTier := range record.SelectedDifficulties {
		key, ok := entities.ParseLegacyKey(rawKey)
		if !ok {
			player.warn("difficulty key %q is not character_raidId", rawKey)
			continue
		}
		tier := entities.Tier(strings.ToLower(string(rawTier)))
		if !tier.Valid() {
			player.warn("%s: unknown difficulty %q", rawKey, rawTier)
			continue
		}
		player.State.Difficulties[key] = tier
	}

	for character, amount := range record.ExtraIncome {
		if amount == "" {
			continue
		}
		player.State.ExtraIncome[character] = string(amount)
	}

	selection.Normalize(player.State)
	sort.Strings(player.Warnings)

	return player
}

func (p *Player) warn(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}
