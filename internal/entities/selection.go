package entities

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MaxRaidsPerCharacter is the weekly raid cap for a single character
const MaxRaidsPerCharacter = 3

// SelectionKey identifies the difficulty entry of one raid for one character
type SelectionKey struct {
	Character string
	RaidID    int32
}

// SelectionState holds what a player has planned for the week
type SelectionState struct {
	// Character name -> ordered raid IDs, at most MaxRaidsPerCharacter
	ChosenRaids map[string][]int32

	// (character, raid) -> chosen tier
	Difficulties map[SelectionKey]Tier

	// Character name -> extra income as entered by the player
	ExtraIncome map[string]string
}

// NewSelectionState returns an empty state
func NewSelectionState() *SelectionState {
	return &SelectionState{
		ChosenRaids:  make(map[string][]int32),
		Difficulties: make(map[SelectionKey]Tier),
		ExtraIncome:  make(map[string]string),
	}
}

// Clone returns a deep copy of the state
func (s *SelectionState) Clone() *SelectionState {
	out := NewSelectionState()
	if s == nil {
		return out
	}
	for character, raids := range s.ChosenRaids {
		out.ChosenRaids[character] = append([]int32(nil), raids...)
	}
	for key, tier := range s.Difficulties {
		out.Difficulties[key] = tier
	}
	for character, amount := range s.ExtraIncome {
		out.ExtraIncome[character] = amount
	}
	return out
}

// IsSelected reports whether the character has the raid in its selection
func (s *SelectionState) IsSelected(character string, raidID int32) bool {
	for _, id := range s.ChosenRaids[character] {
		if id == raidID {
			return true
		}
	}
	return false
}

// Tier returns the effective tier for a selected raid, defaulting to normal
func (s *SelectionState) Tier(character string, raidID int32) Tier {
	if tier, ok := s.Difficulties[SelectionKey{Character: character, RaidID: raidID}]; ok {
		return tier
	}
	return TierNormal
}

// Empty reports whether the state holds nothing at all
func (s *SelectionState) Empty() bool {
	return s == nil || (len(s.ChosenRaids) == 0 && len(s.Difficulties) == 0 && len(s.ExtraIncome) == 0)
}

// DifficultyEntry is the serialized form of one Difficulties entry
type DifficultyEntry struct {
	Character string `json:"character"`
	RaidID    int32  `json:"raid_id"`
	Tier      Tier   `json:"tier"`
}

// DifficultyEntries returns the difficulties as a list sorted by character then raid
func (s *SelectionState) DifficultyEntries() []DifficultyEntry {
	entries := make([]DifficultyEntry, 0, len(s.Difficulties))
	for key, tier := range s.Difficulties {
		entries = append(entries, DifficultyEntry{Character: key.Character, RaidID: key.RaidID, Tier: tier})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Character != entries[j].Character {
			return entries[i].Character < entries[j].Character
		}
		return entries[i].RaidID < entries[j].RaidID
	})
	return entries
}

type selectionStateJSON struct {
	ChosenRaids  map[string][]int32 `json:"chosen_raids"`
	Difficulties []DifficultyEntry  `json:"difficulties"`
	ExtraIncome  map[string]string  `json:"extra_income"`
}

// MarshalJSON encodes difficulties as an entry list since JSON objects only take string keys
func (s *SelectionState) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectionStateJSON{
		ChosenRaids:  s.ChosenRaids,
		Difficulties: s.DifficultyEntries(),
		ExtraIncome:  s.ExtraIncome,
	})
}

// UnmarshalJSON decodes the format written by MarshalJSON
func (s *SelectionState) UnmarshalJSON(data []byte) error {
	var raw selectionStateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	state := NewSelectionState()
	for character, raids := range raw.ChosenRaids {
		state.ChosenRaids[character] = raids
	}
	for _, entry := range raw.Difficulties {
		state.Difficulties[SelectionKey{Character: entry.Character, RaidID: entry.RaidID}] = entry.Tier
	}
	for character, amount := range raw.ExtraIncome {
		state.ExtraIncome[character] = amount
	}

	*s = *state
	return nil
}

// SelectionRecord is a persisted selection state
type SelectionRecord struct {
	Identity  string          `json:"identity"`
	State     *SelectionState `json:"state"`
	Revision  string          `json:"revision"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Totals is the gold breakdown for a selection state
type Totals struct {
	PerCharacter map[string]int64
	Grand        int64
}

// ParseLegacyKey splits a "{character}_{raidId}" difficulty key.
// The raid ID is everything after the last underscore so character names may contain underscores.
func ParseLegacyKey(key string) (SelectionKey, bool) {
	idx := strings.LastIndex(key, "_")
	if idx <= 0 || idx == len(key)-1 {
		return SelectionKey{}, false
	}

	raidID, err := strconv.ParseInt(key[idx+1:], 10, 32)
	if err != nil {
		return SelectionKey{}, false
	}

	return SelectionKey{Character: key[:idx], RaidID: int32(raidID)}, true
}
