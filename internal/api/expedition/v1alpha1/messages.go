// Package v1alpha1 defines the wire contract of the expedition planning service.
//
// Messages travel as JSON over gRPC using the codec registered in codec.go.
// Field names are snake_case to match what web clients already send.
package v1alpha1

// Character is one character of a player's roster
type Character struct {
	Name      string  `json:"name"`
	ClassName string  `json:"class_name"`
	ItemLevel float64 `json:"item_level"`
}

// Raid is a catalog entry. A null gold amount means the tier cannot be run.
type Raid struct {
	ID         int32  `json:"id"`
	Name       string `json:"name"`
	NormalGold *int64 `json:"normal_gold"`
	HardGold   *int64 `json:"hard_gold"`
}

// Difficulty is the tier chosen for one raid of one character
type Difficulty struct {
	Character string `json:"character"`
	RaidID    int32  `json:"raid_id"`
	Tier      string `json:"tier"`
}

// SelectionState is a player's weekly plan.
// On save requests a missing field is distinct from an empty one.
type SelectionState struct {
	ChosenRaids  map[string][]int32 `json:"chosen_raids"`
	Difficulties []*Difficulty      `json:"difficulties"`
	ExtraIncome  map[string]string  `json:"extra_income"`
}

// Totals is the gold breakdown of a selection state
type Totals struct {
	PerCharacter map[string]int64 `json:"per_character"`
	Grand        int64            `json:"grand"`
}

// Selections is a selection state with its totals
type Selections struct {
	Identity string          `json:"identity"`
	State    *SelectionState `json:"state"`
	Totals   *Totals         `json:"totals"`
	Saved    bool            `json:"saved"`
	Revision string          `json:"revision,omitempty"`
}

type GetRosterRequest struct {
	Identity string `json:"identity"`
}

type GetRosterResponse struct {
	Characters []*Character `json:"characters"`
}

type ListRaidsRequest struct{}

type ListRaidsResponse struct {
	Raids []*Raid `json:"raids"`
}

type LoadSelectionsRequest struct {
	Identity string `json:"identity"`
}

type LoadSelectionsResponse struct {
	Selections *Selections `json:"selections"`
}

type GetSelectionsRequest struct {
	Identity string `json:"identity"`
}

type GetSelectionsResponse struct {
	Selections *Selections `json:"selections"`
}

type ToggleRaidRequest struct {
	Identity  string `json:"identity"`
	Character string `json:"character"`
	RaidID    int32  `json:"raid_id"`
}

type ToggleRaidResponse struct {
	Selected   bool        `json:"selected"`
	Tier       string      `json:"tier,omitempty"`
	Selections *Selections `json:"selections"`
}

type SetDifficultyRequest struct {
	Identity  string `json:"identity"`
	Character string `json:"character"`
	RaidID    int32  `json:"raid_id"`
	Tier      string `json:"tier"`
}

type SetDifficultyResponse struct {
	Selections *Selections `json:"selections"`
}

type SetExtraIncomeRequest struct {
	Identity  string `json:"identity"`
	Character string `json:"character"`
	Amount    string `json:"amount"`
}

type SetExtraIncomeResponse struct {
	Selections *Selections `json:"selections"`
}

// SaveSelectionsRequest saves State when present and the working state otherwise
type SaveSelectionsRequest struct {
	Identity string          `json:"identity"`
	State    *SelectionState `json:"state,omitempty"`
}

type SaveSelectionsResponse struct {
	Selections *Selections `json:"selections"`
	SavedAt    int64       `json:"saved_at"`
}

type ResetSelectionsRequest struct {
	Identity string `json:"identity"`
}

type ResetSelectionsResponse struct {
	Selections *Selections `json:"selections"`
	SavedAt    int64       `json:"saved_at"`
}
