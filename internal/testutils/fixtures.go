package testutils

import (
	"github.com/KirkDiggler/raid-gold-api/internal/entities"
)

// Raid IDs used across fixtures
const (
	RaidValtan    int32 = 1
	RaidVykas     int32 = 2
	RaidKakul     int32 = 3
	RaidBrelshaza int32 = 4
	RaidTrial     int32 = 5 // display only, no tier offers gold
	RaidHardOnly  int32 = 6

	TestIdentity = "Bob"
)

// CreateTestCatalog returns a catalog with a mix of full, display-only and hard-only raids
func CreateTestCatalog() []*entities.RaidDefinition {
	return []*entities.RaidDefinition{
		{ID: RaidValtan, Name: "Valtan", NormalGold: 1200, HardGold: 1800},
		{ID: RaidVykas, Name: "Vykas", NormalGold: 1600, HardGold: 2400},
		{ID: RaidKakul, Name: "Kakul-Saydon", NormalGold: 3000, HardGold: 0},
		{ID: RaidBrelshaza, Name: "Brelshaza", NormalGold: 4500, HardGold: 5500},
		{ID: RaidTrial, Name: "Trial Guardian", NormalGold: 0, HardGold: 0},
		{ID: RaidHardOnly, Name: "Echidna", NormalGold: 0, HardGold: 7200},
	}
}

// CreateTestRaidCatalog indexes CreateTestCatalog
func CreateTestRaidCatalog() entities.RaidCatalog {
	return entities.NewRaidCatalog(CreateTestCatalog())
}

// CreateTestSelectionState returns a state with two characters and an income-only alt
func CreateTestSelectionState() *entities.SelectionState {
	state := entities.NewSelectionState()
	state.ChosenRaids["Bob"] = []int32{RaidValtan, RaidVykas}
	state.Difficulties[entities.SelectionKey{Character: "Bob", RaidID: RaidValtan}] = entities.TierNormal
	state.Difficulties[entities.SelectionKey{Character: "Bob", RaidID: RaidVykas}] = entities.TierHard
	state.ChosenRaids["Alice"] = []int32{RaidKakul}
	state.Difficulties[entities.SelectionKey{Character: "Alice", RaidID: RaidKakul}] = entities.TierNormal
	state.ExtraIncome["Bob"] = "500"
	state.ExtraIncome["Carol"] = "250"
	return state
}
