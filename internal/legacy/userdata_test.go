package legacy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/errors"
	"github.com/KirkDiggler/raid-gold-api/internal/legacy"
)

const userData = `{
  "Bob": {
    "selectedRaids": {"Bob": [1, "2"], "Alt_Two": [4]},
    "selectedDifficulties": {"Bob_1": "normal", "Bob_2": "HARD", "Alt_Two_4": "hard", "Bob_9": "normal"},
    "extraIncome": {"Bob": "500", "Carol": 250}
  },
  "Alice": {
    "selectedRaids": {},
    "selectedDifficulties": {},
    "extraIncome": {}
  }
}`

func TestParse(t *testing.T) {
	players, err := legacy.Parse([]byte(userData))
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, "Alice", players[0].Identity)
	assert.True(t, players[0].State.Empty())

	bob := players[1]
	assert.Equal(t, "Bob", bob.Identity)
	assert.Empty(t, bob.Warnings)
	assert.Equal(t, []int32{1, 2}, bob.State.ChosenRaids["Bob"])
	assert.Equal(t, []int32{4}, bob.State.ChosenRaids["Alt_Two"])
	assert.Equal(t, entities.TierHard, bob.State.Difficulties[entities.SelectionKey{Character: "Bob", RaidID: 2}])
	assert.Equal(t, entities.TierHard, bob.State.Difficulties[entities.SelectionKey{Character: "Alt_Two", RaidID: 4}])
	assert.Equal(t, "250", bob.State.ExtraIncome["Carol"])

	// Bob_9 has no matching selection and is normalized away
	_, ok := bob.State.Difficulties[entities.SelectionKey{Character: "Bob", RaidID: 9}]
	assert.False(t, ok)
}

func TestConvertDropsUnrepresentableEntries(t *testing.T) {
	players, err := legacy.Parse([]byte(`{
	  "Bob": {
	    "selectedRaids": {"Bob": [1, 2, 3, 4, "x"]},
	    "selectedDifficulties": {"nounderscore": "hard", "Bob_1": "nightmare"},
	    "extraIncome": {}
	  }
	}`))
	require.NoError(t, err)
	require.Len(t, players, 1)

	bob := players[0]
	assert.Equal(t, []int32{1, 2, 3}, bob.State.ChosenRaids["Bob"])
	assert.Len(t, bob.Warnings, 4)
	assert.Empty(t, bob.State.Difficulties)
}

func TestConvertNilRecord(t *testing.T) {
	player := legacy.Convert("Bob", nil)

	assert.True(t, player.State.Empty())
}

func TestParseMalformed(t *testing.T) {
	_, err := legacy.Parse([]byte(`[1, 2]`))

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
