package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	expeditionv1alpha1 "github.com/KirkDiggler/raid-gold-api/internal/api/expedition/v1alpha1"
)

func TestFormatGold(t *testing.T) {
	assert.Equal(t, "0g", formatGold(0))
	assert.Equal(t, "7,350g", formatGold(7350))
	assert.Equal(t, "1,234,567g", formatGold(1234567))
	assert.Equal(t, "-", formatGoldPtr(nil))
}

func TestParseRaidID(t *testing.T) {
	id, err := parseRaidID("4")
	assert.NoError(t, err)
	assert.Equal(t, int32(4), id)

	_, err = parseRaidID("four")
	assert.Error(t, err)
}

func TestPrintRaidsShowsUnavailableTiers(t *testing.T) {
	var buf bytes.Buffer
	hard := int64(7200)

	printRaids(&buf, []*expeditionv1alpha1.Raid{{ID: 6, Name: "Echidna", HardGold: &hard}})

	assert.Contains(t, buf.String(), "Echidna")
	assert.Contains(t, buf.String(), "7,200g")
	assert.Contains(t, buf.String(), "-")
}

func TestPrintSelections(t *testing.T) {
	var buf bytes.Buffer

	printSelections(&buf, &expeditionv1alpha1.Selections{
		Identity: "Bob",
		State: &expeditionv1alpha1.SelectionState{
			ChosenRaids:  map[string][]int32{"Bob": {1, 2}},
			Difficulties: []*expeditionv1alpha1.Difficulty{{Character: "Bob", RaidID: 2, Tier: "hard"}},
			ExtraIncome:  map[string]string{"Carol": "250"},
		},
		Totals: &expeditionv1alpha1.Totals{
			PerCharacter: map[string]int64{"Bob": 3600, "Carol": 250},
			Grand:        3850,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "never saved")
	assert.Contains(t, out, "Bob: 3,600g")
	assert.Contains(t, out, "raid 2 (hard)")
	assert.Contains(t, out, "extra income 250")
	assert.Contains(t, out, "Total: 3,850g")
}

func TestPrintSelectionsEmpty(t *testing.T) {
	var buf bytes.Buffer

	printSelections(&buf, nil)

	assert.Equal(t, "No selections\n", buf.String())
}
