package v1alpha1

import (
	"strings"

	expeditionv1alpha1 "github.com/KirkDiggler/raid-gold-api/internal/api/expedition/v1alpha1"
	"github.com/KirkDiggler/raid-gold-api/internal/entities"
	"github.com/KirkDiggler/raid-gold-api/internal/orchestrators/expedition"
)

func convertCharacters(characters []*entities.CharacterSummary) []*expeditionv1alpha1.Character {
	out := make([]*expeditionv1alpha1.Character, 0, len(characters))
	for _, character := range characters {
		out = append(out, &expeditionv1alpha1.Character{
			Name:      character.Name,
			ClassName: character.ClassName,
			ItemLevel: character.ItemLevel,
		})
	}
	return out
}

func convertRaids(raids []*entities.RaidDefinition) []*expeditionv1alpha1.Raid {
	out := make([]*expeditionv1alpha1.Raid, 0, len(raids))
	for _, raid := range raids {
		out = append(out, &expeditionv1alpha1.Raid{
			ID:         raid.ID,
			Name:       raid.Name,
			NormalGold: convertGold(raid.NormalGold),
			HardGold:   convertGold(raid.HardGold),
		})
	}
	return out
}

// convertGold renders an unavailable tier as null
func convertGold(amount int64) *int64 {
	if amount <= 0 {
		return nil
	}
	return &amount
}

func convertTier(tier string) entities.Tier {
	return entities.Tier(strings.ToLower(strings.TrimSpace(tier)))
}

func convertSelections(selections *expedition.Selections) *expeditionv1alpha1.Selections {
	if selections == nil {
		return nil
	}

	return &expeditionv1alpha1.Selections{
		Identity: selections.Identity,
		State:    convertStateToProto(selections.State),
		Totals:   convertTotals(selections.Totals),
		Saved:    selections.Saved,
		Revision: selections.Revision,
	}
}

func convertStateToProto(state *entities.SelectionState) *expeditionv1alpha1.SelectionState {
	if state == nil {
		state = entities.NewSelectionState()
	}

	chosen := make(map[string][]int32, len(state.ChosenRaids))
	for character, raids := range state.ChosenRaids {
		chosen[character] = append([]int32{}, raids...)
	}

	entries := state.DifficultyEntries()
	difficulties := make([]*expeditionv1alpha1.Difficulty, 0, len(entries))
	for _, entry := range entries {
		difficulties = append(difficulties, &expeditionv1alpha1.Difficulty{
			Character: entry.Character,
			RaidID:    entry.RaidID,
			Tier:      entry.Tier.String(),
		})
	}

	income := make(map[string]string, len(state.ExtraIncome))
	for character, amount := range state.ExtraIncome {
		income[character] = amount
	}

	return &expeditionv1alpha1.SelectionState{
		ChosenRaids:  chosen,
		Difficulties: difficulties,
		ExtraIncome:  income,
	}
}

// convertStateFromProto keeps absent fields nil so the orchestrator can reject incomplete states
func convertStateFromProto(state *expeditionv1alpha1.SelectionState) *entities.SelectionState {
	if state == nil {
		return nil
	}

	out := &entities.SelectionState{}
	if state.ChosenRaids != nil {
		out.ChosenRaids = make(map[string][]int32, len(state.ChosenRaids))
		for character, raids := range state.ChosenRaids {
			out.ChosenRaids[character] = append([]int32{}, raids...)
		}
	}
	if state.Difficulties != nil {
		out.Difficulties = make(map[entities.SelectionKey]entities.Tier, len(state.Difficulties))
		for _, entry := range state.Difficulties {
			if entry == nil {
				continue
			}
			key := entities.SelectionKey{Character: entry.Character, RaidID: entry.RaidID}
			out.Difficulties[key] = convertTier(entry.Tier)
		}
	}
	if state.ExtraIncome != nil {
		out.ExtraIncome = make(map[string]string, len(state.ExtraIncome))
		for character, amount := range state.ExtraIncome {
			out.ExtraIncome[character] = amount
		}
	}

	return out
}

func convertTotals(totals *entities.Totals) *expeditionv1alpha1.Totals {
	if totals == nil {
		return &expeditionv1alpha1.Totals{PerCharacter: map[string]int64{}}
	}

	perCharacter := make(map[string]int64, len(totals.PerCharacter))
	for character, amount := range totals.PerCharacter {
		perCharacter[character] = amount
	}

	return &expeditionv1alpha1.Totals{
		PerCharacter: perCharacter,
		Grand:        totals.Grand,
	}
}
