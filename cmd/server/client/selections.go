package client

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	expeditionv1alpha1 "github.com/KirkDiggler/raid-gold-api/internal/api/expedition/v1alpha1"
)

var loadCmd = &cobra.Command{
	Use:     "load",
	Short:   "Discard unsaved changes and load the saved plan",
	PreRunE: requireIdentity,
	RunE:    runLoad,
}

var showCmd = &cobra.Command{
	Use:     "show",
	Short:   "Show the current plan, including unsaved changes",
	PreRunE: requireIdentity,
	RunE:    runShow,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [character] [raid-id]",
	Short: "Select or deselect a raid for a character",
	Long: `Select a raid when it is not selected and deselect it otherwise. Examples:

  toggle Bob 1
  toggle "Alt Two" 4`,
	Args:    cobra.ExactArgs(2),
	PreRunE: requireIdentity,
	RunE:    runToggle,
}

var difficultyCmd = &cobra.Command{
	Use:     "difficulty [character] [raid-id] [normal|hard]",
	Short:   "Choose the tier a character runs a raid at",
	Args:    cobra.ExactArgs(3),
	PreRunE: requireIdentity,
	RunE:    runDifficulty,
}

var incomeCmd = &cobra.Command{
	Use:     "income [character] [amount]",
	Short:   "Record extra weekly income for a character",
	Args:    cobra.ExactArgs(2),
	PreRunE: requireIdentity,
	RunE:    runIncome,
}

var saveCmd = &cobra.Command{
	Use:     "save",
	Short:   "Save the current plan",
	PreRunE: requireIdentity,
	RunE:    runSave,
}

var resetCmd = &cobra.Command{
	Use:     "reset",
	Short:   "Clear every selection, difficulty and income and save the empty plan",
	PreRunE: requireIdentity,
	RunE:    runReset,
}

func runLoad(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client expeditionv1alpha1.ExpeditionServiceClient) error {
		resp, err := client.LoadSelections(ctx, &expeditionv1alpha1.LoadSelectionsRequest{Identity: identity})
		if err != nil {
			return fmt.Errorf("failed to load selections: %w", err)
		}

		printSelections(os.Stdout, resp.Selections)
		return nil
	})
}

func runShow(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client expeditionv1alpha1.ExpeditionServiceClient) error {
		resp, err := client.GetSelections(ctx, &expeditionv1alpha1.GetSelectionsRequest{Identity: identity})
		if err != nil {
			return fmt.Errorf("failed to get selections: %w", err)
		}

		printSelections(os.Stdout, resp.Selections)
		return nil
	})
}

func runToggle(_ *cobra.Command, args []string) error {
	character := args[0]
	raidID, err := parseRaidID(args[1])
	if err != nil {
		return err
	}

	return withClient(func(ctx context.Context, client expeditionv1alpha1.ExpeditionServiceClient) error {
		resp, err := client.ToggleRaid(ctx, &expeditionv1alpha1.ToggleRaidRequest{
			Identity:  identity,
			Character: character,
			RaidID:    raidID,
		})
		if err != nil {
			return fmt.Errorf("failed to toggle raid: %w", err)
		}

		if resp.Selected {
			fmt.Printf("Selected raid %d for %s (%s)\n", raidID, character, resp.Tier)
		} else {
			fmt.Printf("Deselected raid %d for %s\n", raidID, character)
		}
		printSelections(os.Stdout, resp.Selections)
		return nil
	})
}

func runDifficulty(_ *cobra.Command, args []string) error {
	character := args[0]
	raidID, err := parseRaidID(args[1])
	if err != nil {
		return err
	}
	tier := args[2]

	return withClient(func(ctx context.Context, client expeditionv1alpha1.ExpeditionServiceClient) error {
		resp, err := client.SetDifficulty(ctx, &expeditionv1alpha1.SetDifficultyRequest{
			Identity:  identity,
			Character: character,
			RaidID:    raidID,
			Tier:      tier,
		})
		if err != nil {
			return fmt.Errorf("failed to set difficulty: %w", err)
		}

		printSelections(os.Stdout, resp.Selections)
		return nil
	})
}

func runIncome(_ *cobra.Command, args []string) error {
	character := args[0]
	amount := args[1]

	return withClient(func(ctx context.Context, client expeditionv1alpha1.ExpeditionServiceClient) error {
		resp, err := client.SetExtraIncome(ctx, &expeditionv1alpha1.SetExtraIncomeRequest{
			Identity:  identity,
			Character: character,
			Amount:    amount,
		})
		if err != nil {
			return fmt.Errorf("failed to set extra income: %w", err)
		}

		printSelections(os.Stdout, resp.Selections)
		return nil
	})
}

func runSave(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client expeditionv1alpha1.ExpeditionServiceClient) error {
		resp, err := client.SaveSelections(ctx, &expeditionv1alpha1.SaveSelectionsRequest{Identity: identity})
		if err != nil {
			return fmt.Errorf("failed to save selections: %w", err)
		}

		fmt.Printf("Saved %s\n", formatSavedAt(resp.SavedAt))
		printSelections(os.Stdout, resp.Selections)
		return nil
	})
}

func runReset(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client expeditionv1alpha1.ExpeditionServiceClient) error {
		resp, err := client.ResetSelections(ctx, &expeditionv1alpha1.ResetSelectionsRequest{Identity: identity})
		if err != nil {
			return fmt.Errorf("failed to reset selections: %w", err)
		}

		fmt.Printf("Reset and saved %s\n", formatSavedAt(resp.SavedAt))
		printSelections(os.Stdout, resp.Selections)
		return nil
	})
}

func parseRaidID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("raid id must be a number, got %q", raw)
	}
	return int32(id), nil
}
