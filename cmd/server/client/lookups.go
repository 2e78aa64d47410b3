package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	expeditionv1alpha1 "github.com/KirkDiggler/raid-gold-api/internal/api/expedition/v1alpha1"
)

var rosterCmd = &cobra.Command{
	Use:     "roster",
	Short:   "Show the top characters of the player's roster",
	PreRunE: requireIdentity,
	RunE:    runRoster,
}

var raidsCmd = &cobra.Command{
	Use:   "raids",
	Short: "List the raid catalog with gold per tier",
	RunE:  runRaids,
}

func runRoster(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client expeditionv1alpha1.ExpeditionServiceClient) error {
		fmt.Printf("Looking up roster for %s...\n", identity)

		resp, err := client.GetRoster(ctx, &expeditionv1alpha1.GetRosterRequest{Identity: identity})
		if err != nil {
			return fmt.Errorf("failed to get roster: %w", err)
		}

		printRoster(os.Stdout, resp.Characters)
		return nil
	})
}

func runRaids(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client expeditionv1alpha1.ExpeditionServiceClient) error {
		resp, err := client.ListRaids(ctx, &expeditionv1alpha1.ListRaidsRequest{})
		if err != nil {
			return fmt.Errorf("failed to list raids: %w", err)
		}

		printRaids(os.Stdout, resp.Raids)
		return nil
	})
}

func printRoster(w io.Writer, characters []*expeditionv1alpha1.Character) {
	fmt.Fprintf(w, "\nRoster:\n")
	fmt.Fprintf(w, "=======\n")
	for i, character := range characters {
		fmt.Fprintf(w, "%d. %-16s %-14s %.2f\n", i+1, character.Name, character.ClassName, character.ItemLevel)
	}
}

func printRaids(w io.Writer, raids []*expeditionv1alpha1.Raid) {
	fmt.Fprintf(w, "\nRaids:\n")
	fmt.Fprintf(w, "======\n")
	fmt.Fprintf(w, "%-4s %-24s %10s %10s\n", "ID", "Name", "Normal", "Hard")
	for _, raid := range raids {
		fmt.Fprintf(w, "%-4d %-24s %10s %10s\n", raid.ID, raid.Name, formatGoldPtr(raid.NormalGold), formatGoldPtr(raid.HardGold))
	}
}
