// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/raid-gold-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "raid-gold",
	Short: "Raid gold planner gRPC server",
	Long:  `raid-gold plans which raids each character of an expedition runs this week and how much gold that earns.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
