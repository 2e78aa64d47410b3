// Package client provides commands that call the raid gold planner gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	expeditionv1alpha1 "github.com/KirkDiggler/raid-gold-api/internal/api/expedition/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// identity is the player every command acts for
	identity string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the raid gold planner",
	Long:  `Client commands let you plan raids against a running server by making real gRPC requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&identity, "identity", "", "Player identity (a character name on the account)")

	// Lookups
	ClientCmd.AddCommand(rosterCmd)
	ClientCmd.AddCommand(raidsCmd)

	// Planning
	ClientCmd.AddCommand(loadCmd)
	ClientCmd.AddCommand(showCmd)
	ClientCmd.AddCommand(toggleCmd)
	ClientCmd.AddCommand(difficultyCmd)
	ClientCmd.AddCommand(incomeCmd)
	ClientCmd.AddCommand(saveCmd)
	ClientCmd.AddCommand(resetCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createExpeditionClient creates an expedition service client
func createExpeditionClient() (expeditionv1alpha1.ExpeditionServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := expeditionv1alpha1.NewExpeditionServiceClient(conn)
	return client, cleanup, nil
}

// requireIdentity is a PreRunE for commands that act for a player
func requireIdentity(_ *cobra.Command, _ []string) error {
	if identity == "" {
		return fmt.Errorf("--identity is required")
	}
	return nil
}

// withClient runs fn with a connected client and a request scoped context
func withClient(fn func(ctx context.Context, client expeditionv1alpha1.ExpeditionServiceClient) error) error {
	client, cleanup, err := createExpeditionClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}
