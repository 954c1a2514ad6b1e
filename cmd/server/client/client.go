// Package client provides commands that call the sprite gRPC service
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/handlers/sprite/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the sprite service",
	Long:  `Client commands call a running sprite server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Request timeout")

	// Catalog commands
	ClientCmd.AddCommand(listOptionsCmd)
	ClientCmd.AddCommand(listParametersCmd)

	// Configuration commands
	ClientCmd.AddCommand(resolveCmd)
	ClientCmd.AddCommand(randomCmd)

	// Spritesheet commands
	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(getSpritesheetCmd)
	ClientCmd.AddCommand(deleteSpritesheetCmd)

	ClientCmd.AddCommand(healthCmd)
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

// createSpriteClient creates a sprite service client
func createSpriteClient() (v1alpha1.SpriteServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewSpriteServiceClient(conn), cleanup, nil
}

// parseSelections turns slot=key,key flags into selection paths
func parseSelections(values []string) (map[string][]string, error) {
	selections := make(map[string][]string, len(values))
	for _, value := range values {
		slot, path, ok := strings.Cut(value, "=")
		slot = strings.TrimSpace(slot)
		if !ok || slot == "" {
			return nil, errors.InvalidArgumentf("selection %q must look like slot=key[,key...]", value)
		}

		var keys []string
		for _, key := range strings.Split(path, ",") {
			if key = strings.TrimSpace(key); key != "" {
				keys = append(keys, key)
			}
		}
		selections[slot] = keys
	}
	return selections, nil
}

// describeError renders a service error with its catalog reason
func describeError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	reason := catalog.Reason(converted)
	if reason == "" {
		return fmt.Errorf("%s: %w", action, converted)
	}
	if slot := catalog.SlotOf(converted); slot != "" {
		return fmt.Errorf("%s: %s (slot %s): %s", action, reason, slot, errors.GetMessage(converted))
	}
	return fmt.Errorf("%s: %s: %s", action, reason, errors.GetMessage(converted))
}
