package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/handlers/sprite/v1alpha1"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the sprite service is serving",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, _ []string) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{
		Service: v1alpha1.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", v1alpha1.ServiceName, resp.GetStatus())
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("service is not serving")
	}
	return nil
}
