package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/handlers/sprite/v1alpha1"
)

var fixed []string

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Sample a random valid configuration",
	RunE:  runRandom,
}

func init() {
	addConfigurationFlags(randomCmd)
	randomCmd.Flags().StringArrayVar(&fixed, "fix", nil, "Selection to keep as slot=key[,key...] (repeatable)")
}

func runRandom(cmd *cobra.Command, _ []string) error {
	parsed, err := parseSelections(fixed)
	if err != nil {
		return err
	}

	client, cleanup, err := createSpriteClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RandomConfiguration(ctx, &v1alpha1.RandomConfigurationRequest{
		BodyType:   bodyType,
		BodyColor:  bodyColor,
		Animations: animations,
		Fixed:      parsed,
	})
	if err != nil {
		return describeError("failed to sample configuration", err)
	}

	out := cmd.OutOrStdout()
	printConfiguration(out, resp.Configuration)

	fmt.Fprintf(out, "\nAttempts: %d\n", resp.Attempts)
	if len(resp.DroppedSlots) > 0 {
		fmt.Fprintf(out, "Dropped slots: %s\n", strings.Join(resp.DroppedSlots, ", "))
	}
	return nil
}
