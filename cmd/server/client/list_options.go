package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/handlers/sprite/v1alpha1"
)

var includeRemote bool

var listOptionsCmd = &cobra.Command{
	Use:   "list-options",
	Short: "List body types, animations and equipment slots",
	RunE:  runListOptions,
}

func init() {
	listOptionsCmd.Flags().BoolVar(&includeRemote, "remote", false, "Also show the compositing service's own listing")
}

func runListOptions(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createSpriteClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListOptions(ctx, &v1alpha1.ListOptionsRequest{IncludeRemote: includeRemote})
	if err != nil {
		return describeError("failed to list options", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Body types: %s\n", strings.Join(resp.BodyTypes, ", "))
	fmt.Fprintf(out, "Animations: %s\n\n", strings.Join(resp.Animations, ", "))

	tbl := table.New("Slot", "Body typed", "Variants", "Animations").WithWriter(out)
	for _, slot := range resp.Slots {
		tbl.AddRow(slot.Name, slot.BodyTyped, previewList(slot.Variants, 5), len(slot.Animations))
	}
	tbl.Print()

	if resp.Remote != nil {
		fmt.Fprintf(out, "\nCompositor body types: %s\n", strings.Join(resp.Remote.BodyTypes, ", "))
		fmt.Fprintf(out, "Compositor equipment types: %d\n", len(resp.Remote.EquipmentTypes))
	}

	return nil
}

// previewList shows at most n items followed by a count of the rest
func previewList(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:n], ", "), len(items)-n)
}
