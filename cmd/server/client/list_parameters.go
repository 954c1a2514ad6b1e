package client

import (
	"context"
	"sort"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/handlers/sprite/v1alpha1"
)

var parametersSlot string

var listParametersCmd = &cobra.Command{
	Use:   "list-parameters",
	Short: "List the selectable parameter records",
	RunE:  runListParameters,
}

func init() {
	listParametersCmd.Flags().StringVar(&parametersSlot, "slot", "", "Only list records for this slot")
}

func runListParameters(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createSpriteClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListParameters(ctx, &v1alpha1.ListParametersRequest{Slot: parametersSlot})
	if err != nil {
		return describeError("failed to list parameters", err)
	}

	slots := make([]string, 0, len(resp.Parameters))
	for slot := range resp.Parameters {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	tbl := table.New("Slot", "ID", "Variant", "Value", "Parent", "Match body color").WithWriter(cmd.OutOrStdout())
	for _, slot := range slots {
		for _, param := range resp.Parameters[slot] {
			tbl.AddRow(slot, param.ID, param.Variant, param.Value, param.ParentName, param.MatchBodyColor)
		}
	}
	tbl.Print()

	return nil
}
