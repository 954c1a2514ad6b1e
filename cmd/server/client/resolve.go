package client

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/handlers/sprite/v1alpha1"
)

var (
	bodyType   string
	bodyColor  string
	animations []string
	selections []string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve selections into asset paths",
	Long: `Resolve selections into asset paths.

Selections are given as slot=key[,key...], for example:
  --select torso=longsleeve,white --select hair=plain,blonde`,
	RunE: runResolve,
}

func init() {
	addConfigurationFlags(resolveCmd)
	resolveCmd.Flags().StringArrayVar(&selections, "select", nil, "Selection as slot=key[,key...] (repeatable)")
	_ = resolveCmd.MarkFlagRequired("body-type") // nolint:errcheck // safe to ignore in init
}

// addConfigurationFlags registers the body and animation flags
func addConfigurationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&bodyType, "body-type", "", "Body type (male, female, muscular, pregnant, teen)")
	cmd.Flags().StringVar(&bodyColor, "body-color", "", "Body color (defaults to light)")
	cmd.Flags().StringSliceVar(&animations, "animation", nil, "Animations every selected slot must support")
}

func runResolve(cmd *cobra.Command, _ []string) error {
	parsed, err := parseSelections(selections)
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

	resp, err := client.ResolveConfiguration(ctx, &v1alpha1.ResolveConfigurationRequest{
		BodyType:   bodyType,
		BodyColor:  bodyColor,
		Animations: animations,
		Selections: parsed,
	})
	if err != nil {
		return describeError("failed to resolve configuration", err)
	}

	printConfiguration(cmd.OutOrStdout(), resp.Configuration)
	return nil
}

// printConfiguration renders a configuration header and its equipment table
func printConfiguration(out io.Writer, config *v1alpha1.Configuration) {
	fmt.Fprintf(out, "Body type:  %s\n", config.BodyType)
	fmt.Fprintf(out, "Body color: %s\n", config.BodyColor)
	if len(config.Animations) > 0 {
		fmt.Fprintf(out, "Animations: %s\n", strings.Join(config.Animations, ", "))
	}
	fmt.Fprintln(out)

	slots := make([]string, 0, len(config.Equipment))
	for slot := range config.Equipment {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	tbl := table.New("Slot", "Asset").WithWriter(out)
	for _, slot := range slots {
		tbl.AddRow(slot, config.Equipment[slot])
	}
	tbl.Print()
}
