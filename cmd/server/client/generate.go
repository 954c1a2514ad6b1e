package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/handlers/sprite/v1alpha1"
)

var (
	outputPath string
	useRandom  bool
	sheetTTL   time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a spritesheet and save the image",
	Long: `Generate a spritesheet from selections, or from a random configuration
with --random, and save the image to disk.`,
	RunE: runGenerate,
}

func init() {
	addConfigurationFlags(generateCmd)
	generateCmd.Flags().StringArrayVar(&selections, "select", nil, "Selection as slot=key[,key...] (repeatable)")
	generateCmd.Flags().BoolVar(&useRandom, "random", false, "Sample a random configuration first")
	generateCmd.Flags().StringVar(&outputPath, "out", "character_spritesheet.png", "Where to save the image")
	generateCmd.Flags().DurationVar(&sheetTTL, "ttl", 0, "How long the server keeps the spritesheet (server default when 0)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	parsed, err := parseSelections(selections)
	if err != nil {
		return err
	}
	if !useRandom && bodyType == "" {
		return fmt.Errorf("--body-type is required unless --random is set")
	}

	client, cleanup, err := createSpriteClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.GenerateSpritesheetRequest{
		TTLSeconds: int64(sheetTTL / time.Second),
	}
	if useRandom {
		random, err := client.RandomConfiguration(ctx, &v1alpha1.RandomConfigurationRequest{
			BodyType:   bodyType,
			BodyColor:  bodyColor,
			Animations: animations,
			Fixed:      parsed,
		})
		if err != nil {
			return describeError("failed to sample configuration", err)
		}
		req.Configuration = random.Configuration
	} else {
		req.Selection = &v1alpha1.ResolveConfigurationRequest{
			BodyType:   bodyType,
			BodyColor:  bodyColor,
			Animations: animations,
			Selections: parsed,
		}
	}

	resp, err := client.GenerateSpritesheet(ctx, req)
	if err != nil {
		return describeError("failed to generate spritesheet", err)
	}

	if err := os.WriteFile(outputPath, resp.Spritesheet.ImageData, 0o600); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	printSpritesheet(cmd.OutOrStdout(), resp.Spritesheet, outputPath)
	return nil
}

// printSpritesheet summarizes a saved spritesheet and its credits
func printSpritesheet(out io.Writer, sheet *v1alpha1.Spritesheet, path string) {
	fmt.Fprintf(out, "Spritesheet %s saved to %s\n", sheet.ID, path)
	fmt.Fprintf(out, "Size:    %s (%s)\n", humanize.Bytes(uint64(len(sheet.ImageData))), sheet.MIMEType)
	if !sheet.ExpiresAt.IsZero() {
		fmt.Fprintf(out, "Expires: %s\n", humanize.Time(sheet.ExpiresAt))
	}

	if len(sheet.Credits) == 0 {
		return
	}

	fmt.Fprintf(out, "\nCredits (%d assets):\n", len(sheet.Credits))
	tbl := table.New("File", "Authors", "Licenses").WithWriter(out)
	for _, credit := range sheet.Credits {
		tbl.AddRow(credit.File, strings.Join(credit.Authors, ", "), strings.Join(credit.Licenses, ", "))
	}
	tbl.Print()
}
