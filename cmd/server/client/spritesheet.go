package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/handlers/sprite/v1alpha1"
)

var getSpritesheetCmd = &cobra.Command{
	Use:   "get-spritesheet [spritesheet-id]",
	Short: "Download a stored spritesheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetSpritesheet,
}

var deleteSpritesheetCmd = &cobra.Command{
	Use:   "delete-spritesheet [spritesheet-id]",
	Short: "Delete a stored spritesheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteSpritesheet,
}

func init() {
	getSpritesheetCmd.Flags().StringVar(&outputPath, "out", "character_spritesheet.png", "Where to save the image")
}

func runGetSpritesheet(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpriteClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetSpritesheet(ctx, &v1alpha1.GetSpritesheetRequest{ID: args[0]})
	if err != nil {
		return describeError("failed to get spritesheet", err)
	}

	if err := os.WriteFile(outputPath, resp.Spritesheet.ImageData, 0o600); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	printSpritesheet(cmd.OutOrStdout(), resp.Spritesheet, outputPath)
	return nil
}

func runDeleteSpritesheet(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpriteClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.DeleteSpritesheet(ctx, &v1alpha1.DeleteSpritesheetRequest{ID: args[0]})
	if err != nil {
		return describeError("failed to delete spritesheet", err)
	}

	if resp.Deleted {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted spritesheet %s\n", args[0])
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Spritesheet %s was already gone\n", args[0])
	}
	return nil
}
