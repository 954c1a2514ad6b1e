// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lpc-sprites",
	Short: "LPC sprite catalog gRPC server",
	Long: `lpc-sprites normalizes the LPC sheet definitions and options document into a
catalog, resolves character configurations against it and generates spritesheets
through the compositing service.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
