package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
)

var (
	paramsOut string
	typesOut  string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Write catalog artifacts to disk",
}

var extractParamsCmd = &cobra.Command{
	Use:   "params",
	Short: "Write the parameter index",
	Long:  `Build the catalog and write every slot's parameter records as JSON.`,
	RunE:  runExtractParams,
}

var extractTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "Write the catalog artifact",
	Long:  `Build the catalog and write the slot and body type prefix artifact as JSON.`,
	RunE:  runExtractTypes,
}

func init() {
	extractParamsCmd.Flags().StringVar(&paramsOut, "out", "chooser_params.json", "Output file")
	addSourceFlags(extractParamsCmd)

	extractTypesCmd.Flags().StringVar(&typesOut, "out", filepath.Join("api", "types.json"), "Output file")
	addSourceFlags(extractTypesCmd)

	extractCmd.AddCommand(extractParamsCmd)
	extractCmd.AddCommand(extractTypesCmd)
}

func runExtractParams(cmd *cobra.Command, _ []string) error {
	cat, report, err := buildForExtract(cmd)
	if err != nil {
		return err
	}

	index := catalog.BuildParameterIndex(cat)
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode parameter index: %w", err)
	}
	if err := writeOutput(paramsOut, append(data, '\n')); err != nil {
		return err
	}

	tbl := table.New("Slot", "Records").WithWriter(cmd.OutOrStdout())
	for _, name := range cat.SlotNames() {
		tbl.AddRow(name, len(index[name]))
	}
	tbl.Print()

	printReport(cmd, report)
	fmt.Fprintf(cmd.OutOrStdout(), "\nWrote %s\n", paramsOut)
	return nil
}

func runExtractTypes(cmd *cobra.Command, _ []string) error {
	cat, report, err := buildForExtract(cmd)
	if err != nil {
		return err
	}

	f, err := createOutput(typesOut)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := catalog.WriteArtifact(f, catalog.BuildArtifact(cat)); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	printReport(cmd, report)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d slots)\n", typesOut, len(cat.SlotNames()))
	return nil
}

func buildForExtract(cmd *cobra.Command) (*catalog.Catalog, *catalog.BuildReport, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	applySourceFlags(cmd, cfg)

	_, closeLog := setupLogger(cfg.Log)
	defer closeLog()

	return loadCatalog(cfg.Sources)
}

func printReport(cmd *cobra.Command, report *catalog.BuildReport) {
	if len(report.Skipped) == 0 {
		return
	}

	fmt.Fprintln(cmd.OutOrStdout())
	tbl := table.New("Skipped definition", "Error").WithWriter(cmd.OutOrStdout())
	for _, skipped := range report.Skipped {
		tbl.AddRow(skipped.Source, skipped.Err)
	}
	tbl.Print()
}

func createOutput(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}

func writeOutput(path string, data []byte) error {
	f, err := createOutput(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close() // nolint:errcheck // write error takes precedence
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
