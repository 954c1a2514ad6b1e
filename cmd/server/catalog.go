package main

import (
	"log/slog"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/config"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/sources"
)

// loadCatalog reads both sources and builds the catalog
func loadCatalog(cfg config.SourcesConfig) (*catalog.Catalog, *catalog.BuildReport, error) {
	defs, err := sources.LoadDefinitions(&sources.DefinitionsConfig{
		Dir:     cfg.DefinitionsDir,
		Pattern: cfg.DefinitionsPattern,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load definitions")
	}

	controls, err := sources.LoadDocument(cfg.Document)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load options document")
	}

	c, report, err := catalog.Build(defs, controls)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build catalog")
	}

	for _, skipped := range report.Skipped {
		slog.Warn("Skipped definition", "source", skipped.Source, "error", skipped.Err)
	}
	for _, slot := range report.Duplicates {
		slog.Warn("Duplicate definition replaced earlier record", "slot", slot)
	}

	return c, report, nil
}

// loadConfig reads the config file named by --config over the defaults
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}
