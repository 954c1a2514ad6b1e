// Package sources reads the raw catalog inputs from disk: the definition
// records and the controls of the options document.
package sources

import (
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
)

// DefaultDefinitionPattern matches every definition file below the root
const DefaultDefinitionPattern = "**/*.json"

// DefinitionsConfig locates the definition records
type DefinitionsConfig struct {
	Dir     string
	Pattern string
}

// Validate ensures the config is usable
func (c *DefinitionsConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Dir == "" {
		vb.RequiredField("dir")
	}
	if c.Pattern != "" && !doublestar.ValidatePattern(c.Pattern) {
		vb.Fieldf("pattern", "invalid glob pattern %q", c.Pattern)
	}

	return vb.Build()
}

// LoadDefinitions reads every file under cfg.Dir that matches the pattern.
// Files are returned in lexical path order so later files win duplicate
// type names deterministically.
func LoadDefinitions(cfg *DefinitionsConfig) ([]catalog.RawDefinition, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid definitions config")
	}

	info, err := os.Stat(cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("definitions directory %s not found", cfg.Dir)
		}
		return nil, errors.Wrapf(err, "failed to stat %s", cfg.Dir)
	}
	if !info.IsDir() {
		return nil, errors.InvalidArgumentf("%s is not a directory", cfg.Dir)
	}

	pattern := cfg.Pattern
	if pattern == "" {
		pattern = DefaultDefinitionPattern
	}

	fsys := os.DirFS(cfg.Dir)
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to match %s in %s", pattern, cfg.Dir)
	}
	sort.Strings(matches)

	defs := make([]catalog.RawDefinition, 0, len(matches))
	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read definition %s", name)
		}
		defs = append(defs, catalog.RawDefinition{Source: name, Data: data})
	}

	slog.Info("Loaded definition records",
		"dir", cfg.Dir,
		"pattern", pattern,
		"count", len(defs),
	)

	return defs, nil
}
