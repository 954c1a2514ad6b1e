package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/config"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
)

const testDocument = `<html><body>
<section id="chooser">
  <input type="checkbox" name="animation" id="animation-walk">
  <input type="radio" id="torso-white" name="torso" variant="white">
  <input type="radio" id="shoulders-leather" name="shoulders" parentName="torso" variant="leather">
</section>
</body></html>`

const testTorsoDefinition = `{
	"type_name": "torso",
	"layer_1": {
		"male": "torso/shirt/male/white.png",
		"female": "torso/shirt/female/white.png",
		"muscular": "torso/shirt/muscular/white.png",
		"pregnant": "torso/shirt/pregnant/white.png",
		"teen": "torso/shirt/teen/white.png"
	},
	"variants": ["white", "black"]
}`

func writeSources(t *testing.T) config.SourcesConfig {
	t.Helper()

	dir := t.TempDir()
	defsDir := filepath.Join(dir, "sheet_definitions", "torso")
	require.NoError(t, os.MkdirAll(defsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(defsDir, "shirt.json"), []byte(testTorsoDefinition), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(defsDir, "broken.json"), []byte(`{"type_name":`), 0o600))

	doc := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(doc, []byte(testDocument), 0o600))

	return config.SourcesConfig{
		DefinitionsDir:     filepath.Join(dir, "sheet_definitions"),
		DefinitionsPattern: "**/*.json",
		Document:           doc,
	}
}

func TestLoadCatalog(t *testing.T) {
	cat, report, err := loadCatalog(writeSources(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"shoulders", "torso"}, cat.SlotNames())
	assert.Equal(t, []string{"walk"}, cat.Animations())
	require.Len(t, report.Skipped, 1)
	assert.Contains(t, report.Skipped[0].Source, "broken.json")
}

func TestLoadCatalogMissingDocument(t *testing.T) {
	src := writeSources(t)
	src.Document = filepath.Join(t.TempDir(), "missing.html")

	_, _, err := loadCatalog(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "options document")
}

func TestExtractCommands(t *testing.T) {
	src := writeSources(t)
	outDir := t.TempDir()
	paramsPath := filepath.Join(outDir, "chooser_params.json")
	typesPath := filepath.Join(outDir, "api", "types.json")

	run := func(args ...string) string {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(append(args,
			"--definitions", src.DefinitionsDir,
			"--document", src.Document,
		))
		require.NoError(t, rootCmd.Execute())
		return out.String()
	}

	output := run("extract", "params", "--out", paramsPath)
	assert.Contains(t, output, "broken.json")

	data, err := os.ReadFile(paramsPath)
	require.NoError(t, err)
	var params map[string][]sprite.ParameterRecord
	require.NoError(t, json.Unmarshal(data, &params))
	require.Len(t, params["shoulders"], 1)
	assert.Equal(t, "torso", params["shoulders"][0].ParentName)
	assert.Contains(t, string(data), `"parentName"`)

	run("extract", "types", "--out", typesPath)

	f, err := os.Open(typesPath)
	require.NoError(t, err)
	defer f.Close()

	artifact, err := catalog.ReadArtifact(f)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"torso/shirt/female/black",
		"torso/shirt/female/white",
	}, artifact["torso"][sprite.BodyTypeFemale])
}
