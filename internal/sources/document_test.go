package sources_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/sources"
)

const testDocument = `<!DOCTYPE html>
<html>
<head><title>Generator</title></head>
<body>
  <input type="text" id="outside" name="search">
  <section id="chooser">
    <details open>
      <summary>Animations</summary>
      <input type="checkbox" name="animation" id="animation-walk" checked>
      <input type="checkbox" name="animation" id="animation-slash">
    </details>
    <ul>
      <li><input type="radio" id="torso-white" name="torso" variant="white" matchBodyColor></li>
      <li><input type="radio" id="shoulders-leather" name="shoulders" parentName="torso" variant="leather"></li>
      <li><input type="radio" id="weapon-none" name="weapon" value="none"></li>
    </ul>
  </section>
</body>
</html>`

func TestParseDocument(t *testing.T) {
	controls, err := sources.ParseDocument(strings.NewReader(testDocument))
	require.NoError(t, err)

	require.Len(t, controls, 5, "inputs outside the chooser section are ignored")
	assert.Equal(t, "animation-walk", controls[0].Attrs["id"])
	assert.Equal(t, "torso-white", controls[2].Attrs["id"])

	matchBodyColor, ok := controls[2].Attr("matchbodycolor")
	assert.True(t, ok, "attribute names are lower-cased")
	assert.Empty(t, matchBodyColor)
	assert.Equal(t, "torso", controls[3].Attrs["parentname"])
}

func TestParsedDocumentBuildsCatalog(t *testing.T) {
	controls, err := sources.ParseDocument(strings.NewReader(testDocument))
	require.NoError(t, err)

	c, report, err := catalog.Build(nil, controls)
	require.NoError(t, err)

	assert.Equal(t, []string{"shoulders", "torso", "weapon"}, c.SlotNames())
	assert.Equal(t, []string{"walk", "slash"}, c.Animations())
	assert.Equal(t, 3, report.Declarations)

	index := catalog.BuildParameterIndex(c)
	require.Len(t, index["torso"], 1)
	assert.True(t, index["torso"][0].MatchBodyColor)
}

func TestParseDocumentWithoutChooser(t *testing.T) {
	_, err := sources.ParseDocument(strings.NewReader(`<html><body><section id="other"></section></body></html>`))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o600))

	controls, err := sources.LoadDocument(path)
	require.NoError(t, err)
	assert.Len(t, controls, 5)

	_, err = sources.LoadDocument(filepath.Join(t.TempDir(), "missing.html"))
	assert.True(t, errors.IsNotFound(err))
}
