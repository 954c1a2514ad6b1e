package catalog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/testutils"
)

func TestBuildArtifact(t *testing.T) {
	c := testutils.BuildTestCatalog(t)

	artifact := catalog.BuildArtifact(c)

	assert.ElementsMatch(t, []string{"body", "ears", "torso", "shadow"}, keys(artifact))
	assert.Equal(t, []string{
		testutils.TorsoPrefixMale + "black",
		testutils.TorsoPrefixMale + "white",
	}, artifact["torso"][sprite.BodyTypeMale])
	assert.Equal(t, []string{
		testutils.BodyPrefixTeen + "dark",
		testutils.BodyPrefixTeen + "light",
		testutils.BodyPrefixTeen + "olive",
	}, artifact["body"][sprite.BodyTypeTeen])
	assert.Empty(t, artifact["shadow"][sprite.BodyTypeMale])
	assert.Len(t, artifact["shadow"], len(sprite.BodyTypes))
}

func TestArtifactRoundTrip(t *testing.T) {
	c := testutils.BuildTestCatalog(t)
	artifact := catalog.BuildArtifact(c)

	var buf bytes.Buffer
	require.NoError(t, catalog.WriteArtifact(&buf, artifact))
	assert.Contains(t, buf.String(), `"torso"`)

	decoded, err := catalog.ReadArtifact(&buf)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(artifact, decoded))

	restored, err := catalog.FromArtifact(decoded, c.Animations())
	require.NoError(t, err)
	assert.Equal(t, []string{"body", "ears", "torso"}, restored.SlotNames())

	config, err := catalog.Resolve(restored, &catalog.ResolveInput{
		BodyType:   sprite.BodyTypeMale,
		Selections: catalog.Selections{"torso": {"black"}},
	})
	require.NoError(t, err)
	assert.Equal(t, testutils.TorsoPrefixMale+"black", config.Equipment["torso"])
}

func TestArtifactRoundTripMultiSegmentReference(t *testing.T) {
	c, _, err := catalog.Build([]catalog.RawDefinition{{Source: "torso.json", Data: []byte(`{
		"type_name": "torso",
		"layer_1": {
			"male": "torso/male/white.png",
			"female": "torso/female/white.png",
			"muscular": "torso/muscular/white.png",
			"pregnant": "torso/pregnant/white.png",
			"teen": "torso/teen/white.png"
		},
		"variants": ["white"]
	}`)}}, []catalog.RawControl{
		{Attrs: map[string]string{
			"type": "radio", "name": "torso", "id": "torso-striped",
			"variant": "striped", "value": "striped/blue.png",
		}},
	})
	require.NoError(t, err)

	original, err := catalog.Resolve(c, &catalog.ResolveInput{
		BodyType:   sprite.BodyTypeFemale,
		Selections: catalog.Selections{"torso": {"striped"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "torso/female/striped/blue.png", original.Equipment["torso"])

	artifact := catalog.BuildArtifact(c)
	assert.Equal(t, []string{
		"torso/female/striped/blue.png",
		"torso/female/white",
	}, artifact["torso"][sprite.BodyTypeFemale])

	restored, err := catalog.FromArtifact(artifact, nil)
	require.NoError(t, err)

	prefix, ok := mustSlot(t, restored, "torso").Prefix(sprite.BodyTypeFemale)
	require.True(t, ok)
	assert.Equal(t, "torso/female/", prefix)

	config, err := catalog.Resolve(restored, &catalog.ResolveInput{
		BodyType:   sprite.BodyTypeFemale,
		Selections: catalog.Selections{"torso": {"striped/blue.png"}},
	})
	require.NoError(t, err)
	assert.Equal(t, original.Equipment["torso"], config.Equipment["torso"])
}

func mustSlot(t *testing.T, c *catalog.Catalog, name string) *catalog.Slot {
	t.Helper()
	slot, ok := c.Slot(name)
	require.True(t, ok, "missing slot %s", name)
	return slot
}

func TestReadArtifactInvalid(t *testing.T) {
	_, err := catalog.ReadArtifact(strings.NewReader(`[1, 2`))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestFromArtifactFailures(t *testing.T) {
	testCases := []struct {
		name     string
		artifact catalog.Artifact
		reason   string
	}{
		{
			name:     "empty",
			artifact: catalog.Artifact{},
			reason:   catalog.ReasonNoSelectableOptions,
		},
		{
			name: "mixed prefixes",
			artifact: catalog.Artifact{"torso": {
				sprite.BodyTypeMale: {"a/white", "b/black"},
			}},
		},
		{
			name: "unknown body type",
			artifact: catalog.Artifact{"torso": {
				"robot": {"a/white"},
			}},
		},
		{
			name: "missing body types",
			artifact: catalog.Artifact{"torso": {
				sprite.BodyTypeMale: {"a/white"},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.FromArtifact(tc.artifact, nil)
			require.Error(t, err)
			assert.Equal(t, tc.reason, catalog.Reason(err))
		})
	}
}

func keys(a catalog.Artifact) []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	return names
}
