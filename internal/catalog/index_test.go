package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/testutils"
)

func TestBuildParameterIndex(t *testing.T) {
	c := testutils.BuildTestCatalog(t)

	index := catalog.BuildParameterIndex(c)

	assert.Len(t, index, 5)
	assert.NotContains(t, index, testutils.SlotBody, "slots without declarations have no records")

	torso := index[testutils.SlotTorso]
	require.Len(t, torso, 2)
	assert.Equal(t, "white", torso[0].Variant, "declaration order is preserved")
	assert.Equal(t, "black", torso[1].Variant)
	assert.Equal(t, []string{"walk", "slash"}, torso[0].SupportedAnimations)

	shoulders := index[testutils.SlotShoulders]
	require.Len(t, shoulders, 1)
	assert.Equal(t, sprite.ParameterRecord{
		Slot:                testutils.SlotShoulders,
		ID:                  "shoulders-leather",
		ParentName:          testutils.SlotTorso,
		Variant:             "leather",
		Value:               testutils.ShouldersAsset,
		SupportedAnimations: []string{"walk", "slash", "spellcast"},
	}, shoulders[0])
	assert.True(t, shoulders[0].HasParent())

	ears := index[testutils.SlotEars]
	require.Len(t, ears, 2)
	assert.True(t, ears[0].MatchBodyColor, "a bare attribute sets the flag")
	assert.True(t, ears[1].MatchBodyColor)

	hair := index[testutils.SlotHair]
	require.Len(t, hair, 1)
	assert.False(t, hair[0].HasParent(), "a record naming its own slot has no dependency")

	weapon := index[testutils.SlotWeapon]
	require.Len(t, weapon, 1)
	assert.Equal(t, testutils.WeaponAsset, weapon[0].Key())
}

func TestBuildParameterIndexReturnsCopies(t *testing.T) {
	c := testutils.BuildTestCatalog(t)

	first := catalog.BuildParameterIndex(c)
	first[testutils.SlotTorso][0].SupportedAnimations[0] = "changed"
	first[testutils.SlotTorso] = nil

	second := catalog.BuildParameterIndex(c)
	require.Len(t, second[testutils.SlotTorso], 2)
	assert.Equal(t, "walk", second[testutils.SlotTorso][0].SupportedAnimations[0])
}

func TestParameters(t *testing.T) {
	c := testutils.BuildTestCatalog(t)

	assert.Len(t, c.Parameters(testutils.SlotTorso), 2)
	assert.Empty(t, c.Parameters("wings"))
}
