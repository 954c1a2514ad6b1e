package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
)

// Fixture slot and variant names used across package tests
const (
	SlotBody      = "body"
	SlotCape      = "cape"
	SlotEars      = "ears"
	SlotHair      = "hair"
	SlotShoulders = "shoulders"
	SlotTorso     = "torso"
	SlotWeapon    = "weapon"

	TorsoPrefixMale = "torso/clothes/longsleeve/male/"
	BodyPrefixTeen  = "body/bodies/teen/"
	ShouldersAsset  = "shoulders/leather.png"
	WeaponAsset     = "weapon/sword.png"
)

// TestDefinitions returns raw definition records covering body-typed, flat,
// nested, color-tagged, malformed and prefix-only shapes.
func TestDefinitions() []catalog.RawDefinition {
	return []catalog.RawDefinition{
		{Source: "body.json", Data: []byte(`{
			"name": "Body",
			"type_name": "body",
			"layer_1": {
				"zPos": 10,
				"male": "body/bodies/male/light.png",
				"female": "body/bodies/female/light.png",
				"muscular": "body/bodies/muscular/light.png",
				"pregnant": "body/bodies/pregnant/light.png",
				"teen": "body/bodies/teen/light.png"
			},
			"variants": ["light", "dark", "olive"]
		}`)},
		{Source: "torso.json", Data: []byte(`{
			"type_name": "torso",
			"layer_1": {
				"male": "torso/clothes/longsleeve/male/white.png",
				"female": "torso/clothes/longsleeve/female/white.png",
				"muscular": "torso/clothes/longsleeve/muscular/white.png",
				"pregnant": "torso/clothes/longsleeve/pregnant/white.png",
				"teen": "torso/clothes/longsleeve/teen/white.png"
			},
			"variants": ["white", "black"],
			"animations": ["walk", "slash"]
		}`)},
		{Source: "ears.json", Data: []byte(`{
			"type_name": "ears",
			"layer_1": {
				"male": "ears/elven/male/light.png",
				"female": "ears/elven/female/light.png",
				"muscular": "ears/elven/muscular/light.png",
				"pregnant": "ears/elven/pregnant/light.png",
				"teen": "ears/elven/teen/light.png"
			},
			"variants": ["pale", "bronze"],
			"color_families": {"light": ["light", "pale"], "dark": ["dark", "bronze"]}
		}`)},
		{Source: "hair.json", Data: []byte(`{
			"type_name": "hair",
			"variants": {
				"plain": {"blonde": "hair/plain/blonde.png", "black": "hair/plain/black.png"},
				"bangs": ["hair/bangs/brown.png", "hair/bangs/red.png"]
			}
		}`)},
		{Source: "cape.json", Data: []byte(`{
			"type_name": "cape",
			"layer_1": {"male": "cape/male/red.png", "female": "cape/female/red.png"},
			"variants": ["red"]
		}`)},
		{Source: "shadow.json", Data: []byte(`{
			"type_name": "shadow",
			"layer_1": {
				"male": "shadow/adult/shadow.png",
				"female": "shadow/adult/shadow.png",
				"muscular": "shadow/adult/shadow.png",
				"pregnant": "shadow/adult/shadow.png",
				"teen": "shadow/child/shadow.png"
			}
		}`)},
		{Source: "broken.json", Data: []byte(`{"type_name": "broken",`)},
	}
}

// TestControls returns the options document controls in document order
func TestControls() []catalog.RawControl {
	return []catalog.RawControl{
		{Attrs: map[string]string{"type": "checkbox", "name": "animation", "id": "animation-walk"}},
		{Attrs: map[string]string{"type": "checkbox", "name": "animation", "id": "animation-slash"}},
		{Attrs: map[string]string{"type": "checkbox", "name": "animation", "id": "animation-spellcast"}},
		{Attrs: map[string]string{"type": "text", "name": "search", "id": "search"}},
		{Attrs: map[string]string{"type": "radio", "name": "torso", "id": "torso-white", "variant": "white"}},
		{Attrs: map[string]string{"type": "radio", "name": "torso", "id": "torso-black", "variant": "black"}},
		{Attrs: map[string]string{
			"type": "radio", "name": "shoulders", "id": "shoulders-leather",
			"variant": "leather", "parentname": "torso", "value": ShouldersAsset,
		}},
		{Attrs: map[string]string{"type": "radio", "name": "ears", "id": "ears-pale", "variant": "pale", "matchbodycolor": ""}},
		{Attrs: map[string]string{"type": "radio", "name": "ears", "id": "ears-bronze", "variant": "bronze", "matchbodycolor": "true"}},
		{Attrs: map[string]string{"type": "radio", "name": "hair", "id": "hair-plain", "variant": "plain", "parentname": "hair"}},
		{Attrs: map[string]string{"type": "radio", "name": "weapon", "id": "weapon-sword", "value": WeaponAsset}},
		{Attrs: map[string]string{"type": "radio", "id": "orphan", "variant": "none"}},
	}
}

// BuildTestCatalog builds the fixture catalog
func BuildTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, _, err := catalog.Build(TestDefinitions(), TestControls())
	require.NoError(t, err, "failed to build test catalog")

	return c
}
