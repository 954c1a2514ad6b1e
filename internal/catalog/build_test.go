package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/testutils"
)

type BuildTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	report  *catalog.BuildReport
}

func (s *BuildTestSuite) SetupTest() {
	c, report, err := catalog.Build(testutils.TestDefinitions(), testutils.TestControls())
	s.Require().NoError(err)
	s.catalog = c
	s.report = report
}

func TestBuildTestSuite(t *testing.T) {
	suite.Run(t, new(BuildTestSuite))
}

func definition(source, data string) catalog.RawDefinition {
	return catalog.RawDefinition{Source: source, Data: []byte(data)}
}

func radio(attrs map[string]string) catalog.RawControl {
	attrs["type"] = "radio"
	return catalog.RawControl{Attrs: attrs}
}

func (s *BuildTestSuite) TestSlotNames() {
	s.Equal([]string{
		testutils.SlotBody,
		testutils.SlotCape,
		testutils.SlotEars,
		testutils.SlotHair,
		testutils.SlotShoulders,
		testutils.SlotTorso,
		testutils.SlotWeapon,
	}, s.catalog.SlotNames())
}

func (s *BuildTestSuite) TestReport() {
	s.Require().Len(s.report.Skipped, 1)
	s.Equal("broken.json", s.report.Skipped[0].Source)
	s.True(errors.IsInvalidArgument(s.report.Skipped[0].Err))
	s.Equal(catalog.ReasonMalformedDefinition, catalog.Reason(s.report.Skipped[0].Err))

	s.Equal([]string{"shadow"}, s.report.EmptySlots)
	s.Empty(s.report.Duplicates)
	s.Equal(7, s.report.Declarations)
	s.Equal(2, s.report.DiscardedControls)
}

func (s *BuildTestSuite) TestGlobalAnimations() {
	s.Equal([]string{"walk", "slash", "spellcast"}, s.catalog.Animations())
}

func (s *BuildTestSuite) TestSlotAnimations() {
	torso, ok := s.catalog.Slot(testutils.SlotTorso)
	s.Require().True(ok)
	s.Equal([]string{"walk", "slash"}, torso.Animations())
	s.False(torso.SupportsAnimation("spellcast"))

	hair, ok := s.catalog.Slot(testutils.SlotHair)
	s.Require().True(ok)
	s.Equal(s.catalog.Animations(), hair.Animations())
}

func (s *BuildTestSuite) TestBodyTypePrefixes() {
	torso, _ := s.catalog.Slot(testutils.SlotTorso)
	s.True(torso.IsBodyTyped())
	prefix, ok := torso.Prefix(sprite.BodyTypeMale)
	s.True(ok)
	s.Equal(testutils.TorsoPrefixMale, prefix)

	body, _ := s.catalog.Slot(testutils.SlotBody)
	prefix, ok = body.Prefix(sprite.BodyTypeTeen)
	s.True(ok)
	s.Equal(testutils.BodyPrefixTeen, prefix)

	cape, _ := s.catalog.Slot(testutils.SlotCape)
	s.False(cape.IsBodyTyped(), "a record missing body types contributes variants only")
	_, ok = cape.Prefix(sprite.BodyTypeMale)
	s.False(ok)
}

func (s *BuildTestSuite) TestRecordMissingOnlyTeenHasNoPrefixes() {
	c, _, err := catalog.Build([]catalog.RawDefinition{
		definition("legs.json", `{
			"type_name": "legs",
			"layer_1": {
				"male": "legs/pants/male/blue.png",
				"female": "legs/pants/female/blue.png",
				"muscular": "legs/pants/muscular/blue.png",
				"pregnant": "legs/pants/pregnant/blue.png"
			},
			"variants": ["blue", "green"]
		}`),
	}, nil)
	s.Require().NoError(err)

	legs, ok := c.Slot("legs")
	s.Require().True(ok)
	s.False(legs.IsBodyTyped())
	for _, bodyType := range sprite.BodyTypes {
		_, ok := legs.Prefix(bodyType)
		s.False(ok, "unexpected prefix for %s", bodyType)
	}
	s.Equal([]string{"blue", "green"}, legs.Root().Keys())

	s.NotContains(catalog.BuildArtifact(c), "legs")
}

func (s *BuildTestSuite) TestNestedVariants() {
	hair, _ := s.catalog.Slot(testutils.SlotHair)
	root := hair.Root()
	s.Equal([]string{"bangs", "plain"}, root.Keys())

	bangs, ok := root.Child("bangs")
	s.Require().True(ok)
	leaf, ok := bangs.(*catalog.Leaf)
	s.Require().True(ok)
	s.Equal([]string{"hair/bangs/brown.png", "hair/bangs/red.png"}, leaf.Refs())

	plain, ok := root.Child("plain")
	s.Require().True(ok)
	internal, ok := plain.(*catalog.Internal)
	s.Require().True(ok, "a declaration must not replace a nested subtree")
	s.Equal([]string{"black", "blonde"}, internal.Keys())
}

func (s *BuildTestSuite) TestDeclarationJoinsDefinitionLeaf() {
	torso, _ := s.catalog.Slot(testutils.SlotTorso)
	white, ok := torso.Root().Child("white")
	s.Require().True(ok)
	s.Equal([]string{"white"}, white.(*catalog.Leaf).Refs())

	shoulders, _ := s.catalog.Slot(testutils.SlotShoulders)
	leather, ok := shoulders.Root().Child("leather")
	s.Require().True(ok)
	s.Equal([]string{testutils.ShouldersAsset}, leather.(*catalog.Leaf).Refs())
}

func (s *BuildTestSuite) TestColorFamilies() {
	ears, _ := s.catalog.Slot(testutils.SlotEars)
	s.Equal("light", ears.ColorFamily("pale"))
	s.Equal("dark", ears.ColorFamily("bronze"))
	s.Equal("green", ears.ColorFamily("green"))
}

func (s *BuildTestSuite) TestDuplicateTypeNameLastWriteWins() {
	c, report, err := catalog.Build([]catalog.RawDefinition{
		definition("first.json", `{"type_name": "belt", "variants": ["leather"]}`),
		definition("second.json", `{"type_name": "belt", "variants": ["cloth"]}`),
	}, nil)
	s.Require().NoError(err)

	belt, ok := c.Slot("belt")
	s.Require().True(ok)
	s.Equal([]string{"cloth"}, belt.Root().Keys())
	s.Equal([]string{"belt"}, report.Duplicates)
}

func (s *BuildTestSuite) TestMalformedDefinitionsAreSkipped() {
	testCases := []struct {
		name string
		data string
	}{
		{name: "truncated", data: `{"type_name": `},
		{name: "top level array", data: `["belt"]`},
		{name: "null", data: `null`},
		{name: "numeric variants", data: `{"type_name": "belt", "variants": 3}`},
		{name: "numeric type name", data: `{"type_name": 3}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, report, err := catalog.Build([]catalog.RawDefinition{
				definition(tc.name, tc.data),
				definition("ok.json", `{"type_name": "cape", "variants": ["red"]}`),
			}, nil)
			s.Require().NoError(err)
			s.Equal([]string{"cape"}, c.SlotNames())
			s.Require().Len(report.Skipped, 1)
			s.Equal(tc.name, report.Skipped[0].Source)
		})
	}
}

func (s *BuildTestSuite) TestNoSelectableOptions() {
	_, report, err := catalog.Build([]catalog.RawDefinition{
		definition("broken.json", `not json`),
		definition("untyped.json", `{"variants": ["red"]}`),
		definition("empty.json", `{"type_name": "belt"}`),
	}, []catalog.RawControl{
		{Attrs: map[string]string{"type": "text", "name": "search"}},
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(catalog.ReasonNoSelectableOptions, catalog.Reason(err))
	s.Len(report.Skipped, 1)
}

func (s *BuildTestSuite) TestLayerOrdering() {
	c, _, err := catalog.Build([]catalog.RawDefinition{
		definition("legs.json", `{
			"type_name": "legs",
			"layer_10": {"male": "late/m.png", "female": "late/f.png", "muscular": "late/mu.png", "pregnant": "late/p.png", "teen": "late/t.png"},
			"layer_2": {"male": "legs/male/x.png", "female": "legs/female/x.png", "muscular": "legs/muscular/x.png", "pregnant": "legs/pregnant/x.png", "teen": "x.png"},
			"variants": ["pants"]
		}`),
	}, nil)
	s.Require().NoError(err)

	legs, _ := c.Slot("legs")
	prefix, _ := legs.Prefix(sprite.BodyTypeMale)
	s.Equal("legs/male/", prefix)
	prefix, _ = legs.Prefix(sprite.BodyTypeTeen)
	s.Equal("x.png/", prefix, "a path without a directory keeps the whole path")
}

func (s *BuildTestSuite) TestControlFiltering() {
	c, report, err := catalog.Build(nil, []catalog.RawControl{
		radio(map[string]string{"name": "belt", "variant": "leather"}),
		radio(map[string]string{"name": "belt"}),
		radio(map[string]string{"variant": "leather"}),
		{Attrs: map[string]string{"type": "checkbox", "name": "belt", "variant": "cloth"}},
		{Attrs: map[string]string{"type": "checkbox", "name": "animation", "id": "animation-walk"}},
		{Attrs: map[string]string{"type": "checkbox", "name": "animation", "id": "animation-walk"}},
		{Attrs: map[string]string{"type": "checkbox", "name": "animation", "id": "run"}},
	})
	s.Require().NoError(err)

	s.Equal([]string{"belt"}, c.SlotNames())
	belt, _ := c.Slot("belt")
	s.Equal([]string{"leather"}, belt.Root().Keys())
	s.Equal([]string{"walk", "run"}, c.Animations())
	s.Equal(1, report.Declarations)
	s.Equal(3, report.DiscardedControls)
}

func (s *BuildTestSuite) TestBuildIsDeterministic() {
	other, _, err := catalog.Build(testutils.TestDefinitions(), testutils.TestControls())
	s.Require().NoError(err)

	s.Empty(cmp.Diff(catalog.BuildParameterIndex(s.catalog), catalog.BuildParameterIndex(other)))
	s.Empty(cmp.Diff(catalog.BuildArtifact(s.catalog), catalog.BuildArtifact(other)))
}
