package catalog_test

import (
	stderrors "errors"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	catalogmock "github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog/mock"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/testutils"
)

type SampleTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoller *catalogmock.MockRoller
	catalog    *catalog.Catalog
}

func (s *SampleTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRoller = catalogmock.NewMockRoller(s.ctrl)
	s.catalog = testutils.BuildTestCatalog(s.T())
}

func (s *SampleTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSampleTestSuite(t *testing.T) {
	suite.Run(t, new(SampleTestSuite))
}

func (s *SampleTestSuite) TestWalksSortedKeys() {
	// Single-choice levels never roll.
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(5).Return(2, nil), // female
		s.mockRoller.EXPECT().Roll(3).Return(1, nil), // body: dark
		s.mockRoller.EXPECT().Roll(2).Return(2, nil), // ears: pale
		s.mockRoller.EXPECT().Roll(2).Return(1, nil), // hair: bangs
		s.mockRoller.EXPECT().Roll(2).Return(2, nil), // bangs: red
		s.mockRoller.EXPECT().Roll(2).Return(2, nil), // torso: white
	)

	sample, err := catalog.SampleRandom(s.catalog, s.mockRoller)
	s.Require().NoError(err)

	s.Equal(sprite.BodyTypeFemale, sample.BodyType)
	s.Equal(catalog.Selections{
		testutils.SlotBody:      {"dark"},
		testutils.SlotCape:      {"red"},
		testutils.SlotEars:      {"pale"},
		testutils.SlotHair:      {"bangs", "hair/bangs/red.png"},
		testutils.SlotShoulders: {"leather"},
		testutils.SlotTorso:     {"white"},
		testutils.SlotWeapon:    {testutils.WeaponAsset},
	}, sample.Selections)
}

func (s *SampleTestSuite) TestRollerFailure() {
	s.mockRoller.EXPECT().Roll(5).Return(0, stderrors.New("dice jammed"))

	_, err := catalog.SampleRandom(s.catalog, s.mockRoller)
	s.Require().Error(err)
	s.Contains(err.Error(), "dice jammed")
}

func (s *SampleTestSuite) TestRollOutOfRange() {
	s.mockRoller.EXPECT().Roll(5).Return(6, nil)

	_, err := catalog.SampleRandom(s.catalog, s.mockRoller)
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *SampleTestSuite) TestNilRoller() {
	_, err := catalog.SampleRandom(s.catalog, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SampleTestSuite) TestSamplesAlwaysResolveStructurally() {
	for i := 0; i < 200; i++ {
		sample, err := catalog.SampleRandom(s.catalog, dice.DefaultRoller)
		s.Require().NoError(err)
		s.Len(sample.Selections, len(s.catalog.SlotNames()))

		config, err := catalog.Resolve(s.catalog, &catalog.ResolveInput{
			BodyType:   sample.BodyType,
			Selections: sample.Selections,
		})
		if err != nil {
			s.True(catalog.IsConstraintViolation(err), "unexpected failure: %v", err)
			s.False(catalog.IsUnknownVariant(err))
			continue
		}
		s.Len(config.Equipment, len(s.catalog.SlotNames()))
	}
}
