package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/clients/compositor"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/handlers/sprite/v1alpha1"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/orchestrators/character"
	charactermock "github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/orchestrators/character/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharacter *charactermock.MockService
	handler       *v1alpha1.Handler
	ctx           context.Context
	testConfig    *sprite.Configuration
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacter = charactermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: s.mockCharacter,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.testConfig = &sprite.Configuration{
		BodyType:  sprite.BodyTypeFemale,
		BodyColor: "light",
		Equipment: map[string]string{"torso": "torso/clothes/longsleeve/female/white"},
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestListOptions() {
	s.mockCharacter.EXPECT().
		ListOptions(s.ctx, &character.ListOptionsInput{IncludeRemote: true}).
		Return(&character.ListOptionsOutput{
			BodyTypes:  []sprite.BodyType{sprite.BodyTypeMale, sprite.BodyTypeFemale},
			Animations: []string{"walk"},
			Slots: []character.SlotOption{
				{Name: "torso", Variants: []string{"black", "white"}, BodyTyped: true, Animations: []string{"walk"}},
			},
			Remote: &compositor.Options{
				BodyTypes: []string{"male"},
				Equipment: compositor.EquipmentOptions{Types: []string{"torso"}},
			},
		}, nil)

	resp, err := s.handler.ListOptions(s.ctx, &v1alpha1.ListOptionsRequest{IncludeRemote: true})
	s.Require().NoError(err)

	s.Equal([]string{"male", "female"}, resp.BodyTypes)
	s.Equal([]string{"walk"}, resp.Animations)
	s.Require().Len(resp.Slots, 1)
	s.Equal("torso", resp.Slots[0].Name)
	s.True(resp.Slots[0].BodyTyped)
	s.Require().NotNil(resp.Remote)
	s.Equal([]string{"torso"}, resp.Remote.EquipmentTypes)
}

func (s *HandlerTestSuite) TestListParameters() {
	s.mockCharacter.EXPECT().
		ListParameters(s.ctx, &character.ListParametersInput{Slot: "ears"}).
		Return(&character.ListParametersOutput{
			Parameters: map[string][]sprite.ParameterRecord{
				"ears": {{Slot: "ears", ID: "ears-pale", Variant: "pale", MatchBodyColor: true}},
			},
		}, nil)

	resp, err := s.handler.ListParameters(s.ctx, &v1alpha1.ListParametersRequest{Slot: "ears"})
	s.Require().NoError(err)
	s.Require().Len(resp.Parameters["ears"], 1)
	s.Equal(&v1alpha1.Parameter{ID: "ears-pale", Variant: "pale", MatchBodyColor: true}, resp.Parameters["ears"][0])
}

func (s *HandlerTestSuite) TestResolveConfiguration() {
	s.mockCharacter.EXPECT().
		ResolveConfiguration(s.ctx, &character.ResolveConfigurationInput{
			BodyType:   sprite.BodyTypeFemale,
			Selections: catalog.Selections{"torso": {"white"}},
		}).
		Return(&character.ResolveConfigurationOutput{Configuration: s.testConfig}, nil)

	resp, err := s.handler.ResolveConfiguration(s.ctx, &v1alpha1.ResolveConfigurationRequest{
		BodyType:   "female",
		Selections: map[string][]string{"torso": {"white"}},
	})
	s.Require().NoError(err)
	s.Equal("female", resp.Configuration.BodyType)
	s.Equal(s.testConfig.Equipment, resp.Configuration.Equipment)
}

func (s *HandlerTestSuite) TestResolveConfigurationRequiresBodyType() {
	_, err := s.handler.ResolveConfiguration(s.ctx, &v1alpha1.ResolveConfigurationRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestResolveConfigurationCarriesReason() {
	s.mockCharacter.EXPECT().
		ResolveConfiguration(s.ctx, gomock.Any()).
		Return(nil, catalog.UnsatisfiedDependency("shoulders", "torso"))

	_, err := s.handler.ResolveConfiguration(s.ctx, &v1alpha1.ResolveConfigurationRequest{
		BodyType:   "male",
		Selections: map[string][]string{"shoulders": {"leather"}},
	})
	s.Require().Error(err)
	s.Equal(codes.FailedPrecondition, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.True(catalog.IsUnsatisfiedDependency(converted))
	s.Equal("shoulders", catalog.SlotOf(converted))
	s.Equal("torso", errors.GetMetaString(converted, catalog.MetaParent))
}

func (s *HandlerTestSuite) TestRandomConfiguration() {
	s.mockCharacter.EXPECT().
		RandomConfiguration(s.ctx, &character.RandomConfigurationInput{
			BodyColor: "dark",
			Fixed:     catalog.Selections{"hair": {"plain", "black"}},
		}).
		Return(&character.RandomConfigurationOutput{
			Configuration: s.testConfig,
			Selections:    catalog.Selections{"torso": {"white"}},
			Attempts:      2,
			DroppedSlots:  []string{"ears"},
		}, nil)

	resp, err := s.handler.RandomConfiguration(s.ctx, &v1alpha1.RandomConfigurationRequest{
		BodyColor: "dark",
		Fixed:     map[string][]string{"hair": {"plain", "black"}},
	})
	s.Require().NoError(err)
	s.Equal(int32(2), resp.Attempts)
	s.Equal([]string{"ears"}, resp.DroppedSlots)
	s.Equal(map[string][]string{"torso": {"white"}}, resp.Selections)
}

func (s *HandlerTestSuite) TestGenerateSpritesheet() {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.mockCharacter.EXPECT().
		GenerateSpritesheet(s.ctx, &character.GenerateSpritesheetInput{
			Configuration: s.testConfig,
			TTL:           30 * time.Second,
		}).
		Return(&character.GenerateSpritesheetOutput{
			Spritesheet: &sprite.Spritesheet{
				ID:            "sheet_1",
				Configuration: s.testConfig,
				ImageData:     []byte("png"),
				MIMEType:      "image/png",
				Credits:       []sprite.Credit{{File: "torso.png", Authors: []string{"bluecarrot16"}}},
				CreatedAt:     now,
				ExpiresAt:     now.Add(30 * time.Second),
			},
		}, nil)

	resp, err := s.handler.GenerateSpritesheet(s.ctx, &v1alpha1.GenerateSpritesheetRequest{
		Configuration: &v1alpha1.Configuration{
			BodyType:  "female",
			BodyColor: "light",
			Equipment: s.testConfig.Equipment,
		},
		TTLSeconds: 30,
	})
	s.Require().NoError(err)
	s.Equal("sheet_1", resp.Spritesheet.ID)
	s.Equal([]byte("png"), resp.Spritesheet.ImageData)
	s.Require().Len(resp.Spritesheet.Credits, 1)
	s.Equal([]string{"bluecarrot16"}, resp.Spritesheet.Credits[0].Authors)
}

func (s *HandlerTestSuite) TestGenerateSpritesheetValidation() {
	_, err := s.handler.GenerateSpritesheet(s.ctx, &v1alpha1.GenerateSpritesheetRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.GenerateSpritesheet(s.ctx, &v1alpha1.GenerateSpritesheetRequest{
		Selection:  &v1alpha1.ResolveConfigurationRequest{BodyType: "male"},
		TTLSeconds: -1,
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetSpritesheetNotFound() {
	s.mockCharacter.EXPECT().
		GetSpritesheet(s.ctx, &character.GetSpritesheetInput{ID: "missing"}).
		Return(nil, errors.NotFound("spritesheet not found"))

	_, err := s.handler.GetSpritesheet(s.ctx, &v1alpha1.GetSpritesheetRequest{ID: "missing"})
	s.Equal(codes.NotFound, status.Code(err))

	_, err = s.handler.GetSpritesheet(s.ctx, &v1alpha1.GetSpritesheetRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestDeleteSpritesheet() {
	s.mockCharacter.EXPECT().
		DeleteSpritesheet(s.ctx, &character.DeleteSpritesheetInput{ID: "sheet_1"}).
		Return(&character.DeleteSpritesheetOutput{Deleted: true}, nil)

	resp, err := s.handler.DeleteSpritesheet(s.ctx, &v1alpha1.DeleteSpritesheetRequest{ID: "sheet_1"})
	s.Require().NoError(err)
	s.True(resp.Deleted)
}

// The remaining tests exercise the JSON codec and service descriptor over a
// real gRPC connection.

func (s *HandlerTestSuite) dialHandler() v1alpha1.SpriteServiceClient {
	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterSpriteServiceServer(server, s.handler)
	go func() {
		_ = server.Serve(listener)
	}()
	s.T().Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	return v1alpha1.NewSpriteServiceClient(conn)
}

func (s *HandlerTestSuite) TestClientRoundTrip() {
	client := s.dialHandler()

	s.mockCharacter.EXPECT().
		ResolveConfiguration(gomock.Any(), &character.ResolveConfigurationInput{
			BodyType:   sprite.BodyTypeFemale,
			Selections: catalog.Selections{"torso": {"white"}},
		}).
		Return(&character.ResolveConfigurationOutput{Configuration: s.testConfig}, nil)

	resp, err := client.ResolveConfiguration(s.ctx, &v1alpha1.ResolveConfigurationRequest{
		BodyType:   "female",
		Selections: map[string][]string{"torso": {"white"}},
	})
	s.Require().NoError(err)
	s.Equal(s.testConfig.Equipment, resp.Configuration.Equipment)
}

func (s *HandlerTestSuite) TestClientReceivesStructuredErrors() {
	client := s.dialHandler()

	s.mockCharacter.EXPECT().
		ResolveConfiguration(gomock.Any(), gomock.Any()).
		Return(nil, catalog.ColorMismatch("ears", "bronze", "light"))

	_, err := client.ResolveConfiguration(s.ctx, &v1alpha1.ResolveConfigurationRequest{
		BodyType:   "male",
		Selections: map[string][]string{"ears": {"bronze"}},
	})
	s.Require().Error(err)

	converted := errors.FromGRPCError(err)
	s.True(catalog.IsColorMismatch(converted))
	s.Equal("ears", catalog.SlotOf(converted))
	s.Equal("bronze", errors.GetMetaString(converted, catalog.MetaKey))
}

func (s *HandlerTestSuite) TestClientSpritesheetImageSurvivesCodec() {
	client := s.dialHandler()
	image := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

	s.mockCharacter.EXPECT().
		GetSpritesheet(gomock.Any(), &character.GetSpritesheetInput{ID: "sheet_1"}).
		Return(&character.GetSpritesheetOutput{
			Spritesheet: &sprite.Spritesheet{ID: "sheet_1", ImageData: image, MIMEType: "image/png"},
		}, nil)

	resp, err := client.GetSpritesheet(s.ctx, &v1alpha1.GetSpritesheetRequest{ID: "sheet_1"})
	s.Require().NoError(err)
	s.Equal(image, resp.Spritesheet.ImageData)
}
