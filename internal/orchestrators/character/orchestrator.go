// Package character implements the orchestrator that turns option
// selections into validated character configurations and spritesheets.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/orchestrators/character Service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/clients/compositor"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/pkg/idgen"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/repositories/spritesheet"
)

const (
	// DefaultSpritesheetTTL is how long generated spritesheets are kept
	DefaultSpritesheetTTL = time.Hour

	// DefaultMaxAttempts is how many times a random configuration is
	// re-sampled before offending slots are dropped
	DefaultMaxAttempts = 10
)

// Service defines the interface for character sprite operations
type Service interface {
	// Catalog browsing
	ListOptions(ctx context.Context, input *ListOptionsInput) (*ListOptionsOutput, error)
	ListParameters(ctx context.Context, input *ListParametersInput) (*ListParametersOutput, error)

	// Configuration building
	ResolveConfiguration(ctx context.Context, input *ResolveConfigurationInput) (*ResolveConfigurationOutput, error)
	RandomConfiguration(ctx context.Context, input *RandomConfigurationInput) (*RandomConfigurationOutput, error)

	// Spritesheet lifecycle
	GenerateSpritesheet(ctx context.Context, input *GenerateSpritesheetInput) (*GenerateSpritesheetOutput, error)
	GetSpritesheet(ctx context.Context, input *GetSpritesheetInput) (*GetSpritesheetOutput, error)
	DeleteSpritesheet(ctx context.Context, input *DeleteSpritesheetInput) (*DeleteSpritesheetOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	Catalog         *catalog.Catalog
	Compositor      compositor.Client
	SpritesheetRepo spritesheet.Repository
	IDGenerator     idgen.Generator
	Roller          dice.Roller
	SpritesheetTTL  time.Duration
	MaxAttempts     int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Compositor == nil {
		vb.RequiredField("Compositor")
	}
	if c.SpritesheetRepo == nil {
		vb.RequiredField("SpritesheetRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.SpritesheetTTL < 0 {
		vb.Field("SpritesheetTTL", "must not be negative")
	}
	if c.MaxAttempts < 0 {
		vb.Field("MaxAttempts", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog         *catalog.Catalog
	compositor      compositor.Client
	spritesheetRepo spritesheet.Repository
	idGen           idgen.Generator
	roller          dice.Roller
	spritesheetTTL  time.Duration
	maxAttempts     int
}

// NewOrchestrator creates a new character orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.SpritesheetTTL
	if ttl == 0 {
		ttl = DefaultSpritesheetTTL
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &orchestrator{
		catalog:         cfg.Catalog,
		compositor:      cfg.Compositor,
		spritesheetRepo: cfg.SpritesheetRepo,
		idGen:           cfg.IDGenerator,
		roller:          cfg.Roller,
		spritesheetTTL:  ttl,
		maxAttempts:     maxAttempts,
	}, nil
}

func (o *orchestrator) ListOptions(ctx context.Context, input *ListOptionsInput) (*ListOptionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	names := o.catalog.SlotNames()
	slots := make([]SlotOption, 0, len(names))
	for _, name := range names {
		slot, _ := o.catalog.Slot(name)
		slots = append(slots, SlotOption{
			Name:       name,
			Variants:   slot.Root().Keys(),
			BodyTyped:  slot.IsBodyTyped(),
			Animations: slot.Animations(),
		})
	}

	output := &ListOptionsOutput{
		BodyTypes:  o.catalog.BodyTypes(),
		Animations: o.catalog.Animations(),
		Slots:      slots,
	}

	if input.IncludeRemote {
		remote, err := o.compositor.Options(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list compositor options")
		}
		output.Remote = remote
	}

	return output, nil
}

func (o *orchestrator) ListParameters(_ context.Context, input *ListParametersInput) (*ListParametersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Slot == "" {
		return &ListParametersOutput{
			Parameters: catalog.BuildParameterIndex(o.catalog),
		}, nil
	}

	if _, ok := o.catalog.Slot(input.Slot); !ok {
		return nil, errors.NotFoundf("slot %s not found", input.Slot).WithMeta(catalog.MetaSlot, input.Slot)
	}

	return &ListParametersOutput{
		Parameters: map[string][]sprite.ParameterRecord{
			input.Slot: o.catalog.Parameters(input.Slot),
		},
	}, nil
}

func (o *orchestrator) ResolveConfiguration(_ context.Context, input *ResolveConfigurationInput) (*ResolveConfigurationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	config, err := catalog.Resolve(o.catalog, &catalog.ResolveInput{
		BodyType:   input.BodyType,
		BodyColor:  input.BodyColor,
		Animations: input.Animations,
		Selections: input.Selections,
	})
	if err != nil {
		return nil, err
	}

	return &ResolveConfigurationOutput{
		Configuration: config,
	}, nil
}

// RandomConfiguration samples until the catalog accepts a configuration.
// Constraint violations trigger a fresh sample; once MaxAttempts samples have
// failed, every further failure drops the offending slot so the loop always
// terminates. Fixed selections are never dropped.
func (o *orchestrator) RandomConfiguration(ctx context.Context, input *RandomConfigurationInput) (*RandomConfigurationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BodyType != "" && !input.BodyType.IsValid() {
		return nil, errors.InvalidArgumentf("invalid body type %q", input.BodyType)
	}

	var dropped []string
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "random configuration cancelled")
		}

		sample, err := catalog.SampleRandom(o.catalog, o.roller)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sample configuration")
		}

		selections := sample.Selections
		for _, slot := range dropped {
			delete(selections, slot)
		}
		for slot, path := range input.Fixed {
			selections[slot] = path
		}

		bodyType := sample.BodyType
		if input.BodyType != "" {
			bodyType = input.BodyType
		}

		config, err := catalog.Resolve(o.catalog, &catalog.ResolveInput{
			BodyType:   bodyType,
			BodyColor:  input.BodyColor,
			Animations: input.Animations,
			Selections: selections,
		})
		if err == nil {
			slog.Info("Random configuration resolved",
				"attempts", attempt,
				"body_type", bodyType,
				"slots", len(config.Equipment),
				"dropped", len(dropped),
			)
			return &RandomConfigurationOutput{
				Configuration: config,
				Selections:    selections,
				Attempts:      attempt,
				DroppedSlots:  dropped,
			}, nil
		}

		if !catalog.IsConstraintViolation(err) {
			return nil, err
		}

		slot := catalog.SlotOf(err)
		if attempt < o.maxAttempts {
			continue
		}
		if _, fixed := input.Fixed[slot]; fixed || slot == "" || slices.Contains(dropped, slot) {
			return nil, errors.Wrapf(err, "no valid random configuration after %d attempts", attempt)
		}

		slog.Warn("Dropping slot from random configuration",
			"slot", slot,
			"reason", catalog.Reason(err),
			"attempts", attempt,
		)
		dropped = append(dropped, slot)
	}
}

func (o *orchestrator) GenerateSpritesheet(ctx context.Context, input *GenerateSpritesheetInput) (*GenerateSpritesheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if (input.Configuration == nil) == (input.Resolve == nil) {
		return nil, errors.InvalidArgument("exactly one of configuration or resolve must be set")
	}

	var config *sprite.Configuration
	if input.Resolve != nil {
		resolved, err := o.ResolveConfiguration(ctx, input.Resolve)
		if err != nil {
			return nil, err
		}
		config = resolved.Configuration
	} else {
		verified, err := catalog.Verify(o.catalog, input.Configuration)
		if err != nil {
			return nil, err
		}
		config = verified
	}

	if err := o.compositor.Health(ctx); err != nil {
		return nil, errors.Wrap(err, "compositor is not available")
	}

	result, err := o.compositor.Generate(ctx, config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate spritesheet")
	}

	mimeType := result.MIMEType
	if mimeType == "" {
		mimeType = sprite.DefaultImageMIMEType
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = o.spritesheetTTL
	}

	created, err := o.spritesheetRepo.Create(ctx, spritesheet.CreateInput{
		Spritesheet: &sprite.Spritesheet{
			ID:            o.idGen.Generate(),
			Configuration: config,
			ImageData:     result.ImageData,
			MIMEType:      mimeType,
			Credits:       result.Credits,
		},
		TTL: ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store spritesheet")
	}

	slog.Info("Generated spritesheet",
		"id", created.Spritesheet.ID,
		"body_type", config.BodyType,
		"slots", len(config.Equipment),
		"bytes", len(result.ImageData),
		"credits", len(result.Credits),
	)

	return &GenerateSpritesheetOutput{
		Spritesheet: created.Spritesheet,
	}, nil
}

func (o *orchestrator) GetSpritesheet(ctx context.Context, input *GetSpritesheetInput) (*GetSpritesheetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("spritesheet ID is required")
	}

	out, err := o.spritesheetRepo.Get(ctx, spritesheet.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spritesheet %s", input.ID)
	}

	return &GetSpritesheetOutput{
		Spritesheet: out.Spritesheet,
	}, nil
}

func (o *orchestrator) DeleteSpritesheet(ctx context.Context, input *DeleteSpritesheetInput) (*DeleteSpritesheetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("spritesheet ID is required")
	}

	out, err := o.spritesheetRepo.Delete(ctx, spritesheet.DeleteInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete spritesheet %s", input.ID)
	}

	return &DeleteSpritesheetOutput{
		Deleted: out.Deleted,
	}, nil
}
