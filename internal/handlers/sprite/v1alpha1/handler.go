// Package v1alpha1 handles the grpc service interface
package v1alpha1

import (
	"context"
	"time"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/orchestrators/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the sprite gRPC service
type Handler struct {
	characterService character.Service
}

var _ SpriteServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

// ListOptions lists body types, animations and slots
func (h *Handler) ListOptions(
	ctx context.Context,
	req *ListOptionsRequest,
) (*ListOptionsResponse, error) {
	output, err := h.characterService.ListOptions(ctx, &character.ListOptionsInput{
		IncludeRemote: req.IncludeRemote,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ListOptionsResponse{
		BodyTypes:  make([]string, 0, len(output.BodyTypes)),
		Animations: output.Animations,
		Slots:      make([]*Slot, 0, len(output.Slots)),
	}
	for _, bodyType := range output.BodyTypes {
		resp.BodyTypes = append(resp.BodyTypes, string(bodyType))
	}
	for _, slot := range output.Slots {
		resp.Slots = append(resp.Slots, &Slot{
			Name:       slot.Name,
			Variants:   slot.Variants,
			BodyTyped:  slot.BodyTyped,
			Animations: slot.Animations,
		})
	}
	if output.Remote != nil {
		resp.Remote = &RemoteOptions{
			BodyTypes:         output.Remote.BodyTypes,
			Animations:        output.Remote.Animations,
			EquipmentTypes:    output.Remote.Equipment.Types,
			EquipmentVariants: output.Remote.Equipment.Variants,
		}
	}

	return resp, nil
}

// ListParameters lists parameter records, optionally for a single slot
func (h *Handler) ListParameters(
	ctx context.Context,
	req *ListParametersRequest,
) (*ListParametersResponse, error) {
	output, err := h.characterService.ListParameters(ctx, &character.ListParametersInput{
		Slot: req.Slot,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ListParametersResponse{
		Parameters: make(map[string][]*Parameter, len(output.Parameters)),
	}
	for slot, records := range output.Parameters {
		params := make([]*Parameter, len(records))
		for i, record := range records {
			params[i] = convertParameterToProto(record)
		}
		resp.Parameters[slot] = params
	}

	return resp, nil
}

// ResolveConfiguration validates selections and returns asset paths
func (h *Handler) ResolveConfiguration(
	ctx context.Context,
	req *ResolveConfigurationRequest,
) (*ResolveConfigurationResponse, error) {
	if req.BodyType == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("body_type is required"))
	}

	output, err := h.characterService.ResolveConfiguration(ctx, convertResolveRequest(req))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ResolveConfigurationResponse{
		Configuration: convertConfigurationToProto(output.Configuration),
	}, nil
}

// RandomConfiguration samples a valid random configuration
func (h *Handler) RandomConfiguration(
	ctx context.Context,
	req *RandomConfigurationRequest,
) (*RandomConfigurationResponse, error) {
	output, err := h.characterService.RandomConfiguration(ctx, &character.RandomConfigurationInput{
		BodyType:   sprite.BodyType(req.BodyType),
		BodyColor:  req.BodyColor,
		Animations: req.Animations,
		Fixed:      catalog.Selections(req.Fixed),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RandomConfigurationResponse{
		Configuration: convertConfigurationToProto(output.Configuration),
		Selections:    output.Selections,
		Attempts:      int32(output.Attempts),
		DroppedSlots:  output.DroppedSlots,
	}, nil
}

// GenerateSpritesheet composites and stores a spritesheet
func (h *Handler) GenerateSpritesheet(
	ctx context.Context,
	req *GenerateSpritesheetRequest,
) (*GenerateSpritesheetResponse, error) {
	if req.Configuration == nil && req.Selection == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("configuration or selection is required"))
	}
	if req.TTLSeconds < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("ttl_seconds must not be negative"))
	}

	input := &character.GenerateSpritesheetInput{
		TTL: time.Duration(req.TTLSeconds) * time.Second,
	}
	if req.Configuration != nil {
		input.Configuration = convertConfigurationFromProto(req.Configuration)
	}
	if req.Selection != nil {
		input.Resolve = convertResolveRequest(req.Selection)
	}

	output, err := h.characterService.GenerateSpritesheet(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GenerateSpritesheetResponse{
		Spritesheet: convertSpritesheetToProto(output.Spritesheet),
	}, nil
}

// GetSpritesheet loads a stored spritesheet
func (h *Handler) GetSpritesheet(
	ctx context.Context,
	req *GetSpritesheetRequest,
) (*GetSpritesheetResponse, error) {
	if req.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	output, err := h.characterService.GetSpritesheet(ctx, &character.GetSpritesheetInput{
		ID: req.ID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetSpritesheetResponse{
		Spritesheet: convertSpritesheetToProto(output.Spritesheet),
	}, nil
}

// DeleteSpritesheet removes a stored spritesheet
func (h *Handler) DeleteSpritesheet(
	ctx context.Context,
	req *DeleteSpritesheetRequest,
) (*DeleteSpritesheetResponse, error) {
	if req.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	output, err := h.characterService.DeleteSpritesheet(ctx, &character.DeleteSpritesheetInput{
		ID: req.ID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteSpritesheetResponse{
		Deleted: output.Deleted,
	}, nil
}
