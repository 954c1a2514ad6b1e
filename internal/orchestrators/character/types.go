package character

import (
	"time"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/clients/compositor"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
)

// SlotOption describes one slot for option listings
type SlotOption struct {
	Name       string
	Variants   []string
	BodyTyped  bool
	Animations []string
}

// ListOptionsInput defines the request for listing options
type ListOptionsInput struct {
	// IncludeRemote also fetches the compositing service's own listing
	IncludeRemote bool
}

// ListOptionsOutput defines the response for listing options
type ListOptionsOutput struct {
	BodyTypes  []sprite.BodyType
	Animations []string
	Slots      []SlotOption
	Remote     *compositor.Options
}

// ListParametersInput defines the request for listing parameter records
type ListParametersInput struct {
	Slot string // optional; all slots when empty
}

// ListParametersOutput defines the response for listing parameter records
type ListParametersOutput struct {
	Parameters map[string][]sprite.ParameterRecord
}

// ResolveConfigurationInput defines the request for resolving selections
type ResolveConfigurationInput struct {
	BodyType   sprite.BodyType
	BodyColor  string
	Animations []string
	Selections catalog.Selections
}

// ResolveConfigurationOutput defines the response for resolving selections
type ResolveConfigurationOutput struct {
	Configuration *sprite.Configuration
}

// RandomConfigurationInput defines the request for a random configuration
type RandomConfigurationInput struct {
	BodyType   sprite.BodyType // optional; sampled when empty
	BodyColor  string
	Animations []string
	// Fixed selections are kept as given and never dropped
	Fixed catalog.Selections
}

// RandomConfigurationOutput defines the response for a random configuration
type RandomConfigurationOutput struct {
	Configuration *sprite.Configuration
	Selections    catalog.Selections
	Attempts      int
	DroppedSlots  []string
}

// GenerateSpritesheetInput defines the request for generating a spritesheet.
// Exactly one of Configuration or Resolve must be set.
type GenerateSpritesheetInput struct {
	Configuration *sprite.Configuration
	Resolve       *ResolveConfigurationInput
	TTL           time.Duration
}

// GenerateSpritesheetOutput defines the response for generating a spritesheet
type GenerateSpritesheetOutput struct {
	Spritesheet *sprite.Spritesheet
}

// GetSpritesheetInput defines the request for loading a spritesheet
type GetSpritesheetInput struct {
	ID string
}

// GetSpritesheetOutput defines the response for loading a spritesheet
type GetSpritesheetOutput struct {
	Spritesheet *sprite.Spritesheet
}

// DeleteSpritesheetInput defines the request for deleting a spritesheet
type DeleteSpritesheetInput struct {
	ID string
}

// DeleteSpritesheetOutput defines the response for deleting a spritesheet
type DeleteSpritesheetOutput struct {
	Deleted bool
}
