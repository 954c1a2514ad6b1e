package v1alpha1

import "time"

// Slot describes one selectable equipment slot
type Slot struct {
	Name       string   `json:"name"`
	Variants   []string `json:"variants"`
	BodyTyped  bool     `json:"bodyTyped"`
	Animations []string `json:"animations"`
}

// RemoteOptions is the compositing service's own option listing
type RemoteOptions struct {
	BodyTypes         []string            `json:"bodyTypes"`
	Animations        []string            `json:"animations"`
	EquipmentTypes    []string            `json:"equipmentTypes"`
	EquipmentVariants map[string][]string `json:"equipmentVariants"`
}

// Parameter is one selectable option of a slot
type Parameter struct {
	ID                  string   `json:"id"`
	ParentName          string   `json:"parentName,omitempty"`
	Variant             string   `json:"variant,omitempty"`
	Value               string   `json:"value,omitempty"`
	MatchBodyColor      bool     `json:"matchBodyColor"`
	SupportedAnimations []string `json:"supportedAnimations"`
}

// Configuration is a resolved character configuration
type Configuration struct {
	BodyType   string            `json:"bodyType"`
	BodyColor  string            `json:"bodyColor"`
	Animations []string          `json:"animations,omitempty"`
	Equipment  map[string]string `json:"equipment"`
}

// Credit attributes one asset of a spritesheet
type Credit struct {
	File     string   `json:"file"`
	Authors  []string `json:"authors"`
	Licenses []string `json:"licenses"`
	URLs     []string `json:"urls"`
}

// Spritesheet is a stored composited image
type Spritesheet struct {
	ID            string         `json:"id"`
	Configuration *Configuration `json:"configuration"`
	ImageData     []byte         `json:"imageData"`
	MIMEType      string         `json:"mimeType"`
	Credits       []*Credit      `json:"credits,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	ExpiresAt     time.Time      `json:"expiresAt"`
}

type ListOptionsRequest struct {
	IncludeRemote bool `json:"includeRemote,omitempty"`
}

type ListOptionsResponse struct {
	BodyTypes  []string       `json:"bodyTypes"`
	Animations []string       `json:"animations"`
	Slots      []*Slot        `json:"slots"`
	Remote     *RemoteOptions `json:"remote,omitempty"`
}

type ListParametersRequest struct {
	Slot string `json:"slot,omitempty"`
}

type ListParametersResponse struct {
	Parameters map[string][]*Parameter `json:"parameters"`
}

type ResolveConfigurationRequest struct {
	BodyType   string              `json:"bodyType"`
	BodyColor  string              `json:"bodyColor,omitempty"`
	Animations []string            `json:"animations,omitempty"`
	Selections map[string][]string `json:"selections"`
}

type ResolveConfigurationResponse struct {
	Configuration *Configuration `json:"configuration"`
}

type RandomConfigurationRequest struct {
	BodyType   string              `json:"bodyType,omitempty"`
	BodyColor  string              `json:"bodyColor,omitempty"`
	Animations []string            `json:"animations,omitempty"`
	Fixed      map[string][]string `json:"fixed,omitempty"`
}

type RandomConfigurationResponse struct {
	Configuration *Configuration      `json:"configuration"`
	Selections    map[string][]string `json:"selections"`
	Attempts      int32               `json:"attempts"`
	DroppedSlots  []string            `json:"droppedSlots,omitempty"`
}

// GenerateSpritesheetRequest carries either a resolved configuration or
// selections to resolve first.
type GenerateSpritesheetRequest struct {
	Configuration *Configuration               `json:"configuration,omitempty"`
	Selection     *ResolveConfigurationRequest `json:"selection,omitempty"`
	TTLSeconds    int64                        `json:"ttlSeconds,omitempty"`
}

type GenerateSpritesheetResponse struct {
	Spritesheet *Spritesheet `json:"spritesheet"`
}

type GetSpritesheetRequest struct {
	ID string `json:"id"`
}

type GetSpritesheetResponse struct {
	Spritesheet *Spritesheet `json:"spritesheet"`
}

type DeleteSpritesheetRequest struct {
	ID string `json:"id"`
}

type DeleteSpritesheetResponse struct {
	Deleted bool `json:"deleted"`
}
