// Package sprite contains the value types shared between the catalog,
// the orchestrator and the transport layers.
package sprite

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// ParameterRecord is one selectable option surfaced to a user. Many records
// share a slot name; records are immutable once the catalog is built.
type ParameterRecord struct {
	Slot                string   `json:"-"`
	ID                  string   `json:"id"`
	ParentName          string   `json:"parentName,omitempty"`
	Variant             string   `json:"variant,omitempty"`
	Value               string   `json:"value,omitempty"`
	MatchBodyColor      bool     `json:"matchBodyColor"`
	SupportedAnimations []string `json:"supportedAnimations"`
}

// Key returns the tree key the record was registered under
func (p ParameterRecord) Key() string {
	if p.Variant != "" {
		return p.Variant
	}
	return p.Value
}

// HasParent reports whether the record depends on another slot
func (p ParameterRecord) HasParent() bool {
	return p.ParentName != "" && p.ParentName != p.Slot
}

// Configuration is a resolved, validated character configuration ready to be
// handed to the compositor. Equipment maps slot name to a terminal asset path;
// slots that are not equipped are absent.
type Configuration struct {
	BodyType   BodyType          `json:"bodyType"`
	BodyColor  string            `json:"bodyColor"`
	Animations []string          `json:"animations,omitempty"`
	Equipment  map[string]string `json:"equipment"`
}

// Credit attributes one asset used in a generated spritesheet
type Credit struct {
	File     string   `json:"file"`
	Authors  []string `json:"authors"`
	Licenses []string `json:"licenses"`
	URLs     []string `json:"urls"`
}

// Spritesheet is a composited image produced for a configuration
type Spritesheet struct {
	ID            string         `json:"id"`
	Configuration *Configuration `json:"configuration"`
	ImageData     []byte         `json:"image_data"`
	MIMEType      string         `json:"mime_type"`
	Credits       []Credit       `json:"credits,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	ExpiresAt     time.Time      `json:"expires_at"`
}

// GetID returns the spritesheet ID
func (s *Spritesheet) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *Spritesheet) GetType() string {
	return "spritesheet"
}

// Compile-time check that Spritesheet is an rpg-toolkit entity
var _ core.Entity = (*Spritesheet)(nil)
