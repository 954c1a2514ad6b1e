package compositor

import (
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
)

// GenerateResult is a composited spritesheet returned by the service
type GenerateResult struct {
	ImageData []byte
	MIMEType  string
	Credits   []sprite.Credit
}

// Options is the option listing published by the compositing service
type Options struct {
	BodyTypes  []string         `json:"bodyTypes"`
	Animations []string         `json:"animations"`
	Equipment  EquipmentOptions `json:"equipment"`
}

// EquipmentOptions lists equipment types and the variants of each
type EquipmentOptions struct {
	Types    []string            `json:"types"`
	Variants map[string][]string `json:"variants"`
}

type generateResponse struct {
	ImageData string `json:"imageData"`
	Metadata  struct {
		Credits []sprite.Credit `json:"credits"`
	} `json:"metadata"`
}
