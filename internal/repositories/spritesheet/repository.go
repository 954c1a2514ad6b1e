// Package spritesheet provides storage for generated spritesheets
package spritesheet

import (
	"context"
	"time"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=spritesheetmock github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/repositories/spritesheet Repository

// CreateInput contains parameters for storing a spritesheet
type CreateInput struct {
	Spritesheet *sprite.Spritesheet
	TTL         time.Duration // How long the spritesheet should be kept
}

// CreateOutput contains the stored spritesheet with its timestamps set
type CreateOutput struct {
	Spritesheet *sprite.Spritesheet
}

// GetInput contains parameters for retrieving a spritesheet
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved spritesheet
type GetOutput struct {
	Spritesheet *sprite.Spritesheet
}

// DeleteInput contains parameters for deleting a spritesheet
type DeleteInput struct {
	ID string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for spritesheet storage operations
type Repository interface {
	// Create stores a spritesheet with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a spritesheet by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a spritesheet
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
