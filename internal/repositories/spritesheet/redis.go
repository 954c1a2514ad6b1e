package spritesheet

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	redis "github.com/redis/go-redis/v9"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/pkg/clock"
	redisclient "github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/redis"
)

const (
	// Key pattern: spritesheet:{id}
	keyPrefix  = "spritesheet:"
	defaultTTL = time.Hour

	errSpritesheetNil = "spritesheet cannot be nil"
	errIDEmpty        = "spritesheet ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for spritesheets
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a spritesheet, stamping CreatedAt and ExpiresAt
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Spritesheet == nil {
		return nil, errors.InvalidArgument(errSpritesheetNil)
	}
	if input.Spritesheet.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	sheet := *input.Spritesheet
	sheet.CreatedAt = now
	sheet.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(&sheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spritesheet")
	}

	// IDs are unique; an existing sheet is never overwritten
	created, err := r.client.SetNX(ctx, buildKey(sheet.ID), data, ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store spritesheet in Redis")
	}
	if !created {
		return nil, errors.Newf(errors.CodeAlreadyExists, "spritesheet %s already exists", sheet.ID).
			WithMeta("id", sheet.ID)
	}

	return &CreateOutput{
		Spritesheet: &sheet,
	}, nil
}

// Get retrieves a spritesheet by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := buildKey(input.ID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("spritesheet %s not found", input.ID).WithMeta("id", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get spritesheet from Redis")
	}

	var sheet sprite.Spritesheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal spritesheet")
	}

	// The stored deadline wins over the Redis TTL
	if r.clock.Now().After(sheet.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("spritesheet %s has expired", input.ID).WithMeta("id", input.ID)
	}

	return &GetOutput{
		Spritesheet: &sheet,
	}, nil
}

// Delete removes a spritesheet
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete spritesheet from Redis")
	}

	return &DeleteOutput{
		Deleted: removed > 0,
	}, nil
}

func buildKey(id string) string {
	return keyPrefix + id
}
