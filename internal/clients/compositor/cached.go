package compositor

import (
	"context"
	"log/slog"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"github.com/goccy/go-json"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
)

const optionsCacheKey = "options"

// cachedClient remembers generated spritesheets per configuration and the
// service's option listing. Cached results are shared between callers and
// must be treated as read-only.
type cachedClient struct {
	Client
	generated cache.Cache[string, *GenerateResult]
	options   cache.Cache[string, *Options]
}

// NewCachedClient wraps base with an expiring LRU cache
func NewCachedClient(base Client, ttl time.Duration, size int) Client {
	return &cachedClient{
		Client:    base,
		generated: cache.NewCache[string, *GenerateResult]().WithTTL(ttl).WithMaxKeys(size).WithLRU(),
		options:   cache.NewCache[string, *Options]().WithTTL(ttl),
	}
}

func (c *cachedClient) Generate(ctx context.Context, config *sprite.Configuration) (*GenerateResult, error) {
	key, err := json.Marshal(config)
	if err != nil {
		return c.Client.Generate(ctx, config)
	}

	if result, ok := c.generated.Get(string(key)); ok {
		slog.Debug("Compositor cache hit", "body_type", config.BodyType)
		return result, nil
	}

	result, err := c.Client.Generate(ctx, config)
	if err != nil {
		return nil, err
	}
	c.generated.Set(string(key), result, 0)

	return result, nil
}

func (c *cachedClient) Options(ctx context.Context) (*Options, error) {
	if options, ok := c.options.Get(optionsCacheKey); ok {
		return options, nil
	}

	options, err := c.Client.Options(ctx)
	if err != nil {
		return nil, err
	}
	c.options.Set(optionsCacheKey, options, 0)

	return options, nil
}
