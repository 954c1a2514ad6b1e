// Package compositor is the HTTP client for the external service that turns
// a resolved configuration into a spritesheet image.
package compositor

//go:generate mockgen -destination=mock/mock_client.go -package=compositormock github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/clients/compositor Client

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/entities/sprite"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
)

const (
	generatePath = "/api/generate"
	optionsPath  = "/api/options"
	healthPath   = "/health"

	// maxErrorBody caps how much of an error response ends up in messages
	maxErrorBody = 4096
)

// Client defines the interface for compositing service interactions
type Client interface {
	// Generate composites the configuration into a spritesheet
	Generate(ctx context.Context, config *sprite.Configuration) (*GenerateResult, error)

	// Options returns the service's own listing of selectable options
	Options(ctx context.Context) (*Options, error)

	// Health reports whether the service answers its health check
	Health(ctx context.Context) error
}

// Config contains configuration options for the compositor client.
type Config struct {
	// BaseURL of the compositing service (optional, defaults to http://localhost:3000)
	BaseURL string
	// HTTPTimeout for requests (optional, defaults to 60 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for generated results (optional, defaults to 10 minutes)
	CacheTTL time.Duration
	// CacheSize bounds the number of cached results (optional, defaults to 128)
	CacheSize int
	// DisableCache skips the result cache entirely
	DisableCache bool
	// HTTPClient overrides the default client (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = 128
	}

	vb := errors.NewValidationBuilder()
	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		vb.Fieldf("base_url", "must be an absolute URL, got %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("http_timeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.Field("cache_ttl", "must not be negative")
	}
	if cfg.CacheSize < 0 {
		vb.Field("cache_size", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new compositor client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	base := &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
	if cfg.DisableCache {
		return base, nil
	}

	return NewCachedClient(base, cfg.CacheTTL, cfg.CacheSize), nil
}

func (c *client) Generate(ctx context.Context, config *sprite.Configuration) (*GenerateResult, error) {
	if config == nil {
		return nil, errors.InvalidArgument("configuration is required")
	}

	var resp generateResponse
	if err := c.do(ctx, http.MethodPost, generatePath, config, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to generate spritesheet")
	}

	image, mimeType, err := decodeDataURL(resp.ImageData)
	if err != nil {
		return nil, err
	}

	slog.Debug("Compositor generated spritesheet",
		"body_type", config.BodyType,
		"slots", len(config.Equipment),
		"bytes", len(image),
		"credits", len(resp.Metadata.Credits),
	)

	return &GenerateResult{
		ImageData: image,
		MIMEType:  mimeType,
		Credits:   resp.Metadata.Credits,
	}, nil
}

func (c *client) Options(ctx context.Context) (*Options, error) {
	var options Options
	if err := c.do(ctx, http.MethodGet, optionsPath, nil, &options); err != nil {
		return nil, errors.Wrap(err, "failed to list compositor options")
	}
	return &options, nil
}

func (c *client) Health(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, healthPath, nil, nil); err != nil {
		return errors.Wrap(err, "compositor health check failed")
	}
	return nil
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "compositor request cancelled")
		}
		return errors.WrapWithCode(err, errors.CodeUnavailable, "compositor unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.Newf(errors.CodeFromHTTPStatus(resp.StatusCode),
			"compositor returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))).
			WithMeta("status", resp.StatusCode).
			WithMeta("path", path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", path)
	}
	return nil
}

// decodeDataURL decodes "data:<mime>;base64,<payload>". A bare base64
// payload is accepted and assumed to be PNG.
func decodeDataURL(s string) ([]byte, string, error) {
	if s == "" {
		return nil, "", errors.Internal("compositor returned no image data")
	}

	mimeType := sprite.DefaultImageMIMEType
	payload := s
	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		header, data, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", errors.Internal("image data URL has no payload")
		}
		params := strings.Split(header, ";")
		if params[len(params)-1] != "base64" {
			return nil, "", errors.Internalf("image data URL is not base64 encoded: %q", header)
		}
		if params[0] != "" && params[0] != "base64" {
			mimeType = params[0]
		}
		payload = data
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to decode image data")
	}

	return image, mimeType, nil
}
