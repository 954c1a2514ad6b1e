// Package config loads the service configuration from YAML
package config

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the full service configuration
type Config struct {
	Sources     SourcesConfig     `yaml:"sources"`
	Server      ServerConfig      `yaml:"server"`
	Redis       RedisConfig       `yaml:"redis"`
	Compositor  CompositorConfig  `yaml:"compositor"`
	Spritesheet SpritesheetConfig `yaml:"spritesheet"`
	Log         LogConfig         `yaml:"log"`
}

// SourcesConfig locates the definition records and the options document
type SourcesConfig struct {
	DefinitionsDir     string `yaml:"definitions_dir"`
	DefinitionsPattern string `yaml:"definitions_pattern"`
	Document           string `yaml:"document"`
}

// ServerConfig configures the gRPC listener
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// RedisConfig configures spritesheet storage
type RedisConfig struct {
	Endpoints []string `yaml:"endpoints"`
	Password  string   `yaml:"password"`
	DB        int      `yaml:"db"`
	PoolSize  int      `yaml:"pool_size"`
	UseTLS    bool     `yaml:"use_tls"`
}

// CompositorConfig configures the image compositing service client
type CompositorConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
	CacheSize    int           `yaml:"cache_size"`
	DisableCache bool          `yaml:"disable_cache"`
}

// SpritesheetConfig configures generation and retention
type SpritesheetConfig struct {
	TTL         time.Duration `yaml:"ttl"`
	MaxAttempts int           `yaml:"max_attempts"`
	IDPrefix    string        `yaml:"id_prefix"`
}

// LogConfig configures structured logging
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Sources: SourcesConfig{
			DefinitionsDir:     "sheet_definitions",
			DefinitionsPattern: "**/*.json",
			Document:           "index.html",
		},
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
		},
		Redis: RedisConfig{
			Endpoints: []string{"localhost:6379"},
		},
		Compositor: CompositorConfig{
			BaseURL:   "http://localhost:3000",
			Timeout:   60 * time.Second,
			CacheTTL:  10 * time.Minute,
			CacheSize: 128,
		},
		Spritesheet: SpritesheetConfig{
			TTL:         time.Hour,
			MaxAttempts: 10,
			IDPrefix:    "sheet",
		},
		Log: LogConfig{
			Level:      "info",
			Format:     LogFormatText,
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config file %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid config yaml")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Sources.DefinitionsDir == "" {
		vb.RequiredField("sources.definitions_dir")
	}
	if c.Sources.Document == "" {
		vb.RequiredField("sources.document")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		vb.Fieldf("server.port", "must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		vb.Field("server.shutdown_timeout", "must be positive")
	}

	if len(c.Redis.Endpoints) == 0 {
		vb.RequiredField("redis.endpoints")
	}

	if c.Compositor.BaseURL == "" {
		vb.RequiredField("compositor.base_url")
	}
	if c.Compositor.Timeout <= 0 {
		vb.Field("compositor.timeout", "must be positive")
	}
	if c.Compositor.CacheSize < 0 {
		vb.Field("compositor.cache_size", "must not be negative")
	}

	if c.Spritesheet.TTL <= 0 {
		vb.Field("spritesheet.ttl", "must be positive")
	}
	if c.Spritesheet.MaxAttempts <= 0 {
		vb.Field("spritesheet.max_attempts", "must be positive")
	}

	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{LogFormatText, LogFormatJSON}, vb)

	return vb.Build()
}
