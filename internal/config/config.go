// Package config loads server configuration from defaults, an optional YAML
// file and RECORDGEN_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the server configuration.
type Config struct {
	Addr            string          `yaml:"addr" validate:"required"`
	DBPath          string          `yaml:"db_path"` // empty = presets kept in memory
	Log             LogConfig       `yaml:"log"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	MaxExportPages  int             `yaml:"max_export_pages" validate:"gte=1,lte=10000"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" validate:"gt=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// RateLimitConfig bounds request throughput. RPS 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" validate:"gte=0"`
	Burst int     `yaml:"burst" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr: ":3000",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		RateLimit: RateLimitConfig{
			RPS:   50,
			Burst: 100,
		},
		MaxExportPages:  500,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = f
		}
	}
	duration := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}

	str("RECORDGEN_ADDR", &c.Addr)
	str("RECORDGEN_DB_PATH", &c.DBPath)
	str("RECORDGEN_LOG_LEVEL", &c.Log.Level)
	str("RECORDGEN_LOG_FORMAT", &c.Log.Format)
	float("RECORDGEN_RATE_LIMIT_RPS", &c.RateLimit.RPS)
	integer("RECORDGEN_RATE_LIMIT_BURST", &c.RateLimit.Burst)
	integer("RECORDGEN_MAX_EXPORT_PAGES", &c.MaxExportPages)
	duration("RECORDGEN_SHUTDOWN_TIMEOUT", &c.ShutdownTimeout)

	return errors.Join(errs...)
}
