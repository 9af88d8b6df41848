// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: YAML configuration, environment overlay and validation.

// Package config loads engine settings from YAML with environment overrides.
//
// Resolution order, later wins: Default(), the YAML document, then the
// MESHCHAN_DATABASE_URL and LOG_LEVEL environment variables. The result is
// validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/meshchan/interference"
)

// Environment variables overriding file values.
const (
	EnvDatabaseURL = "MESHCHAN_DATABASE_URL"
	EnvLogLevel    = "LOG_LEVEL"
)

// ErrInvalidConfig indicates a document that cannot be parsed or fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is a singleton validator instance
var validate = validator.New()

// Config is the root configuration document.
type Config struct {
	Log          Log          `yaml:"log"`
	Database     Database     `yaml:"database"`
	Interference Interference `yaml:"interference"`
	Metrics      Metrics      `yaml:"metrics"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Database configures the measurement store.
type Database struct {
	URL          string        `yaml:"url"`
	MaxConns     int32         `yaml:"max_conns" validate:"gte=1,lte=64"`
	QueryTimeout time.Duration `yaml:"query_timeout" validate:"gte=0"`
}

// Interference selects and tunes the interference model.
type Interference struct {
	Model       string  `yaml:"model" validate:"required,oneof=two_hop two_hop_frac channel_occupancy"`
	COThreshold float64 `yaml:"co_threshold" validate:"gte=0,lte=100"`
}

// Metrics toggles prometheus instrumentation.
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration: two-hop model, info logging,
// metrics on, no database.
func Default() Config {
	return Config{
		Log: Log{Level: "info"},
		Database: Database{
			MaxConns:     4,
			QueryTimeout: 30 * time.Second,
		},
		Interference: Interference{
			Model:       interference.NameTwoHop,
			COThreshold: interference.DefaultOccupancyThreshold,
		},
		Metrics: Metrics{Enabled: true},
	}
}

// Load reads path and resolves it like Parse.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data over Default(), applies environment overrides and
// validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, formatValidationError(err))
	}
	if c.Interference.Model == interference.NameChannelOccupancy && c.Database.URL == "" {
		return fmt.Errorf("%w: database.url is required by the %s model", ErrInvalidConfig, interference.NameChannelOccupancy)
	}

	return nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDatabaseURL); ok && v != "" {
		c.Database.URL = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// formatValidationError reports the first failed field in a readable form.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s], got %v", field, e.Param(), e.Value())
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, e.Param())
		case "lte":
			return fmt.Errorf("%s: must not exceed %s", field, e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
