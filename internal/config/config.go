// Package config loads the lvsearch tool settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of one lvsearch invocation.
type Config struct {
	Strategy      string         `yaml:"strategy"`
	Heuristic     string         `yaml:"heuristic"`
	Cost          string         `yaml:"cost"`
	MaxExpansions int            `yaml:"max_expansions"`
	Timeout       time.Duration  `yaml:"timeout"` // 0 means none
	Log           logging.Config `yaml:"log"`
	Trace         bool           `yaml:"trace"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Strategy:  search.StrategyAStar.String(),
		Heuristic: "manhattan",
		Cost:      "uniform",
		Timeout:   30 * time.Second,
		Log:       logging.Config{Level: "info", Format: logging.FormatText},
	}
}

// Load reads path over Default and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default, rejecting unknown keys, and validates.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every name against the parsers that will consume it.
func (c Config) Validate() error {
	if _, err := search.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy: %v", ErrInvalidConfig, err)
	}
	if _, err := maze.ParseHeuristic(c.Heuristic); err != nil {
		return fmt.Errorf("%w: heuristic: %v", ErrInvalidConfig, err)
	}
	if _, err := maze.ParseCost(c.Cost); err != nil {
		return fmt.Errorf("%w: cost: %v", ErrInvalidConfig, err)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions must be >= 0, got %d", ErrInvalidConfig, c.MaxExpansions)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must be >= 0, got %s", ErrInvalidConfig, c.Timeout)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("%w: log.format: unknown format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// HeuristicAdmissible reports whether the configured heuristic never
// overestimates under the configured cost function.
func (c Config) HeuristicAdmissible() bool {
	return maze.Admissible(c.Heuristic, c.Cost)
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
