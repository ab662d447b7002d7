// SPDX-License-Identifier: MIT

// Package config loads the airroute server configuration.
//
// Sources (later wins):
//  1. Built-in defaults
//  2. YAML file found by FindConfigPath
//  3. .env in the working directory (godotenv, never overrides the process env)
//  4. AIRROUTE_* environment variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/airroute/builder"
)

// Environment overrides.
const (
	EnvAddr      = "AIRROUTE_ADDR"
	EnvLogLevel  = "AIRROUTE_LOG_LEVEL"
	EnvLogFormat = "AIRROUTE_LOG_FORMAT"
	EnvCatalog   = "AIRROUTE_CATALOG"
	EnvDatabase  = "AIRROUTE_DATABASE"
	EnvSeed      = "AIRROUTE_SEED"
)

// ErrInvalid marks a configuration that parses but cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Load finds and loads the config file (or starts from defaults), then
// applies .env and environment overrides and validates the result.
// The returned path is empty when no file was found.
func Load() (*Config, string, error) {
	path, err := FindConfigPath()
	if err != nil {
		return nil, path, err
	}
	cfg := DefaultConfig()
	if path != "" {
		if cfg, _, err = LoadFromPath(path); err != nil {
			return nil, path, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, path, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, path, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = Duration(10 * time.Second)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Graph.MinNeighbors == 0 {
		c.Graph.MinNeighbors = builder.DefaultMinNeighbors
	}
	if c.Graph.MaxNeighbors == 0 {
		c.Graph.MaxNeighbors = builder.DefaultMaxNeighbors
	}
	if c.Graph.CruiseSpeedKmh == 0 {
		c.Graph.CruiseSpeedKmh = builder.DefaultCruiseSpeedKmh
	}
}

// ApplyEnv overrides fields from AIRROUTE_* variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := getenv(EnvCatalog); v != "" {
		c.Catalog.Path = v
	}
	if v := getenv(EnvDatabase); v != "" {
		c.Catalog.Database = v
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, err)
		}
		c.Graph.Seed = seed
	}

	return nil
}

// Validate rejects values builder.Build or the server cannot use.
func (c *Config) Validate() error {
	g := c.Graph
	switch {
	case g.MinNeighbors < 1 || g.MaxNeighbors < g.MinNeighbors:
		return fmt.Errorf("%w: graph neighbors [%d,%d], want 1 ≤ min ≤ max",
			ErrInvalid, g.MinNeighbors, g.MaxNeighbors)
	case g.CruiseSpeedKmh <= 0 || math.IsNaN(g.CruiseSpeedKmh) || math.IsInf(g.CruiseSpeedKmh, 0):
		return fmt.Errorf("%w: graph cruise_speed_kmh=%v, want > 0", ErrInvalid, g.CruiseSpeedKmh)
	case c.Server.ShutdownTimeout < 0:
		return fmt.Errorf("%w: server shutdown_timeout=%s", ErrInvalid, c.Server.ShutdownTimeout.Duration())
	}

	return nil
}

// BuilderOptions translates the graph section into builder options.
// The seed is left to the planner.
func (g GraphConfig) BuilderOptions() []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithNeighbors(g.MinNeighbors, g.MaxNeighbors),
		builder.WithCruiseSpeed(g.CruiseSpeedKmh),
	}
}
