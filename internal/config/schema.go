// SPDX-License-Identifier: MIT

package config

import "time"

// Config is the on-disk configuration of the airroute server.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Graph   GraphConfig   `yaml:"graph"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	AllowOrigins    []string `yaml:"allow_origins,omitempty"` // empty allows all
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// GraphConfig drives builder.Build.
type GraphConfig struct {
	// Seed fixes the topology and segment attributes; 0 reseeds per rebuild.
	Seed           int64   `yaml:"seed"`
	MinNeighbors   int     `yaml:"min_neighbors"`
	MaxNeighbors   int     `yaml:"max_neighbors"`
	CruiseSpeedKmh float64 `yaml:"cruise_speed_kmh"`
}

// CatalogConfig locates the airport list.
type CatalogConfig struct {
	// Path is a CSV, YAML or JSON airport file; empty serves no airports
	// until POST /api/graph.
	Path string `yaml:"path"`

	// Database is the SQLite file the loaded airports are stored in;
	// empty disables persistence.
	Database string `yaml:"database"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
