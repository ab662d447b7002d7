package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup location at an empty temporary directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	// godotenv never overrides a variable that is set, even to "".
	for _, k := range []string{"XDG_CONFIG_HOME", EnvConfigPath, EnvAddr, EnvLogLevel, EnvLogFormat, EnvCatalog, EnvDatabase, EnvSeed} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout.Duration())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Graph.MinNeighbors)
	assert.Equal(t, 5, cfg.Graph.MaxNeighbors)
	assert.Equal(t, 800.0, cfg.Graph.CruiseSpeedKmh)
	assert.Zero(t, cfg.Graph.Seed)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "airroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: "127.0.0.1:9000"
  allow_origins: ["http://localhost:5173"]
  shutdown_timeout: 3s
log:
  format: json
graph:
  seed: 42
  min_neighbors: 2
  max_neighbors: 2
catalog:
  path: airports.csv
  database: airroute.db
`), 0o644))

	cfg, got, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowOrigins)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout.Duration())
	assert.Equal(t, "info", cfg.Log.Level, "defaults fill missing keys")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, int64(42), cfg.Graph.Seed)
	assert.Equal(t, 2, cfg.Graph.MinNeighbors)
	assert.Equal(t, 800.0, cfg.Graph.CruiseSpeedKmh)
	assert.Equal(t, "airports.csv", cfg.Catalog.Path)
	assert.Equal(t, "airroute.db", cfg.Catalog.Database)
	assert.Len(t, cfg.Graph.BuilderOptions(), 2)
}

func TestLoadFromPath_Errors(t *testing.T) {
	_, _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))
	_, _, err = LoadFromPath(path)
	require.ErrorContains(t, err, "parse config")

	require.NoError(t, os.WriteFile(path, []byte("server:\n  shutdown_timeout: soon\n"), 0o644))
	_, _, err = LoadFromPath(path)
	require.ErrorContains(t, err, "parse config")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAddr:      ":7070",
		EnvLogLevel:  "debug",
		EnvLogFormat: "json",
		EnvCatalog:   "/data/airports.csv",
		EnvDatabase:  "/data/airroute.db",
		EnvSeed:      " 1234 ",
	}
	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/data/airports.csv", cfg.Catalog.Path)
	assert.Equal(t, "/data/airroute.db", cfg.Catalog.Database)
	assert.Equal(t, int64(1234), cfg.Graph.Seed)

	env[EnvSeed] = "abc"
	require.Error(t, cfg.ApplyEnv(func(k string) string { return env[k] }))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"negative min":     func(c *Config) { c.Graph.MinNeighbors = -1 },
		"inverted range":   func(c *Config) { c.Graph.MinNeighbors, c.Graph.MaxNeighbors = 5, 3 },
		"negative speed":   func(c *Config) { c.Graph.CruiseSpeedKmh = -800 },
		"negative timeout": func(c *Config) { c.Server.ShutdownTimeout = Duration(-time.Second) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)
	cfg, path, err := Load()
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileEnvAndDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("graph:\n  seed: 5\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AIRROUTE_LOG_LEVEL=warn\n"), 0o644))
	t.Setenv(EnvAddr, ":9999")

	cfg, path, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ConfigFileName, filepath.Base(path))
	assert.Equal(t, int64(5), cfg.Graph.Seed)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ExplicitPathAndInvalid(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  min_neighbors: 6\n"), 0o644))
	t.Setenv(EnvConfigPath, path)

	_, got, err := Load()
	assert.Equal(t, path, got)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	dir := isolate(t)
	// A local file must not be picked up in place of the explicit one.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("graph:\n  seed: 5\n"), 0o644))
	t.Setenv(EnvConfigPath, filepath.Join(dir, "absent.yaml"))

	_, _, err := Load()
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestFindConfigPath_SearchOrder(t *testing.T) {
	dir := isolate(t)
	xdg := filepath.Join(dir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	path, err := FindConfigPath()
	require.NoError(t, err)
	assert.Empty(t, path)

	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "airroute"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "airroute", "config.yaml"), []byte("{}\n"), 0o644))
	path, err = FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "airroute", "config.yaml"), path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "airroute.yml"), []byte("{}\n"), 0o644))
	path, err = FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "airroute.yml", filepath.Base(path))

	// A directory with the config name is skipped.
	require.NoError(t, os.Mkdir(filepath.Join(dir, ConfigFileName), 0o755))
	path, err = FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "airroute.yml", filepath.Base(path))
}

func TestSearchPaths(t *testing.T) {
	got := SearchPaths(func(k string) string {
		if k == "XDG_CONFIG_HOME" {
			return "/cfg"
		}
		return ""
	})
	assert.Equal(t, []string{
		"airroute.yaml",
		"airroute.yml",
		filepath.Join("/cfg", "airroute", "config.yaml"),
		filepath.Join("/etc", "airroute", "airroute.yaml"),
	}, got)
}
