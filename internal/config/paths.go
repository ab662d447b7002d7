// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config file discovery.
const (
	EnvConfigPath  = "AIRROUTE_CONFIG"
	ConfigFileName = "airroute.yaml"
	appDir         = "airroute"
)

// ErrConfigNotFound means AIRROUTE_CONFIG names a file that does not exist.
// An explicit path never falls back to the search list.
var ErrConfigNotFound = errors.New("config: explicit config file not found")

// SearchPaths lists the implicit config locations, highest priority first:
// airroute.yaml and airroute.yml in the working directory, then
// $XDG_CONFIG_HOME/airroute/config.yaml (or ~/.config when unset), then
// /etc/airroute/airroute.yaml for system-wide installs.
func SearchPaths(getenv func(string) string) []string {
	out := []string{ConfigFileName, "airroute.yml"}

	base := getenv("XDG_CONFIG_HOME")
	if base == "" {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base != "" {
		out = append(out, filepath.Join(base, appDir, "config.yaml"))
	}

	return append(out, filepath.Join("/etc", appDir, ConfigFileName))
}

// FindConfigPath resolves the config file to load. It returns "" and no
// error when nothing was found.
func FindConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if !isFile(path) {
			return path, fmt.Errorf("%w: %s=%s", ErrConfigNotFound, EnvConfigPath, path)
		}
		return path, nil
	}

	for _, path := range SearchPaths(os.Getenv) {
		if !isFile(path) {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			return abs, nil
		}
		return path, nil
	}

	return "", nil
}

// isFile skips directories that happen to carry a config file name.
func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
