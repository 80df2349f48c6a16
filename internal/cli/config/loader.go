// Package config defines the tokgen CLI configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/yndnr/tokgen-go/internal/infra/confloader"
)

// DefaultConfigPath returns ~/.tokgen/config.yaml.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".tokgen", "config.yaml")
}

// Load builds the configuration. An explicit path must exist; the default
// path is used only when present. Overrides are keyed by dotted path.
func Load(path string, overrides map[string]any) (*Config, error) {
	if path == "" {
		if p := DefaultConfigPath(); p != "" {
			if _, err := os.Stat(p); err == nil {
				path = p
			} else if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithDefaults(Defaults()),
		confloader.WithOverrides(overrides),
	)

	cfg := &Config{}
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
