package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMousetrap loads Mousetrap configuration.
// Search order: customPath -> ~/.mousetrap/configs/mousetrap.yaml -> ./configs/mousetrap.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. On error the hard-coded defaults are returned.
func LoadMousetrap(customPath string) (MousetrapConfig, error) {
	cfg := DefaultMousetrapConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultMousetrapConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultMousetrapConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultMousetrapConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("mousetrap.yaml"), filepath.Join("configs", "mousetrap.yaml")} {
		if path == "" {
			continue
		}
		if candidate, ok := tryLoad(path); ok {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultMousetrapConfig()
	if err := yaml.Unmarshal(defaultMousetrapYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultMousetrapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped.
func tryLoad(path string) (MousetrapConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MousetrapConfig{}, false
	}
	cfg := DefaultMousetrapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MousetrapConfig{}, false
	}
	if cfg.Validate() != nil {
		return MousetrapConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mousetrap", "configs", filename)
}
