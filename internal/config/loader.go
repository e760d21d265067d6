package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads the farm configuration.
// Search order: customPath -> ~/.farm/configs/farm.yaml -> ./configs/farm.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep their defaults.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when unusable.
func Load(customPath string) (FarmConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFarmConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultFarmConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultFarmConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("farm.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", "farm.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultFarmYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultFarmConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile(path string) (FarmConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FarmConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil || cfg.Validate() != nil {
		return FarmConfig{}, false
	}
	return cfg, true
}

// parse decodes YAML on top of the hard-coded defaults.
func parse(data []byte) (FarmConfig, error) {
	cfg := DefaultFarmConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".farm", "configs", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
