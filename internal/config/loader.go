package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config file names looked up in the user and local config directories.
const (
	yamlFile = "railrunner.yaml"
	tomlFile = "railrunner.toml"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.railrunner/configs -> ./configs -> embedded default.
// Files only need to set the fields they override; the rest keep their
// default values.
func Load(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultRunnerConfig()
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// User directory, then local configs directory
	for _, dir := range []string{userConfigDir(), "configs"} {
		if dir == "" {
			continue
		}
		for _, name := range []string{yamlFile, tomlFile} {
			cfg := DefaultRunnerConfig()
			err := decodeFile(filepath.Join(dir, name), &cfg)
			if err == nil {
				return cfg, cfg.Validate()
			}
			// A present but broken file is an error, not a reason to fall back
			if !errors.Is(err, fs.ErrNotExist) {
				return DefaultRunnerConfig(), err
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes configuration data in the given format ("yaml" or "toml")
// on top of the defaults.
func Parse(data []byte, format string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	switch format {
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse toml config: %w", err)
		}
	case "yaml", "yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse yaml config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unknown config format %q", format)
	}
	return cfg, cfg.Validate()
}

// decodeFile decodes a YAML or TOML file into cfg, chosen by extension.
func decodeFile(path string, cfg *RunnerConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// userConfigDir returns ~/.railrunner/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".railrunner", "configs")
}
