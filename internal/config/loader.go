package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// SourceEmbedded is reported by Source when no file overrides the defaults.
const SourceEmbedded = "embedded"

// LoadDodger loads Avoid the Dots configuration.
// Search order: customPath -> ~/.arcade/configs/dodger.yaml -> ./configs/dodger.yaml -> embedded default
func LoadDodger(customPath string) (DodgerConfig, error) {
	return load("dodger", customPath, DefaultDodgerConfig)
}

// LoadFlappy loads Flappy Box configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy", customPath, DefaultFlappyConfig)
}

// LoadPong loads 2-player Pong configuration.
// Search order: customPath -> ~/.arcade/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, DefaultPongConfig)
}

// LoadPong4P loads 4-player Pong configuration.
// Search order: customPath -> ~/.arcade/configs/pong4p.yaml -> ./configs/pong4p.yaml -> embedded default
func LoadPong4P(customPath string) (PongConfig, error) {
	return load("pong4p", customPath, DefaultPong4PConfig)
}

// EmbeddedDodger returns the validated built-in Avoid the Dots tuning,
// ignoring any files on disk.
func EmbeddedDodger() (DodgerConfig, error) {
	return builtin("dodger", DefaultDodgerConfig)
}

// EmbeddedFlappy returns the validated built-in Flappy Box tuning.
func EmbeddedFlappy() (FlappyConfig, error) {
	return builtin("flappy", DefaultFlappyConfig)
}

// EmbeddedPong returns the validated built-in 2-player Pong tuning.
func EmbeddedPong() (PongConfig, error) {
	return builtin("pong", DefaultPongConfig)
}

// EmbeddedPong4P returns the validated built-in 4-player Pong tuning.
func EmbeddedPong4P() (PongConfig, error) {
	return builtin("pong4p", DefaultPong4PConfig)
}

func builtin[T validator](id string, fallback func() T) (T, error) {
	cfg, err := embedded(id, fallback)
	if err != nil {
		return cfg, err
	}
	return validated(cfg, SourceEmbedded)
}

// load resolves the config for id. Files are overlaid on the embedded
// defaults, so a user file only needs the keys it changes. The first file
// that exists wins: if it cannot be read or parsed, that is an error rather
// than a silent fallback to the next location. The result is always validated.
func load[T validator](id, customPath string, fallback func() T) (T, error) {
	cfg, err := embedded(id, fallback)
	if err != nil {
		return cfg, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	for _, path := range searchPaths(id) {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		overlay := cfg
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return validated(overlay, path)
	}

	return validated(cfg, SourceEmbedded)
}

// embedded decodes the embedded default YAML for id, falling back to the
// hardcoded defaults if the embed is missing or broken.
func embedded[T any](id string, fallback func() T) (T, error) {
	cfg := fallback()
	data := GetDefaultYAML(id)
	if data == nil {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func validated[T validator](cfg T, source string) (T, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", source, err)
	}
	return cfg, nil
}

// Source reports which file Load would read for id: customPath, the first
// existing search path, or SourceEmbedded.
func Source(id, customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths(id) {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return SourceEmbedded
}

// searchPaths returns the user and local config locations for id.
func searchPaths(id string) []string {
	filename := id + ".yaml"
	paths := make([]string, 0, 2)
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Dump renders a config value as YAML.
func Dump(cfg any) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
