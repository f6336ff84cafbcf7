package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const breakerFile = "breaker"

// LoadBreaker loads the brick breaker configuration.
// Search order: customPath -> ~/.brickbreaker/configs/breaker.{yaml,toml} ->
// ./configs/breaker.yaml -> embedded default.
// Files only need to name the settings they change; everything else keeps
// its default value.
func LoadBreaker(customPath string) (BreakerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{
		userConfigPath(breakerFile + ".yaml"),
		userConfigPath(breakerFile + ".toml"),
		filepath.Join("configs", breakerFile+".yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultBreakerConfig()
	if err := yaml.Unmarshal(defaultBreakerYAML, &cfg); err != nil {
		return DefaultBreakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads a config file, choosing the decoder by extension.
func loadFile(path string) (BreakerConfig, error) {
	cfg := DefaultBreakerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(data, formatOf(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data in the given format on top of cfg.
func Decode(data []byte, format Format, cfg *BreakerConfig) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, format Format, cfg BreakerConfig) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "configs", filename)
}

// ApplyBreakerPreset modifies the config based on a difficulty preset.
// Easier presets give more balls, a wider paddle and softer steel.
func ApplyBreakerPreset(cfg *BreakerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	case DifficultyEasy:
		cfg.Gameplay.Balls = 5
		cfg.Paddle.Width = cfg.Arena.Width / 3
		cfg.Bricks.SteelProbability = 0.6
	case DifficultyHard:
		cfg.Gameplay.Balls = 2
		cfg.Paddle.Width = cfg.Arena.Width / 6
		cfg.Bricks.SteelProbability = 0.25
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
