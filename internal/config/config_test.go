package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/breaker"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultBreakerConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid, got %v", err)
	}
	if cfg.Params() != breaker.DefaultParams() {
		t.Errorf("Default config should map to the default wall params, got %+v", cfg.Params())
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := BreakerConfig{}
	if err := Decode(DefaultBreakerYAML(), FormatYAML, &cfg); err != nil {
		t.Fatalf("Embedded defaults should parse, got %v", err)
	}
	if cfg != DefaultBreakerConfig() {
		t.Errorf("Embedded defaults differ from DefaultBreakerConfig:\n%+v\n%+v", cfg, DefaultBreakerConfig())
	}
}

func TestLoadBreakerCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "layout:\n  brick_count: 40\n  line_count: 5\npaddle:\n  speed: 8\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreaker(path)
	if err != nil {
		t.Fatalf("LoadBreaker failed: %v", err)
	}
	if cfg.Layout.BrickCount != 40 || cfg.Layout.LineCount != 5 || cfg.Paddle.Speed != 8 {
		t.Errorf("Custom values should be applied, got %+v", cfg)
	}
	if cfg.Arena.Width != 600 || cfg.Gameplay.Balls != 3 {
		t.Errorf("Unset values should keep defaults, got %+v", cfg)
	}
}

func TestLoadBreakerCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "[bricks]\nsteel_probability = 0.5\ncrack_steps = 20\n\n[gameplay]\nseed = 99\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreaker(path)
	if err != nil {
		t.Fatalf("LoadBreaker failed: %v", err)
	}
	if cfg.Bricks.SteelProbability != 0.5 || cfg.Bricks.CrackSteps != 20 || cfg.Gameplay.Seed != 99 {
		t.Errorf("TOML values should be applied, got %+v", cfg.Bricks)
	}
	if cfg.Bricks.CrackDepth != 1 {
		t.Errorf("Unset TOML values should keep defaults, got crack depth %d", cfg.Bricks.CrackDepth)
	}
}

func TestLoadBreakerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreaker(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreaker(bad); err == nil {
		t.Error("Malformed config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("layout:\n  line_count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreaker(invalid); !errors.Is(err, breaker.ErrInvalidParams) {
		t.Errorf("Invalid geometry should wrap ErrInvalidParams, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakerConfig)
	}{
		{"zero tick rate", func(c *BreakerConfig) { c.Gameplay.TickRate = 0 }},
		{"no crack steps", func(c *BreakerConfig) { c.Bricks.CrackSteps = 0 }},
		{"ball outside arena", func(c *BreakerConfig) { c.Ball.StartY = 900 }},
		{"no balls", func(c *BreakerConfig) { c.Gameplay.Balls = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should reject the config")
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			want := DefaultBreakerConfig()
			want.Layout.BrickCount = 45
			want.Gameplay.Seed = 7

			var buf bytes.Buffer
			if err := Encode(&buf, format, want); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			var got BreakerConfig
			if err := Decode(buf.Bytes(), format, &got); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != want {
				t.Errorf("Decoded config differs:\n%+v\n%+v", got, want)
			}
		})
	}
}

func TestApplyBreakerPreset(t *testing.T) {
	easy := DefaultBreakerConfig()
	ApplyBreakerPreset(&easy, DifficultyEasy)
	hard := DefaultBreakerConfig()
	ApplyBreakerPreset(&hard, DifficultyHard)

	if easy.Gameplay.Balls <= hard.Gameplay.Balls {
		t.Errorf("Easy should give more balls than hard, got %d vs %d", easy.Gameplay.Balls, hard.Gameplay.Balls)
	}
	if easy.Paddle.Width <= hard.Paddle.Width {
		t.Errorf("Easy should give a wider paddle than hard, got %d vs %d", easy.Paddle.Width, hard.Paddle.Width)
	}
	if !hard.Difficulty.Enabled || hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Hard should enable progression at 0.7, got %+v", hard.Difficulty)
	}
	for _, cfg := range []BreakerConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset config should stay valid, got %v", err)
		}
	}

	fixed := DefaultBreakerConfig()
	fixed.Difficulty.Enabled = true
	ApplyBreakerPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("Empty preset should be normal, got %q %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("Unknown preset should be an error")
	}
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatalf("SchemaJSON failed: %v", err)
	}

	out := string(data)
	for _, key := range []string{"Brick Breaker Configuration", "steel_probability", "brick_count", "tick_rate"} {
		if !strings.Contains(out, key) {
			t.Errorf("Schema should mention %q", key)
		}
	}
}
