// Package config provides YAML/TOML configuration loading and difficulty
// management for the brick breaker.
package config

import (
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/breaker"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// BreakerConfig contains all configuration for a brick breaker game.
type BreakerConfig struct {
	Arena      ArenaConfig      `yaml:"arena" toml:"arena" json:"arena"`
	Layout     LayoutConfig     `yaml:"layout" toml:"layout" json:"layout"`
	Ball       BallConfig       `yaml:"ball" toml:"ball" json:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle" json:"paddle"`
	Bricks     BricksConfig     `yaml:"bricks" toml:"bricks" json:"bricks"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay" json:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty" json:"difficulty"`
}

// ArenaConfig defines the playing field in arena units.
type ArenaConfig struct {
	Width  int `yaml:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height int `yaml:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
}

// LayoutConfig defines how bricks are laid out.
type LayoutConfig struct {
	BrickCount int     `yaml:"brick_count" toml:"brick_count" json:"brick_count" jsonschema:"minimum=1"`
	LineCount  int     `yaml:"line_count" toml:"line_count" json:"line_count" jsonschema:"minimum=1"`
	BrickRatio float64 `yaml:"brick_ratio" toml:"brick_ratio" json:"brick_ratio" jsonschema:"description=Brick width divided by brick height"`
}

// BallConfig defines the ball and its launch point.
type BallConfig struct {
	StartX int     `yaml:"start_x" toml:"start_x" json:"start_x"`
	StartY int     `yaml:"start_y" toml:"start_y" json:"start_y"`
	Size   float64 `yaml:"size" toml:"size" json:"size"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width  int `yaml:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height int `yaml:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
	Speed  int `yaml:"speed" toml:"speed" json:"speed" jsonschema:"minimum=0"`
}

// BricksConfig defines brick material parameters.
type BricksConfig struct {
	SteelProbability float64 `yaml:"steel_probability" toml:"steel_probability" json:"steel_probability" jsonschema:"minimum=0,maximum=1"`
	CrackDepth       int     `yaml:"crack_depth" toml:"crack_depth" json:"crack_depth" jsonschema:"minimum=0"`
	CrackSteps       int     `yaml:"crack_steps" toml:"crack_steps" json:"crack_steps" jsonschema:"minimum=1"`
}

// GameplayConfig defines the game loop.
type GameplayConfig struct {
	Balls    int   `yaml:"balls" toml:"balls" json:"balls" jsonschema:"minimum=1"`
	TickRate int   `yaml:"tick_rate" toml:"tick_rate" json:"tick_rate" jsonschema:"minimum=1,description=Simulation ticks per second"`
	Seed     int64 `yaml:"seed" toml:"seed" json:"seed" jsonschema:"description=Random seed (0 picks one from the clock)"`
}

// Params converts the config into wall parameters.
func (c BreakerConfig) Params() breaker.Params {
	return breaker.Params{
		Area:         core.NewRect(0, 0, c.Arena.Width, c.Arena.Height),
		BrickCount:   c.Layout.BrickCount,
		LineCount:    c.Layout.LineCount,
		BrickRatio:   c.Layout.BrickRatio,
		BallStart:    core.Pt(c.Ball.StartX, c.Ball.StartY),
		BallSize:     c.Ball.Size,
		Balls:        c.Gameplay.Balls,
		PaddleWidth:  c.Paddle.Width,
		PaddleHeight: c.Paddle.Height,
		PaddleSpeed:  c.Paddle.Speed,
		Materials: breaker.Materials{
			SteelProbability: c.Bricks.SteelProbability,
			CrackDepth:       c.Bricks.CrackDepth,
			CrackSteps:       c.Bricks.CrackSteps,
		},
	}
}

// Validate reports the first setting that would produce an unplayable game.
func (c BreakerConfig) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Bricks.CrackDepth < 0 || c.Bricks.CrackSteps < 1 {
		return fmt.Errorf("config: crack depth must be >= 0 and steps >= 1")
	}
	if c.Gameplay.TickRate <= 0 {
		return fmt.Errorf("config: tick rate must be positive")
	}
	if !c.Arena.contains(c.Ball.StartX, c.Ball.StartY) {
		return fmt.Errorf("config: ball start (%d, %d) is outside the arena", c.Ball.StartX, c.Ball.StartY)
	}
	return nil
}

func (a ArenaConfig) contains(x, y int) bool {
	return x >= 0 && x <= a.Width && y >= 0 && y <= a.Height
}

// DifficultyConfig defines how the game speeds up.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled" json:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level" json:"initial_level" jsonschema:"minimum=0,maximum=1"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression" json:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling" json:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type" json:"type" jsonschema:"enum=score,enum=time,enum=none"`
	MaxAt int    `yaml:"max_at" toml:"max_at" json:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier" json:"speed_multiplier"` // Extra simulation steps per tick at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
