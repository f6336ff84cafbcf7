package config

import (
	_ "embed"

	"github.com/vovakirdan/brick-breaker/internal/breaker"
)

//go:embed defaults/breaker.yaml
var defaultBreakerYAML []byte

// DefaultBreakerConfig returns the default brick breaker configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Arena: ArenaConfig{
			Width:  breaker.DefaultArenaWidth,
			Height: breaker.DefaultArenaHeight,
		},
		Layout: LayoutConfig{
			BrickCount: breaker.DefaultBrickCount,
			LineCount:  breaker.DefaultLineCount,
			BrickRatio: breaker.DefaultBrickRatio,
		},
		Ball: BallConfig{
			StartX: 300,
			StartY: 430,
			Size:   breaker.DefaultBallSize,
		},
		Paddle: PaddleConfig{
			Width:  breaker.DefaultPaddleWidth,
			Height: breaker.DefaultPaddleHeight,
			Speed:  breaker.DefaultPaddleSpeed,
		},
		Bricks: BricksConfig{
			SteelProbability: breaker.DefaultSteelProbability,
			CrackDepth:       breaker.DefaultCrackDepth,
			CrackSteps:       breaker.DefaultCrackSteps,
		},
		Gameplay: GameplayConfig{
			Balls:    breaker.DefaultBallCount,
			TickRate: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultBreakerYAML returns the embedded default configuration file.
func DefaultBreakerYAML() []byte {
	return append([]byte(nil), defaultBreakerYAML...)
}
