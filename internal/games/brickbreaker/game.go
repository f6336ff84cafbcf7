// Package brickbreaker drives a breaker.Wall as a registry.Game: it maps
// platform actions onto the paddle, runs the per-tick Move/FindImpacts
// loop, sequences lost balls and level changes, and renders the arena onto
// a terminal-sized screen.
package brickbreaker

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/breaker"
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/registry"
)

// Game states
const (
	StateReady    = "ready"    // Timer stopped, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Paused by the player
	StateGameOver = "gameover" // All balls lost
	StateWin      = "win"      // Every level destroyed
)

// HUD messages
const (
	MsgGameOver  = "Game over"
	MsgNextLevel = "Go to Next Level"
	MsgAllWalls  = "ALL WALLS DESTROYED"
)

// Mode selects how the game paces itself.
type Mode int

const (
	ModeClassic Mode = iota // Fixed speed, difficulty follows the config
	ModeRush                // Speed ramps up with destroyed bricks
)

// Stats summarizes the current run.
type Stats struct {
	Seed            int64
	Level           int
	BricksDestroyed int
	BallsLost       int
	Ticks           int64
	Cleared         bool
}

// Game runs a brick breaker session.
type Game struct {
	mode Mode
	cfg  config.BreakerConfig
	log  *log.Logger

	runtime    core.RuntimeConfig
	seed       int64
	wall       *breaker.Wall
	difficulty *config.DifficultyManager

	state   string
	message string
	score   int
	lost    int
	ticks   int64
	stepAcc float64

	// Terminals report key presses, not releases: a press keeps the paddle
	// moving for holdTicks ticks.
	holdLeft  int
	holdRight int
	holdTicks int

	view           viewport
	screenTooSmall bool
	err            error
}

// New creates a game in the given mode.
// Classic always runs at a steady speed; presets only change its balls,
// paddle and steel.
func New(mode Mode, cfg config.BreakerConfig) *Game {
	switch mode {
	case ModeRush:
		cfg.Difficulty.Enabled = true
		if cfg.Difficulty.Progression.Type == "none" || cfg.Difficulty.Progression.Type == "" {
			cfg.Difficulty.Progression.Type = "score"
		}
	default:
		cfg.Difficulty.Enabled = false
	}
	return &Game{mode: mode, cfg: cfg, log: log.New(io.Discard)}
}

// SetLogger sets the logger for lifecycle events. Takes effect on Reset.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.log = l
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeRush {
		return "rush"
	}
	return "classic"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeRush {
		return "Brick Breaker Rush"
	}
	return "Brick Breaker"
}

// Reset builds a fresh wall and installs the first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.err = nil

	g.seed = runtime.Seed
	if g.seed == 0 {
		g.seed = g.cfg.Gameplay.Seed
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	wall, err := g.buildWall()
	if err == nil {
		err = wall.NextLevel()
	}
	if err != nil {
		g.err = fmt.Errorf("brickbreaker: %w", err)
		g.log.Error("cannot build wall", "err", err)
		return
	}
	g.wall = wall

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.state = StateReady
	g.score = 0
	g.lost = 0
	g.ticks = 0
	g.stepAcc = 0
	g.holdLeft, g.holdRight = 0, 0

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = g.cfg.Gameplay.TickRate
	}
	g.holdTicks = core.Max(tickRate/6, 1)

	g.view = newViewport(wall.Area(), runtime.ScreenW, runtime.ScreenH)
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.updateMessage()

	g.log.Debug("game reset", "mode", g.ID(), "seed", g.seed)
}

// buildWall creates the wall for the current seed.
func (g *Game) buildWall() (*breaker.Wall, error) {
	return breaker.NewWall(g.cfg.Params(),
		breaker.WithRand(breaker.NewSimpleRNG(g.seed)),
		breaker.WithLogger(g.log),
	)
}

// Err returns the error that stopped the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.wall == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.state != StatePlaying {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	g.updatePaddle(in)

	switch g.state {
	case StateReady:
		if in.Has(core.ActionLaunch) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	case StateGameOver:
		// The wall was repaired when the last ball fell; launching plays
		// the same level again as a new run.
		if in.Has(core.ActionLaunch) {
			g.score = 0
			g.lost = 0
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	case StatePlaying:
	default:
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.stepAcc += g.difficulty.Speed(g.score, int(g.ticks))
	for g.stepAcc >= 1 && g.state == StatePlaying {
		g.stepAcc--
		g.tick()
	}
	if g.state != StatePlaying {
		g.stepAcc = 0
	}

	return core.StepResult{State: g.State()}
}

// tick runs one simulation step and sequences lost balls and level ends.
func (g *Game) tick() {
	w := g.wall
	w.Move()

	before := w.BrickCount()
	w.FindImpacts()
	if destroyed := before - w.BrickCount(); destroyed > 0 {
		g.score += destroyed
	}
	g.updateMessage()

	switch {
	case w.IsBallLost():
		g.lost++
		g.state = StateReady
		if w.BallEnd() {
			w.WallReset()
			g.message = MsgGameOver
			g.state = StateGameOver
			g.log.Info("game over", "score", g.score, "level", w.Level())
		}
		w.BallReset()
	case w.IsDone():
		if !w.HasLevel() {
			g.message = MsgAllWalls
			g.state = StateWin
			g.log.Info("all walls destroyed", "score", g.score)
			return
		}
		g.message = MsgNextLevel
		g.state = StateReady
		w.BallReset()
		w.WallReset()
		if err := w.NextLevel(); err != nil {
			g.err = err
			return
		}
		g.log.Info("level cleared", "level", w.Level(), "score", g.score)
	}
}

func (g *Game) updateMessage() {
	g.message = fmt.Sprintf("Bricks: %d Balls %d", g.wall.BrickCount(), g.wall.BallCount())
}

// updatePaddle maps left/right actions to paddle motion.
func (g *Game) updatePaddle(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.holdLeft, g.holdRight = g.holdTicks, 0
	case in.Has(core.ActionRight):
		g.holdLeft, g.holdRight = 0, g.holdTicks
	}

	p := g.wall.Paddle()
	switch {
	case g.holdLeft > 0:
		g.holdLeft--
		p.MoveLeft()
	case g.holdRight > 0:
		g.holdRight--
		p.MoveRight()
	default:
		p.Stop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	level := 0
	if g.wall != nil {
		level = g.wall.Level()
	}
	return core.GameState{
		Score:    g.score,
		Level:    level,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the internal state name.
func (g *Game) Phase() string {
	return g.state
}

// Message returns the HUD status line.
func (g *Game) Message() string {
	return g.message
}

// Wall exposes the simulation for headless drivers and tests.
func (g *Game) Wall() *breaker.Wall {
	return g.wall
}

// Stats returns a summary of the current run.
func (g *Game) Stats() Stats {
	s := Stats{
		Seed:            g.seed,
		BricksDestroyed: g.score,
		BallsLost:       g.lost,
		Ticks:           g.ticks,
		Cleared:         g.state == StateWin,
	}
	if g.wall != nil {
		s.Level = g.wall.Level()
	}
	return s
}

// Register the modes with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          "classic",
		Title:       "Brick Breaker",
		Description: "Four walls of clay, cement and steel at a steady pace",
	}, func(cfg config.BreakerConfig) registry.Game {
		return New(ModeClassic, cfg)
	})
	registry.Register(registry.GameInfo{
		ID:          "rush",
		Title:       "Brick Breaker Rush",
		Description: "The ball speeds up as bricks fall",
	}, func(cfg config.BreakerConfig) registry.Game {
		return New(ModeRush, cfg)
	})
}
