package brickbreaker

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T, cfg config.BreakerConfig) *Game {
	t.Helper()
	g := New(ModeClassic, cfg)
	g.Reset(testRuntime())
	if err := g.Err(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// loseBall drops the ball below the floor and runs one tick.
func loseBall(g *Game) {
	g.Wall().Ball().MoveTo(core.Point{X: 300, Y: 460})
	g.Wall().Ball().SetSpeed(0, 1)
	g.Step(core.NewInputFrame())
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakerConfig())

	if g.Phase() != StateReady {
		t.Errorf("New game should wait for launch, got %q", g.Phase())
	}
	if got := g.Message(); got != "Bricks: 31 Balls 3" {
		t.Errorf("Message should report bricks and balls, got %q", got)
	}
	state := g.State()
	if state.Level != 1 || state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("Unexpected initial state %+v", state)
	}
}

func TestGameInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakerConfig()
	cfg.Layout.LineCount = 0

	g := New(ModeClassic, cfg)
	g.Reset(testRuntime())
	if g.Err() == nil {
		t.Fatal("Reset with an invalid config should report an error")
	}

	g.Step(input(core.ActionLaunch))
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start game") {
		t.Error("Render should explain why the game cannot start")
	}
}

func TestGameLaunchAndPause(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakerConfig())
	start := g.Wall().Ball().Position()

	g.Step(core.NewInputFrame())
	if g.Wall().Ball().Position() != start {
		t.Error("Ball should not move before launch")
	}

	g.Step(input(core.ActionLaunch))
	if g.Phase() != StatePlaying {
		t.Fatalf("Launch should start play, got %q", g.Phase())
	}

	g.Step(core.NewInputFrame())
	if g.Wall().Ball().Position() == start {
		t.Error("Ball should move while playing")
	}

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Pause should pause the game")
	}
	paused := g.Wall().Ball().Position()
	g.Step(core.NewInputFrame())
	if g.Wall().Ball().Position() != paused {
		t.Error("Ball should not move while paused")
	}

	g.Step(input(core.ActionPause))
	if g.Phase() != StatePlaying {
		t.Errorf("Second pause should resume, got %q", g.Phase())
	}
}

func TestGamePaddleHold(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakerConfig())
	g.Step(input(core.ActionLaunch))

	g.Step(input(core.ActionLeft))
	for range 30 {
		g.Step(core.NewInputFrame())
	}

	// 100 ticks per second holds a press for 16 ticks of 5 units
	if got := g.Wall().Paddle().Anchor().X; got != 220 {
		t.Errorf("Paddle should travel 80 units per press, anchor at %v", got)
	}
	if g.Wall().Paddle().MoveAmount() != 0 {
		t.Error("Paddle should stop once the hold expires")
	}
}

func TestGameBallLost(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakerConfig())
	g.Step(input(core.ActionLaunch))

	loseBall(g)

	if g.Phase() != StateReady {
		t.Errorf("Lost ball should stop the game until relaunch, got %q", g.Phase())
	}
	if got := g.Message(); got != "Bricks: 31 Balls 2" {
		t.Errorf("Message should count the lost ball, got %q", got)
	}
	if g.Stats().BallsLost != 1 {
		t.Errorf("Stats should count one lost ball, got %d", g.Stats().BallsLost)
	}
	if g.Wall().IsBallLost() || g.Wall().Ball().Position() != core.Pt(300, 430) {
		t.Error("Ball should be reset to the start point")
	}
}

func TestGameOverAndContinue(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakerConfig())

	for range 3 {
		g.Step(input(core.ActionLaunch))
		loseBall(g)
	}

	if !g.State().GameOver || g.Phase() != StateGameOver {
		t.Fatalf("Losing every ball should end the game, got %q", g.Phase())
	}
	if g.Message() != MsgGameOver {
		t.Errorf("Message should be %q, got %q", MsgGameOver, g.Message())
	}
	if g.Wall().BallCount() != 3 || g.Wall().BrickCount() != 31 {
		t.Error("Game over should repair the wall and refill balls")
	}

	g.Step(input(core.ActionLaunch))
	if g.Phase() != StatePlaying || g.State().Score != 0 {
		t.Errorf("Launch after game over should continue as a new run, got %q score %d", g.Phase(), g.State().Score)
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, config.DefaultBreakerConfig())
	g.Step(input(core.ActionLaunch))
	loseBall(g)

	g.Step(input(core.ActionRestart))
	if g.Stats().BallsLost != 0 || g.Wall().BallCount() != 3 {
		t.Error("Restart should start a fresh game")
	}
}

// singleBrickConfig lays out one arena-wide brick per level.
func singleBrickConfig() config.BreakerConfig {
	cfg := config.DefaultBreakerConfig()
	cfg.Layout.BrickCount = 1
	cfg.Layout.LineCount = 1
	return cfg
}

func TestGameClearsEveryLevel(t *testing.T) {
	g := newTestGame(t, singleBrickConfig())

	levelsSeen := map[int]bool{}
	for tick := 0; tick < 200000 && g.Phase() != StateWin; tick++ {
		g.Step(g.Autopilot())
		levelsSeen[g.State().Level] = true
	}

	if g.Phase() != StateWin {
		t.Fatalf("Autopilot should clear every level, stuck at level %d (%q)", g.State().Level, g.Phase())
	}
	if g.Message() != MsgAllWalls {
		t.Errorf("Message should be %q, got %q", MsgAllWalls, g.Message())
	}
	for level := 1; level <= 4; level++ {
		if !levelsSeen[level] {
			t.Errorf("Level %d was never played", level)
		}
	}
	if stats := g.Stats(); !stats.Cleared || stats.Level != 4 {
		t.Errorf("Stats should report a cleared run, got %+v", stats)
	}
	if !g.State().GameOver {
		t.Error("Winning should end the game")
	}
}

func TestGameNextLevelMessage(t *testing.T) {
	g := newTestGame(t, singleBrickConfig())
	g.Step(input(core.ActionLaunch))

	for tick := 0; tick < 1000 && g.State().Level == 1; tick++ {
		g.Step(core.NewInputFrame())
	}

	if g.State().Level != 2 {
		t.Fatalf("Breaking the only brick should advance the level, at %d", g.State().Level)
	}
	if g.Message() != MsgNextLevel || g.Phase() != StateReady {
		t.Errorf("Level change should stop with %q, got %q in %q", MsgNextLevel, g.Message(), g.Phase())
	}
	if g.State().Score != 1 {
		t.Errorf("Score should count the destroyed brick, got %d", g.State().Score)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (uint64, Stats) {
		g := newTestGame(t, config.DefaultBreakerConfig())
		for range 5000 {
			g.Step(g.Autopilot())
		}
		snap := g.Wall().Snapshot()
		return snap.Hash(), g.Stats()
	}

	h1, s1 := run()
	h2, s2 := run()
	if h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
	if s1 != s2 {
		t.Errorf("Determinism failed: stats differ. Run1=%+v, Run2=%+v", s1, s2)
	}
}

func TestRushSpeedsUp(t *testing.T) {
	cfg := config.DefaultBreakerConfig()
	cfg.Difficulty.Progression.Type = "none"

	g := New(ModeRush, cfg)
	if !g.cfg.Difficulty.Enabled || g.cfg.Difficulty.Progression.Type != "score" {
		t.Errorf("Rush should enable score progression, got %+v", g.cfg.Difficulty)
	}
	if g.ID() != "rush" {
		t.Errorf("ID should be rush, got %q", g.ID())
	}

	g.Reset(testRuntime())
	g.score = 100
	g.Step(input(core.ActionLaunch))
	start := g.Wall().Ball().Position()
	g.Step(core.NewInputFrame())

	// At full difficulty every tick runs two simulation steps
	moved := g.Wall().Ball().Position()
	dy := start.Y - moved.Y
	if dy != float64(-2*g.Wall().Ball().SpeedY()) {
		t.Errorf("Rush at max level should step twice per tick, ball moved %v", dy)
	}
}

func TestClassicKeepsSteadySpeed(t *testing.T) {
	presets := []config.DifficultyPreset{
		config.DifficultyEasy,
		config.DifficultyNormal,
		config.DifficultyHard,
	}

	for _, preset := range presets {
		t.Run(string(preset), func(t *testing.T) {
			cfg := config.DefaultBreakerConfig()
			config.ApplyBreakerPreset(&cfg, preset)

			g := New(ModeClassic, cfg)
			g.Reset(testRuntime())
			for _, score := range []int{0, 50, 100} {
				if speed := g.difficulty.Speed(score, 0); speed != 1.0 {
					t.Errorf("Classic speed at score %d should be 1.0, got %.2f", score, speed)
				}
			}

			g.score = 100
			g.Step(input(core.ActionLaunch))
			start := g.Wall().Ball().Position()
			g.Step(core.NewInputFrame())
			dy := g.Wall().Ball().Position().Y - start.Y
			if dy != float64(g.Wall().Ball().SpeedY()) {
				t.Errorf("Classic should run one step per tick, ball moved %v", dy)
			}
		})
	}
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{"classic", "rush"} {
		if !registry.Exists(id) {
			t.Fatalf("Mode %q should be registered", id)
		}
		g, err := registry.Create(id, config.DefaultBreakerConfig())
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q) returned game with ID %q", id, g.ID())
		}
	}

	if _, err := registry.Create("pong", config.DefaultBreakerConfig()); err == nil {
		t.Error("Unknown mode should be an error")
	}
}
