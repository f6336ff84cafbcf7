package brickbreaker

import "github.com/vovakirdan/brick-breaker/internal/core"

// Autopilot returns the input a simple player would give this tick: it
// launches whenever the game waits and keeps the paddle under the ball.
// The dead zone stops the paddle from jittering around the target.
func (g *Game) Autopilot() core.InputFrame {
	in := core.NewInputFrame()
	if g.wall == nil {
		return in
	}

	switch g.state {
	case StateReady, StateGameOver:
		in.Set(core.ActionLaunch)
		return in
	case StatePlaying:
	default:
		return in
	}

	ball := g.wall.Ball().Position().X
	paddle := g.wall.Paddle().Anchor().X
	deadZone := float64(g.wall.Paddle().Face().W) / 4

	switch {
	case ball < paddle-deadZone:
		in.Set(core.ActionLeft)
	case ball > paddle+deadZone:
		in.Set(core.ActionRight)
	}
	return in
}
