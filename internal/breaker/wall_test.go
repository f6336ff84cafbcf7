package breaker

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

func newTestWall(t *testing.T, opts ...Option) *Wall {
	t.Helper()
	opts = append([]Option{WithRand(NewSimpleRNG(42))}, opts...)
	w, err := NewWall(DefaultParams(), opts...)
	if err != nil {
		t.Fatalf("NewWall failed: %v", err)
	}
	return w
}

// emptyWall returns a wall whose single level has no bricks.
func emptyWall(t *testing.T) *Wall {
	t.Helper()
	w := newTestWall(t, WithLevels([]*Brick{}))
	if err := w.NextLevel(); err != nil {
		t.Fatalf("NextLevel failed: %v", err)
	}
	return w
}

func countUnbroken(bricks []*Brick) int {
	n := 0
	for _, b := range bricks {
		if !b.IsBroken() {
			n++
		}
	}
	return n
}

func TestNewWallInitialState(t *testing.T) {
	w := newTestWall(t)

	if w.Levels() != LevelsCount || w.Level() != 0 {
		t.Errorf("New wall should have %d levels and none installed, got %d/%d", LevelsCount, w.Level(), w.Levels())
	}
	if w.BallCount() != DefaultBallCount {
		t.Errorf("Ball count should start at %d, got %d", DefaultBallCount, w.BallCount())
	}
	if w.IsBallLost() {
		t.Error("Ball should not start lost")
	}
	if w.Ball().SpeedX() == 0 || w.Ball().SpeedY() >= 0 {
		t.Errorf("Ball should be launched upward, got (%d, %d)", w.Ball().SpeedX(), w.Ball().SpeedY())
	}
	if w.Ball().Position() != core.Pt(300, 430) {
		t.Errorf("Ball should start at (300, 430), got %v", w.Ball().Position())
	}
}

func TestNewWallRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero arena", func(p *Params) { p.Area.W = 0 }},
		{"no lines", func(p *Params) { p.LineCount = 0 }},
		{"fewer bricks than lines", func(p *Params) { p.BrickCount = 2 }},
		{"zero ratio", func(p *Params) { p.BrickRatio = 0 }},
		{"wide paddle", func(p *Params) { p.PaddleWidth = 601 }},
		{"steel probability", func(p *Params) { p.Materials.SteelProbability = 1.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			if _, err := NewWall(p); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("NewWall should fail with ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestNextLevelProgression(t *testing.T) {
	w := newTestWall(t)

	for i := 1; i <= LevelsCount; i++ {
		if !w.HasLevel() {
			t.Fatalf("HasLevel should be true before level %d", i)
		}
		if err := w.NextLevel(); err != nil {
			t.Fatalf("NextLevel %d failed: %v", i, err)
		}
		if w.Level() != i {
			t.Errorf("Level() should be %d, got %d", i, w.Level())
		}
		if w.BrickCount() != len(w.Bricks()) {
			t.Errorf("BrickCount should equal the layout size %d, got %d", len(w.Bricks()), w.BrickCount())
		}
	}

	if w.HasLevel() {
		t.Error("HasLevel should be false after the last level")
	}
	if err := w.NextLevel(); !errors.Is(err, ErrNoMoreLevels) {
		t.Errorf("NextLevel past the end should return ErrNoMoreLevels, got %v", err)
	}
	if w.Level() != LevelsCount {
		t.Errorf("Failed NextLevel should not change the level, got %d", w.Level())
	}
}

func TestBorderReflection(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Point
		speed  [2]int
		want   [2]int
		result Collision
	}{
		{"left of arena", core.Point{X: -1, Y: 200}, [2]int{-2, -1}, [2]int{2, -1}, CollisionSide},
		{"right of arena", core.Point{X: 601, Y: 200}, [2]int{1, -2}, [2]int{-1, -2}, CollisionSide},
		{"above arena", core.Point{X: 300, Y: -1}, [2]int{1, -2}, [2]int{1, 2}, CollisionCeiling},
		{"inside", core.Point{X: 300, Y: 200}, [2]int{1, -2}, [2]int{1, -2}, CollisionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := emptyWall(t)
			w.Ball().MoveTo(tc.pos)
			w.Ball().SetSpeed(tc.speed[0], tc.speed[1])

			if got := w.FindImpacts(); got != tc.result {
				t.Errorf("FindImpacts() = %v, expected %v", got, tc.result)
			}
			if w.Ball().SpeedX() != tc.want[0] || w.Ball().SpeedY() != tc.want[1] {
				t.Errorf("velocity = (%d, %d), expected (%d, %d)",
					w.Ball().SpeedX(), w.Ball().SpeedY(), tc.want[0], tc.want[1])
			}
		})
	}
}

func TestBallLostBelowFloor(t *testing.T) {
	w := emptyWall(t)
	w.Ball().MoveTo(core.Point{X: 300, Y: 451})

	if got := w.FindImpacts(); got != CollisionFloor {
		t.Fatalf("FindImpacts() = %v, expected floor", got)
	}
	if !w.IsBallLost() || w.BallCount() != DefaultBallCount-1 {
		t.Errorf("Ball should be lost with %d balls left, got lost=%v balls=%d",
			DefaultBallCount-1, w.IsBallLost(), w.BallCount())
	}

	w.BallReset()
	if w.IsBallLost() {
		t.Error("BallReset should clear the lost flag")
	}
	if w.Ball().Position() != core.Pt(300, 430) || w.Paddle().Anchor() != core.Pt(300, 430) {
		t.Error("BallReset should return ball and paddle to the start point")
	}
}

func TestPaddleBounce(t *testing.T) {
	w := emptyWall(t)
	w.Ball().MoveTo(core.Point{X: 300, Y: 432})
	w.Ball().SetSpeed(1, 2)

	if got := w.FindImpacts(); got != CollisionPaddle {
		t.Fatalf("FindImpacts() = %v, expected paddle", got)
	}
	if w.Ball().SpeedY() != -2 || w.Ball().SpeedX() != 1 {
		t.Errorf("Paddle should reverse only y, got (%d, %d)", w.Ball().SpeedX(), w.Ball().SpeedY())
	}
}

func TestSingleClayBrickEndToEnd(t *testing.T) {
	rng := NewSimpleRNG(8)
	brick, err := NewBrick(KindClay, core.NewRect(280, 200, 40, 20), rng)
	if err != nil {
		t.Fatalf("NewBrick failed: %v", err)
	}

	w := newTestWall(t, WithLevels([]*Brick{brick}))
	if err := w.NextLevel(); err != nil {
		t.Fatalf("NextLevel failed: %v", err)
	}
	w.SetBallXSpeed(0)
	w.SetBallYSpeed(-2)

	for tick := 0; tick < 1000 && !w.IsDone(); tick++ {
		w.Move()
		w.FindImpacts()
	}

	if !w.IsDone() || w.BrickCount() != 0 {
		t.Fatalf("Wall should be done, got bricks=%d", w.BrickCount())
	}
	if !brick.IsBroken() {
		t.Error("Brick should be broken")
	}
	if w.Ball().SpeedY() != 2 {
		t.Errorf("Ball should bounce off the brick bottom, got vy=%d", w.Ball().SpeedY())
	}
}

func TestBrickHitMapsCrackDirection(t *testing.T) {
	rng := NewSimpleRNG(8)
	brick, _ := NewBrick(KindCement, core.NewRect(280, 200, 40, 20), rng)

	w := newTestWall(t, WithLevels([]*Brick{brick}))
	_ = w.NextLevel()

	// Up point inside the brick: the ball came from below.
	w.Ball().MoveTo(core.Point{X: 300, Y: 225})
	w.Ball().SetSpeed(1, -2)

	if got := w.FindImpacts(); got != CollisionBrick {
		t.Fatalf("FindImpacts() = %v, expected brick", got)
	}
	if w.Ball().SpeedY() != 2 || w.Ball().SpeedX() != 1 {
		t.Errorf("Bottom hit should reverse y only, got (%d, %d)", w.Ball().SpeedX(), w.Ball().SpeedY())
	}

	cracks := brick.Face().Cracks
	if len(cracks) != 1 {
		t.Fatalf("Cement should crack once, got %d paths", len(cracks))
	}
	if start := cracks[0][0]; start != core.Pt(300, 219) {
		t.Errorf("Crack should start at the ball's up point, got %v", start)
	}
	if end := cracks[0][len(cracks[0])-1]; end.Y != 200 {
		t.Errorf("Downward crack should end on the top edge, got %v", end)
	}
	if w.BrickCount() != 1 {
		t.Errorf("Cracked brick should still count, got %d", w.BrickCount())
	}
}

func TestUnbrokenBrickHitEndsResolution(t *testing.T) {
	brick, _ := NewBrick(KindCement, core.NewRect(0, 200, 40, 20), NewSimpleRNG(8))

	w := newTestWall(t, WithLevels([]*Brick{brick}))
	_ = w.NextLevel()

	// Center left of the arena, right point inside the brick. A cement hit
	// that does not break the brick still ends the tick, so the side check
	// must not reverse x a second time.
	w.Ball().MoveTo(core.Point{X: -1, Y: 210})
	w.Ball().SetSpeed(-2, 1)

	if got := w.FindImpacts(); got != CollisionBrick {
		t.Fatalf("FindImpacts() = %v, expected brick", got)
	}
	if brick.IsBroken() {
		t.Fatal("First hit should only crack cement")
	}
	if w.Ball().SpeedX() != 2 || w.Ball().SpeedY() != 1 {
		t.Errorf("Only the brick should reflect the ball, got (%d, %d)", w.Ball().SpeedX(), w.Ball().SpeedY())
	}
}

func TestBrickCountMatchesUnbroken(t *testing.T) {
	w := newTestWall(t)

	for w.HasLevel() {
		if err := w.NextLevel(); err != nil {
			t.Fatalf("NextLevel failed: %v", err)
		}
		for tick := 0; tick < 20000; tick++ {
			w.Move()
			w.FindImpacts()

			if got := countUnbroken(w.Bricks()); got != w.BrickCount() {
				t.Fatalf("level %d tick %d: BrickCount=%d but %d bricks unbroken", w.Level(), tick, w.BrickCount(), got)
			}
			if w.IsBallLost() {
				if w.BallEnd() {
					w.WallReset()
				}
				w.BallReset()
			}
			if w.IsDone() {
				break
			}
		}
	}
}

func TestWallReset(t *testing.T) {
	w := newTestWall(t)
	_ = w.NextLevel()

	for _, b := range w.Bricks()[:5] {
		b.SetImpact(core.Point{}, CrackUp)
	}
	w.Ball().MoveTo(core.Point{X: 300, Y: 460})
	w.FindImpacts()

	w.WallReset()
	if w.BrickCount() != len(w.Bricks()) || countUnbroken(w.Bricks()) != len(w.Bricks()) {
		t.Errorf("WallReset should repair every brick, got count=%d", w.BrickCount())
	}
	if w.BallCount() != DefaultBallCount {
		t.Errorf("WallReset should refill balls, got %d", w.BallCount())
	}
}

func TestBallEndAndResetBallCount(t *testing.T) {
	w := emptyWall(t)

	for range DefaultBallCount {
		w.Ball().MoveTo(core.Point{X: 300, Y: 460})
		w.FindImpacts()
		w.BallReset()
	}
	if !w.BallEnd() {
		t.Fatalf("BallEnd should be true after losing %d balls, got %d left", DefaultBallCount, w.BallCount())
	}

	w.ResetBallCount()
	if w.BallEnd() || w.BallCount() != DefaultBallCount {
		t.Errorf("ResetBallCount should refill balls, got %d", w.BallCount())
	}
}

func TestBallResetVelocities(t *testing.T) {
	w := newTestWall(t)
	seenX := map[int]bool{}
	seenY := map[int]bool{}

	for range 1000 {
		w.BallReset()
		x, y := w.Ball().SpeedX(), w.Ball().SpeedY()
		if x != -2 && x != -1 && x != 1 && x != 2 {
			t.Fatalf("BallReset x speed %d not in {-2,-1,1,2}", x)
		}
		if y != -1 && y != -2 {
			t.Fatalf("BallReset y speed %d not in {-1,-2}", y)
		}
		seenX[x] = true
		seenY[y] = true
	}

	if len(seenX) != 4 || len(seenY) != 2 {
		t.Errorf("BallReset should reach every launch speed, got x=%v y=%v", seenX, seenY)
	}
}

func TestWallDeterminism(t *testing.T) {
	run := func() Snapshot {
		w, err := NewWall(DefaultParams(), WithRand(NewSimpleRNG(12345)))
		if err != nil {
			t.Fatalf("NewWall failed: %v", err)
		}
		_ = w.NextLevel()
		_ = w.NextLevel()
		for tick := range 3000 {
			if tick%40 < 20 {
				w.Paddle().MoveLeft()
			} else {
				w.Paddle().MoveRight()
			}
			w.Move()
			w.FindImpacts()
			if w.IsBallLost() {
				w.BallReset()
			}
		}
		return w.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.BrickCount != s2.BrickCount || s1.BallX != s2.BallX || s1.BallY != s2.BallY {
		t.Error("Determinism failed: wall state differs")
	}
}

func TestSnapshotHashTracksMotion(t *testing.T) {
	w := newTestWall(t)
	before := w.Snapshot().Hash()
	if again := w.Snapshot().Hash(); again != before {
		t.Errorf("Hash of an unchanged wall should be stable, got %d and %d", before, again)
	}

	w.Move()
	if after := w.Snapshot().Hash(); after == before {
		t.Error("Hash should change after the ball moves")
	}
}

func TestWallAcceptsMathRand(t *testing.T) {
	w, err := NewWall(DefaultParams(), WithRand(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatalf("NewWall with math/rand source failed: %v", err)
	}
	if err := w.NextLevel(); err != nil {
		t.Fatalf("NextLevel failed: %v", err)
	}
	for range 100 {
		w.Move()
		w.FindImpacts()
	}
	if snap := w.Snapshot(); snap.RNGState != 0 {
		t.Errorf("Snapshot of a non-SimpleRNG wall should carry no RNG state, got %d", snap.RNGState)
	}
}

func TestWallLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	w := newTestWall(t, WithLogger(logger))

	_ = w.NextLevel()
	w.WallReset()

	out := buf.String()
	if !strings.Contains(out, "level installed") || !strings.Contains(out, "wall reset") {
		t.Errorf("Wall should log lifecycle events, got %q", out)
	}
}
