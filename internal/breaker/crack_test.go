package breaker

import (
	"math"
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

func TestCrackEndsOnOppositeEdge(t *testing.T) {
	rect := core.NewRect(100, 50, 60, 20)

	tests := []struct {
		dir   CrackDirection
		start core.Point
		check func(end core.Point) bool
	}{
		{CrackLeft, core.Point{X: 100, Y: 60}, func(e core.Point) bool {
			return e.X == 160 && e.Y >= 50 && e.Y < 70
		}},
		{CrackRight, core.Point{X: 159, Y: 60}, func(e core.Point) bool {
			return e.X == 100 && e.Y >= 50 && e.Y < 70
		}},
		{CrackUp, core.Point{X: 130, Y: 50}, func(e core.Point) bool {
			return e.Y == 70 && e.X >= 100 && e.X < 160
		}},
		{CrackDown, core.Point{X: 130, Y: 69}, func(e core.Point) bool {
			return e.Y == 50 && e.X >= 100 && e.X < 160
		}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			c := NewCrack(DefaultCrackDepth, DefaultCrackSteps, NewSimpleRNG(5))
			for range 50 {
				c.Make(rect, tc.start, tc.dir)
			}
			for _, path := range c.Paths() {
				if len(path) != DefaultCrackSteps+1 {
					t.Fatalf("Path should have %d points, got %d", DefaultCrackSteps+1, len(path))
				}
				if path[0] != tc.start {
					t.Errorf("Path should start at %v, got %v", tc.start, path[0])
				}
				if end := path[len(path)-1]; !tc.check(end) {
					t.Errorf("Path end %v is not on the opposite edge", end)
				}
			}
		})
	}
}

func TestCrackStartTruncatesImpactPoint(t *testing.T) {
	c := NewCrack(1, 4, NewSimpleRNG(2))
	c.Make(core.NewRect(0, 0, 60, 20), core.Point{X: 12.7, Y: 20.5}, CrackUp)

	if got := c.Paths()[0][0]; got != (core.Point{X: 12, Y: 20}) {
		t.Errorf("Path start should be the integer impact point, got %v", got)
	}
}

func TestCrackJitterAxisAndBounds(t *testing.T) {
	const depth = 2
	rect := core.NewRect(0, 0, 60, 20)
	c := NewCrack(depth, DefaultCrackSteps, NewSimpleRNG(11))

	middle := func(i int) bool {
		low := DefaultCrackSteps / 3
		return i > low && i < 2*low
	}

	jumped := false
	for _, dir := range []CrackDirection{CrackLeft, CrackUp} {
		c.Reset()
		for range 40 {
			c.Make(rect, core.Point{X: 0, Y: 0}, dir)
		}
		for _, path := range c.Paths() {
			start, end := path[0], path[len(path)-1]
			w := (end.X - start.X) / DefaultCrackSteps
			h := (end.Y - start.Y) / DefaultCrackSteps

			for i := 1; i < DefaultCrackSteps; i++ {
				ix := start.X + float64(i)*w
				iy := start.Y + float64(i)*h
				along, across := path[i].X-ix, path[i].Y-iy
				if dir == CrackUp {
					along, across = path[i].Y-iy, path[i].X-ix
				}

				if along != 0 {
					t.Fatalf("%s: point %d moved along the travel axis by %v", dir, i, along)
				}
				limit := float64(depth)
				if middle(i) {
					limit += float64(depth * jumpFactor)
				}
				if math.Abs(across) > limit+1e-9 {
					t.Fatalf("%s: point %d jitter %v exceeds %v", dir, i, across, limit)
				}
				if middle(i) && math.Abs(across) > depth+1e-9 {
					jumped = true
				}
			}
		}
	}

	if !jumped {
		t.Error("Middle section should occasionally jump beyond the base jitter")
	}
}

func TestCrackAccumulatesAndResets(t *testing.T) {
	c := NewCrack(1, 10, NewSimpleRNG(4))
	rect := core.NewRect(0, 0, 60, 20)

	c.Make(rect, core.Point{X: 30, Y: 20}, CrackUp)
	c.Make(rect, core.Point{X: 0, Y: 10}, CrackRight)
	if len(c.Paths()) != 2 {
		t.Fatalf("Crack should accumulate paths, got %d", len(c.Paths()))
	}

	c.Make(rect, core.Point{X: 0, Y: 10}, CrackDirection(0))
	if len(c.Paths()) != 2 {
		t.Error("Unknown direction should not add a path")
	}

	c.Reset()
	if len(c.Paths()) != 0 {
		t.Errorf("Reset should clear paths, got %d", len(c.Paths()))
	}
}

func TestNewCrackClampsSettings(t *testing.T) {
	c := NewCrack(-3, 0, NewSimpleRNG(1))
	if c.Depth() != 0 {
		t.Errorf("Negative depth should clamp to 0, got %d", c.Depth())
	}
	if c.Steps() != 1 {
		t.Errorf("Steps below 1 should clamp to 1, got %d", c.Steps())
	}
}

func TestCrackDegenerateBounds(t *testing.T) {
	c := NewCrack(1, 0, NewSimpleRNG(4))
	c.Make(core.NewRect(5, 5, 0, 0), core.Point{X: 5, Y: 5}, CrackLeft)

	paths := c.Paths()
	if len(paths) != 1 || len(paths[0]) != 2 {
		t.Fatalf("Single-step crack should have 2 points, got %v", paths)
	}
	if paths[0][1] != (core.Point{X: 5, Y: 5}) {
		t.Errorf("Zero-span edge should end at its origin, got %v", paths[0][1])
	}
}
