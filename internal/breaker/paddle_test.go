package breaker

import (
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

func newTestPaddle() *Paddle {
	return NewPaddle(core.Pt(300, 430), DefaultPaddleWidth, DefaultPaddleHeight, DefaultPaddleSpeed,
		core.NewRect(0, 0, DefaultArenaWidth, DefaultArenaHeight))
}

func TestPaddleFace(t *testing.T) {
	p := newTestPaddle()

	if got := p.Face(); got != core.NewRect(225, 430, 150, 10) {
		t.Errorf("Face() = %+v, expected anchor at the middle of the top edge", got)
	}
	if lo, hi := p.Bounds(); lo != 75 || hi != 525 {
		t.Errorf("Bounds() = (%d, %d), expected (75, 525)", lo, hi)
	}
}

func TestPaddleMoveStaysInBounds(t *testing.T) {
	p := newTestPaddle()

	p.MoveRight()
	for range 100 {
		p.Move()
	}
	if got := p.Anchor().X; got != 525 {
		t.Errorf("Paddle should stop at the right bound 525, got %v", got)
	}
	if p.Face().Right() != DefaultArenaWidth {
		t.Errorf("Face should touch the right arena edge, got %d", p.Face().Right())
	}

	p.MoveLeft()
	for range 200 {
		p.Move()
	}
	if got := p.Anchor().X; got != 75 {
		t.Errorf("Paddle should stop at the left bound 75, got %v", got)
	}

	p.Stop()
	p.Move()
	if p.MoveAmount() != 0 || p.Anchor().X != 75 {
		t.Error("Stopped paddle should not move")
	}
}

func TestPaddleRejectsOvershoot(t *testing.T) {
	p := NewPaddle(core.Pt(300, 430), 150, 10, 7, core.NewRect(0, 0, 600, 450))
	p.MoveRight()
	for range 100 {
		p.Move()
	}

	// 300 + 32*7 = 524; the next step would land on 531 > 525.
	if got := p.Anchor().X; got != 524 {
		t.Errorf("Overshooting move should be discarded, anchor %v", got)
	}
}

func TestPaddleMoveToKeepsMoveAmount(t *testing.T) {
	p := newTestPaddle()
	p.MoveLeft()
	p.MoveTo(core.Pt(100, 430))

	if p.MoveAmount() != -DefaultPaddleSpeed {
		t.Errorf("MoveTo should keep the move amount, got %d", p.MoveAmount())
	}
	if p.Face().X != 25 {
		t.Errorf("MoveTo should reposition the face, got x=%d", p.Face().X)
	}
}

func TestPaddleImpact(t *testing.T) {
	p := newTestPaddle()

	tests := []struct {
		name   string
		center core.Point
		want   bool
	}{
		{"center and down inside", core.Point{X: 300, Y: 432}, true},
		{"only center inside", core.Point{X: 300, Y: 436}, false},
		{"only down inside", core.Point{X: 300, Y: 425}, false},
		{"beside the paddle", core.Point{X: 100, Y: 432}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Impact(NewRubberBall(tc.center)); got != tc.want {
				t.Errorf("Impact() = %v, expected %v", got, tc.want)
			}
		})
	}
}
