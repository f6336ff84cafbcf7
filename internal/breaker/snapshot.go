package breaker

import "math"

// Snapshot is a flat copy of the observable wall state.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Level      int
	BrickCount int
	BallCount  int
	BallLost   bool

	BallX  float64
	BallY  float64
	SpeedX int
	SpeedY int

	PaddleX    int
	MoveAmount int

	// Each brick is 4 ints: Kind, Strength, Broken, CrackPaths
	BrickData []int

	// Zero unless the wall draws from a SimpleRNG
	RNGState uint64
}

// Snapshot returns the current wall state.
func (w *Wall) Snapshot() Snapshot {
	brickData := make([]int, 0, len(w.bricks)*4)
	for _, b := range w.bricks {
		broken := 0
		if b.broken {
			broken = 1
		}
		cracks := 0
		if b.crack != nil {
			cracks = len(b.crack.paths)
		}
		brickData = append(brickData, int(b.kind), b.strength, broken, cracks)
	}

	var rngState uint64
	if r, ok := w.rng.(*SimpleRNG); ok {
		rngState = r.State()
	}

	pos := w.ball.Position()
	return Snapshot{
		Level:      w.level,
		BrickCount: w.brickCount,
		BallCount:  w.ballCount,
		BallLost:   w.ballLost,
		BallX:      pos.X,
		BallY:      pos.Y,
		SpeedX:     w.ball.SpeedX(),
		SpeedY:     w.ball.SpeedY(),
		PaddleX:    w.paddle.anchorX,
		MoveAmount: w.paddle.moveAmount,
		BrickData:  brickData,
		RNGState:   rngState,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := uint64(snap.Level)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BrickCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)  //#nosec G115 -- hash computation
	if snap.BallLost {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + uint64(snap.SpeedX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpeedY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MoveAmount) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h*31 + snap.RNGState
}
