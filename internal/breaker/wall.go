package breaker

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

var (
	// ErrNoMoreLevels is returned by NextLevel after the last level.
	ErrNoMoreLevels = errors.New("no more levels")
	// ErrInvalidParams is returned by NewWall for degenerate geometry.
	ErrInvalidParams = errors.New("invalid wall parameters")
)

// Defaults of the standard arena.
const (
	DefaultArenaWidth  = 600
	DefaultArenaHeight = 450
	DefaultBrickCount  = 30
	DefaultLineCount   = 3
	DefaultBrickRatio  = 3
	DefaultBallCount   = 3
)

// Params describes the geometry of a wall.
type Params struct {
	Area       core.Rect
	BrickCount int
	LineCount  int
	BrickRatio float64
	BallStart  core.Point
	BallSize   float64
	Balls      int

	PaddleWidth  int
	PaddleHeight int
	PaddleSpeed  int

	Materials Materials
}

// DefaultParams returns the parameters of the standard 600x450 arena.
func DefaultParams() Params {
	return Params{
		Area:         core.NewRect(0, 0, DefaultArenaWidth, DefaultArenaHeight),
		BrickCount:   DefaultBrickCount,
		LineCount:    DefaultLineCount,
		BrickRatio:   DefaultBrickRatio,
		BallStart:    core.Pt(300, 430),
		BallSize:     DefaultBallSize,
		Balls:        DefaultBallCount,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		PaddleSpeed:  DefaultPaddleSpeed,
		Materials:    DefaultMaterials(),
	}
}

// Validate checks that the parameters describe a playable wall.
func (p Params) Validate() error {
	switch {
	case p.Area.W <= 0 || p.Area.H <= 0:
		return fmt.Errorf("%w: arena must have a positive size", ErrInvalidParams)
	case p.LineCount <= 0:
		return fmt.Errorf("%w: line count must be positive", ErrInvalidParams)
	case p.BrickCount < p.LineCount:
		return fmt.Errorf("%w: brick count %d is less than line count %d", ErrInvalidParams, p.BrickCount, p.LineCount)
	case p.BrickRatio <= 0:
		return fmt.Errorf("%w: brick ratio must be positive", ErrInvalidParams)
	case p.BallSize <= 0:
		return fmt.Errorf("%w: ball size must be positive", ErrInvalidParams)
	case p.Balls <= 0:
		return fmt.Errorf("%w: ball count must be positive", ErrInvalidParams)
	case p.PaddleWidth <= 0 || p.PaddleHeight <= 0 || p.PaddleWidth > p.Area.W:
		return fmt.Errorf("%w: paddle does not fit the arena", ErrInvalidParams)
	case p.PaddleSpeed < 0:
		return fmt.Errorf("%w: paddle speed must not be negative", ErrInvalidParams)
	case p.Materials.SteelProbability < 0 || p.Materials.SteelProbability > 1:
		return fmt.Errorf("%w: steel probability must be within [0, 1]", ErrInvalidParams)
	}
	return nil
}

// Collision is the outcome of one FindImpacts call.
type Collision int

// Collision outcomes, in resolution order.
const (
	CollisionNone Collision = iota
	CollisionPaddle
	CollisionBrick
	CollisionSide
	CollisionCeiling
	CollisionFloor
)

func (c Collision) String() string {
	switch c {
	case CollisionPaddle:
		return "paddle"
	case CollisionBrick:
		return "brick"
	case CollisionSide:
		return "side"
	case CollisionCeiling:
		return "ceiling"
	case CollisionFloor:
		return "floor"
	default:
		return "none"
	}
}

// Option configures a Wall.
type Option func(*Wall)

// WithRand sets the randomness source. Without it the wall seeds a
// SimpleRNG from the clock.
func WithRand(r Random) Option {
	return func(w *Wall) {
		w.rng = r
	}
}

// WithLevels replaces the built-in layouts. Bricks are used as given.
func WithLevels(levels ...[]*Brick) Option {
	return func(w *Wall) {
		w.levels = levels
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(w *Wall) {
		if l != nil {
			w.log = l
		}
	}
}

// Wall is one playing field: bricks, ball, paddle and the counters that
// drive the game. It is not safe for concurrent use.
type Wall struct {
	area       core.Rect
	startPoint core.Point
	balls      int

	bricks []*Brick
	levels [][]*Brick
	level  int

	ball   *Ball
	paddle *Paddle

	brickCount int
	ballCount  int
	ballLost   bool

	rng Random
	log *log.Logger
}

// NewWall builds a wall with the four standard layouts and a launched ball.
// No level is installed until NextLevel is called.
func NewWall(p Params, opts ...Option) (*Wall, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w := &Wall{
		area:       p.Area,
		startPoint: p.BallStart,
		balls:      p.Balls,
		ballCount:  p.Balls,
		log:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = NewSimpleRNG(time.Now().UnixNano())
	}
	if w.levels == nil {
		levels, err := MakeLevels(p, w.rng)
		if err != nil {
			return nil, err
		}
		w.levels = levels
	}

	w.ball = NewBall(p.BallStart, p.BallSize, p.BallSize)
	w.ball.SetSpeed(w.launchSpeed())
	w.paddle = NewPaddle(p.BallStart, p.PaddleWidth, p.PaddleHeight, p.PaddleSpeed, p.Area)

	return w, nil
}

// launchSpeed picks a launch velocity: x in {-2,-1,1,2}, y in {-1,-2}.
func (w *Wall) launchSpeed() (int, int) {
	x := 0
	for x == 0 {
		x = w.rng.IntN(5) - 2
	}
	y := 0
	for y == 0 {
		y = -w.rng.IntN(3)
	}
	return x, y
}

// Move advances the paddle and the ball by one tick.
func (w *Wall) Move() {
	w.paddle.Move()
	w.ball.Move()
}

// FindImpacts resolves at most one collision for the current tick.
// Checks run paddle, bricks, side walls, ceiling, floor; the first match
// wins.
func (w *Wall) FindImpacts() Collision {
	if w.paddle.Impact(w.ball) {
		w.ball.ReverseY()
		return CollisionPaddle
	}
	if w.impactWall() {
		return CollisionBrick
	}

	p := w.ball.Position()
	switch {
	case p.X < float64(w.area.X) || p.X > float64(w.area.Right()):
		w.ball.ReverseX()
		return CollisionSide
	case p.Y < float64(w.area.Y):
		w.ball.ReverseY()
		return CollisionCeiling
	case p.Y > float64(w.area.Bottom()):
		w.ballCount--
		w.ballLost = true
		w.log.Debug("ball lost", "balls", w.ballCount)
		return CollisionFloor
	}
	return CollisionNone
}

// impactWall hits the first brick touched by the ball.
func (w *Wall) impactWall() bool {
	for _, b := range w.bricks {
		var (
			point core.Point
			dir   CrackDirection
		)
		switch b.FindImpact(w.ball) {
		case ImpactUp:
			w.ball.ReverseY()
			point, dir = w.ball.Down(), CrackUp
		case ImpactDown:
			w.ball.ReverseY()
			point, dir = w.ball.Up(), CrackDown
		case ImpactLeft:
			w.ball.ReverseX()
			point, dir = w.ball.Right(), CrackRight
		case ImpactRight:
			w.ball.ReverseX()
			point, dir = w.ball.Left(), CrackLeft
		default:
			continue
		}
		if b.SetImpact(point, dir) {
			w.brickCount--
		}
		return true
	}
	return false
}

// BallReset puts the paddle and ball back at the start point with a fresh
// launch velocity.
func (w *Wall) BallReset() {
	w.paddle.MoveTo(w.startPoint)
	w.ball.MoveTo(w.startPoint)
	w.ball.SetSpeed(w.launchSpeed())
	w.ballLost = false
}

// WallReset repairs every brick of the current level and refills the balls.
func (w *Wall) WallReset() {
	for _, b := range w.bricks {
		b.Repair()
	}
	w.brickCount = len(w.bricks)
	w.ballCount = w.balls
	w.log.Debug("wall reset", "level", w.level, "bricks", w.brickCount)
}

// NextLevel installs the next layout.
func (w *Wall) NextLevel() error {
	if !w.HasLevel() {
		return ErrNoMoreLevels
	}
	w.bricks = w.levels[w.level]
	w.level++
	w.brickCount = len(w.bricks)
	w.log.Debug("level installed", "level", w.level, "bricks", w.brickCount)
	return nil
}

// HasLevel reports whether another layout remains.
func (w *Wall) HasLevel() bool {
	return w.level < len(w.levels)
}

// IsDone reports whether every brick of the current level is broken.
func (w *Wall) IsDone() bool {
	return w.brickCount == 0
}

// BallEnd reports whether no balls remain.
func (w *Wall) BallEnd() bool {
	return w.ballCount == 0
}

// SetBallXSpeed overrides the horizontal ball velocity.
func (w *Wall) SetBallXSpeed(s int) {
	w.ball.SetXSpeed(s)
}

// SetBallYSpeed overrides the vertical ball velocity.
func (w *Wall) SetBallYSpeed(s int) {
	w.ball.SetYSpeed(s)
}

// ResetBallCount refills the balls.
func (w *Wall) ResetBallCount() {
	w.ballCount = w.balls
}

// BrickCount returns the number of unbroken bricks.
func (w *Wall) BrickCount() int {
	return w.brickCount
}

// BallCount returns the remaining balls.
func (w *Wall) BallCount() int {
	return w.ballCount
}

// IsBallLost reports whether the ball fell past the floor since the last
// BallReset.
func (w *Wall) IsBallLost() bool {
	return w.ballLost
}

// Bricks returns the bricks of the current level.
func (w *Wall) Bricks() []*Brick {
	return w.bricks
}

// Ball returns the ball.
func (w *Wall) Ball() *Ball {
	return w.ball
}

// Paddle returns the paddle.
func (w *Wall) Paddle() *Paddle {
	return w.paddle
}

// Area returns the arena rectangle.
func (w *Wall) Area() core.Rect {
	return w.area
}

// Level returns the number of levels installed so far; 1 is the first level.
func (w *Wall) Level() int {
	return w.level
}

// Levels returns the total number of layouts.
func (w *Wall) Levels() int {
	return len(w.levels)
}
