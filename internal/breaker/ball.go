// Package breaker implements the brick breaker simulation: ball kinematics,
// brick materials and their damage policy, crack generation for cement
// bricks, the paddle, and the wall that resolves impacts once per tick.
//
// The package has no rendering or input code. A driver calls Wall.Move and
// Wall.FindImpacts once per fixed tick and reads the observable state.
package breaker

import "github.com/vovakirdan/brick-breaker/internal/core"

// DefaultBallSize is the diameter of the rubber ball in arena units.
const DefaultBallSize = 12

// Ball is a kinematic point mass with an elliptical bounding shape.
// The four sample points used for collision detection are the midpoints of
// the shape's bounding box edges and always follow the center.
type Ball struct {
	center core.Point
	width  float64
	height float64

	speedX int
	speedY int

	inner  core.Color
	border core.Color
}

// NewBall creates a ball centered at center with the given bounding size.
// The ball starts at rest.
func NewBall(center core.Point, width, height float64) *Ball {
	return &Ball{
		center: center,
		width:  width,
		height: height,
		inner:  core.ColorRed,
		border: core.ColorDarkRed,
	}
}

// NewRubberBall creates the standard red ball.
func NewRubberBall(center core.Point) *Ball {
	return NewBall(center, DefaultBallSize, DefaultBallSize)
}

// Move advances the center by one velocity step.
func (b *Ball) Move() {
	b.center = b.center.Add(float64(b.speedX), float64(b.speedY))
}

// MoveTo teleports the ball. Velocity is left untouched.
func (b *Ball) MoveTo(p core.Point) {
	b.center = p
}

// SetSpeed sets both velocity components.
func (b *Ball) SetSpeed(x, y int) {
	b.speedX = x
	b.speedY = y
}

// SetXSpeed sets the horizontal velocity.
func (b *Ball) SetXSpeed(s int) {
	b.speedX = s
}

// SetYSpeed sets the vertical velocity.
func (b *Ball) SetYSpeed(s int) {
	b.speedY = s
}

// ReverseX negates the horizontal velocity.
func (b *Ball) ReverseX() {
	b.speedX = -b.speedX
}

// ReverseY negates the vertical velocity.
func (b *Ball) ReverseY() {
	b.speedY = -b.speedY
}

// Position returns the ball center.
func (b *Ball) Position() core.Point {
	return b.center
}

// SpeedX returns the horizontal velocity.
func (b *Ball) SpeedX() int {
	return b.speedX
}

// SpeedY returns the vertical velocity.
func (b *Ball) SpeedY() int {
	return b.speedY
}

// Width returns the horizontal extent of the ball shape.
func (b *Ball) Width() float64 {
	return b.width
}

// Height returns the vertical extent of the ball shape.
func (b *Ball) Height() float64 {
	return b.height
}

// Bounds returns the top-left corner of the ball's bounding box and its size.
func (b *Ball) Bounds() (topLeft core.Point, width, height float64) {
	return b.center.Add(-b.width/2, -b.height/2), b.width, b.height
}

// Up returns the top sample point.
func (b *Ball) Up() core.Point {
	return b.center.Add(0, -b.height/2)
}

// Down returns the bottom sample point.
func (b *Ball) Down() core.Point {
	return b.center.Add(0, b.height/2)
}

// Left returns the left sample point.
func (b *Ball) Left() core.Point {
	return b.center.Add(-b.width/2, 0)
}

// Right returns the right sample point.
func (b *Ball) Right() core.Point {
	return b.center.Add(b.width/2, 0)
}

// InnerColor returns the fill color.
func (b *Ball) InnerColor() core.Color {
	return b.inner
}

// BorderColor returns the outline color.
func (b *Ball) BorderColor() core.Color {
	return b.border
}
