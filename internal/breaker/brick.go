package breaker

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// ErrUnknownBrickKind is returned when a brick is requested for a kind
// outside Clay, Steel and Cement.
var ErrUnknownBrickKind = errors.New("unknown brick kind")

// Kind is the material of a brick.
type Kind int

// Brick kinds.
const (
	KindClay Kind = iota + 1
	KindSteel
	KindCement
)

func (k Kind) String() string {
	switch k {
	case KindClay:
		return "clay"
	case KindSteel:
		return "steel"
	case KindCement:
		return "cement"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Impact is the side of a brick the ball struck.
type Impact int

// Impact sides. ImpactNone means no sample point is inside the brick.
const (
	ImpactNone Impact = iota
	ImpactUp
	ImpactDown
	ImpactLeft
	ImpactRight
)

func (i Impact) String() string {
	switch i {
	case ImpactUp:
		return "up"
	case ImpactDown:
		return "down"
	case ImpactLeft:
		return "left"
	case ImpactRight:
		return "right"
	default:
		return "none"
	}
}

// Materials holds the tunable parameters of brick damage.
type Materials struct {
	SteelProbability float64 // chance a hit on steel applies damage
	CrackDepth       int     // jitter bound of cement cracks
	CrackSteps       int     // segments per crack path
}

// DefaultMaterials returns the standard material parameters.
func DefaultMaterials() Materials {
	return Materials{
		SteelProbability: DefaultSteelProbability,
		CrackDepth:       DefaultCrackDepth,
		CrackSteps:       DefaultCrackSteps,
	}
}

// DefaultSteelProbability is the chance that a hit on a steel brick counts.
const DefaultSteelProbability = 0.4

type material struct {
	name     string
	border   core.Color
	inner    core.Color
	strength int
}

var materials = map[Kind]material{
	KindClay:   {name: "Clay Brick", border: core.ColorGray, inner: core.ColorOrange, strength: 1},
	KindSteel:  {name: "Steel Brick", border: core.ColorSilver, inner: core.ColorGray, strength: 1},
	KindCement: {name: "Cement Brick", border: core.ColorSand, inner: core.ColorWhite, strength: 2},
}

// Face is the drawable shape of a brick: its rectangle plus any crack
// polylines carved into it.
type Face struct {
	Rect   core.Rect
	Cracks [][]core.Point
}

// Brick is a destructible block. The kind decides strength, colors and how
// an impact is turned into damage.
//
// Invariant: broken == (strength == 0) and 0 <= strength <= fullStrength.
type Brick struct {
	kind   Kind
	name   string
	rect   core.Rect
	border core.Color
	inner  core.Color

	fullStrength int
	strength     int
	broken       bool

	steelProbability float64
	crack            *Crack
	rng              Random
}

// NewBrick creates a brick of the given kind occupying rect with the
// default material parameters.
func NewBrick(kind Kind, rect core.Rect, rng Random) (*Brick, error) {
	return NewBrickWith(kind, rect, rng, DefaultMaterials())
}

// NewBrickWith creates a brick with explicit material parameters.
func NewBrickWith(kind Kind, rect core.Rect, rng Random, m Materials) (*Brick, error) {
	mat, ok := materials[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBrickKind, kind)
	}
	b := &Brick{
		kind:             kind,
		name:             mat.name,
		rect:             rect,
		border:           mat.border,
		inner:            mat.inner,
		fullStrength:     mat.strength,
		strength:         mat.strength,
		steelProbability: m.SteelProbability,
		rng:              rng,
	}
	if kind == KindCement {
		b.crack = NewCrack(m.CrackDepth, m.CrackSteps, rng)
	}
	return b, nil
}

// FindImpact reports which side of the brick the ball hit.
// The sample points are checked right, left, up, down and the first one
// inside the rectangle decides. Broken bricks are never hit.
func (b *Brick) FindImpact(ball *Ball) Impact {
	if b.broken {
		return ImpactNone
	}
	switch {
	case b.rect.ContainsPoint(ball.Right()):
		return ImpactLeft
	case b.rect.ContainsPoint(ball.Left()):
		return ImpactRight
	case b.rect.ContainsPoint(ball.Up()):
		return ImpactDown
	case b.rect.ContainsPoint(ball.Down()):
		return ImpactUp
	}
	return ImpactNone
}

// SetImpact applies one hit at point and reports whether the brick is now
// broken. A broken brick ignores further hits and reports false.
func (b *Brick) SetImpact(point core.Point, dir CrackDirection) bool {
	if b.broken {
		return false
	}
	switch b.kind {
	case KindSteel:
		if b.rng.Float64() < b.steelProbability {
			b.impact()
		}
	case KindCement:
		b.impact()
		if !b.broken {
			b.crack.Make(b.rect, point, dir)
		}
	default:
		b.impact()
	}
	return b.broken
}

func (b *Brick) impact() {
	b.strength--
	b.broken = b.strength == 0
}

// Repair restores full strength and removes cracks.
func (b *Brick) Repair() {
	b.broken = false
	b.strength = b.fullStrength
	if b.crack != nil {
		b.crack.Reset()
	}
}

// IsBroken reports whether the brick has been destroyed.
func (b *Brick) IsBroken() bool {
	return b.broken
}

// Kind returns the brick material.
func (b *Brick) Kind() Kind {
	return b.kind
}

// Name returns the display name of the material.
func (b *Brick) Name() string {
	return b.name
}

// Rect returns the brick rectangle.
func (b *Brick) Rect() core.Rect {
	return b.rect
}

// Face returns the brick shape including crack paths.
func (b *Brick) Face() Face {
	f := Face{Rect: b.rect}
	if b.crack != nil {
		f.Cracks = b.crack.Paths()
	}
	return f
}

// Strength returns the remaining hit points.
func (b *Brick) Strength() int {
	return b.strength
}

// FullStrength returns the hit points of an undamaged brick.
func (b *Brick) FullStrength() int {
	return b.fullStrength
}

// BorderColor returns the outline color.
func (b *Brick) BorderColor() core.Color {
	return b.border
}

// InnerColor returns the fill color.
func (b *Brick) InnerColor() core.Color {
	return b.inner
}
