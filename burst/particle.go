package burst

import "image/color"

// ElementId identifies a display element. Ids are handed out by a simulator
// in increasing order and are never reused.
type ElementId uint64

// Shape selects how a display element is drawn.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeRing
	ShapeBadge // rounded label, text in Sprite.Label
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeRing:
		return "ring"
	case ShapeBadge:
		return "badge"
	}
	return "unknown"
}

// Sprite is the fixed appearance of a display element.
type Sprite struct {
	Color color.NRGBA
	Size  float64
	Shape Shape
	Label string
}

// Transform is the per-frame placement of a display element.
// Angle is in degrees.
type Transform struct {
	X, Y  float64
	Angle float64
	Scale float64
	Alpha float64
}

// Particle is a single confetti piece.
type Particle struct {
	Id       ElementId
	Position Vec2
	Velocity Vec2
	Sprite   Sprite
	Angle    float64
	Frames   int
}

// Transform returns the particle's current placement.
func (p *Particle) Transform() Transform {
	return Transform{
		X:     p.Position.X,
		Y:     p.Position.Y,
		Angle: p.Angle,
		Scale: 1,
		Alpha: 1,
	}
}

// DefaultPalette is the confetti colour set.
var DefaultPalette = []color.NRGBA{
	{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF},
	{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF},
	{R: 0x45, G: 0xB7, B: 0xD1, A: 0xFF},
	{R: 0x96, G: 0xCE, B: 0xB4, A: 0xFF},
	{R: 0xFF, G: 0xEA, B: 0xA7, A: 0xFF},
	{R: 0xDD, G: 0xA0, B: 0xDD, A: 0xFF},
	{R: 0x98, G: 0xFB, B: 0x98, A: 0xFF},
}
