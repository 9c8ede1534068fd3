package effects

import (
	"image/color"

	"github.com/plus3/confetti/burst"
)

const (
	RippleDuration = 0.6 // seconds
	RippleMaxScale = 2.0
	RippleAlpha    = 0.4
)

var rippleColor = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

type ripple struct {
	center  burst.Vec2
	size    float64
	elapsed float64
}

// Ripple expands a translucent disc of the given diameter from center.
func (l *Layer) Ripple(center burst.Vec2, size float64) {
	l.enqueue(func(*burst.UpdateFrame) effect {
		return &ripple{center: center, size: size}
	})
}

func (r *ripple) sprite() burst.Sprite {
	return burst.Sprite{Color: rippleColor, Size: r.size, Shape: burst.ShapeCircle}
}

func (r *ripple) progress() float64 {
	return clamp01(r.elapsed / RippleDuration)
}

func (r *ripple) transform() burst.Transform {
	u := easeOutCubic(r.progress())
	return burst.Transform{
		X:     r.center.X,
		Y:     r.center.Y,
		Scale: RippleMaxScale * u,
		Alpha: RippleAlpha * (1 - u),
	}
}

func (r *ripple) advance(dt float64) bool {
	r.elapsed += dt
	return r.elapsed < RippleDuration
}

func (r *ripple) finish() {}
