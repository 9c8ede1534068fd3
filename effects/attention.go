package effects

import (
	"image/color"

	"github.com/plus3/confetti/burst"
)

const (
	ShakeDuration = 0.5 // seconds
	ShakeOffset   = 5.0
	PulseDuration = 1.0 // default, seconds
	PulseScale    = 1.05
)

var (
	shakeColor = color.NRGBA{R: 0xDC, G: 0x35, B: 0x45, A: 0xFF}
	pulseColor = color.NRGBA{R: 246, G: 173, B: 85, A: 0xFF}
)

// outline is a ring drawn around a spot to draw the eye to it.
type outline struct {
	center   burst.Vec2
	size     float64
	color    color.NRGBA
	duration float64
	elapsed  float64
	motion   func(u float64) (dx, scale float64)
}

// Shake wobbles a red ring of the given diameter sideways, out to
// ShakeOffset each way, to flag a refused action.
func (l *Layer) Shake(center burst.Vec2, size float64) {
	l.enqueue(func(*burst.UpdateFrame) effect {
		return &outline{
			center:   center,
			size:     size,
			color:    shakeColor,
			duration: ShakeDuration,
			motion: func(u float64) (float64, float64) {
				return ShakeOffset * shakeCurve(u), 1
			},
		}
	})
}

// Pulse swells a ring of the given diameter to PulseScale and back over
// duration seconds, or PulseDuration when duration is not positive.
func (l *Layer) Pulse(center burst.Vec2, size, duration float64) {
	if duration <= 0 {
		duration = PulseDuration
	}
	l.enqueue(func(*burst.UpdateFrame) effect {
		return &outline{
			center:   center,
			size:     size,
			color:    pulseColor,
			duration: duration,
			motion: func(u float64) (float64, float64) {
				return 0, lerp(1, PulseScale, pulseCurve(u))
			},
		}
	})
}

// shakeCurve is 0 at the ends, -1 at a quarter and +1 at three quarters.
func shakeCurve(u float64) float64 {
	u = clamp01(u)
	switch {
	case u < 0.25:
		return -u / 0.25
	case u < 0.75:
		return lerp(-1, 1, (u-0.25)/0.5)
	default:
		return lerp(1, 0, (u-0.75)/0.25)
	}
}

// pulseCurve rises from 0 to 1 at the midpoint and falls back.
func pulseCurve(u float64) float64 {
	u = clamp01(u)
	if u < 0.5 {
		return u * 2
	}
	return (1 - u) * 2
}

func (o *outline) sprite() burst.Sprite {
	return burst.Sprite{Color: o.color, Size: o.size, Shape: burst.ShapeRing}
}

func (o *outline) transform() burst.Transform {
	dx, scale := o.motion(clamp01(o.elapsed / o.duration))
	return burst.Transform{
		X:     o.center.X + dx,
		Y:     o.center.Y,
		Scale: scale,
		Alpha: 1,
	}
}

func (o *outline) advance(dt float64) bool {
	o.elapsed += dt
	return o.elapsed < o.duration
}

func (o *outline) finish() {}
