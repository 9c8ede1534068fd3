package effects

import (
	"image/color"

	"github.com/charmbracelet/harmonica"
	"github.com/plus3/confetti/burst"
)

const (
	TransferDelay     = 0.1 // seconds before the glyph starts moving
	TransferFlight    = 2.0 // seconds spent fading and shrinking
	TransferSize      = 24.0
	TransferEndScale  = 0.5
	TransferSpin      = 360.0
	TransferFrequency = 6.0
	TransferDamping   = 1.0
)

var transferColor = color.NRGBA{R: 0x28, G: 0xA7, B: 0x45, A: 0xFF}

type transfer struct {
	to      burst.Vec2
	pos     burst.Vec2
	vel     burst.Vec2
	elapsed float64
	done    func()
}

// Transfer flies a money glyph from one point to another, calling done once
// it has been removed from the display. done may be nil.
func (l *Layer) Transfer(from, to burst.Vec2, done func()) {
	l.enqueue(func(*burst.UpdateFrame) effect {
		return &transfer{to: to, pos: from, done: done}
	})
}

func (t *transfer) sprite() burst.Sprite {
	return burst.Sprite{Color: transferColor, Size: TransferSize, Shape: burst.ShapeSquare}
}

func (t *transfer) flight() float64 {
	return easeOutQuad((t.elapsed - TransferDelay) / TransferFlight)
}

func (t *transfer) transform() burst.Transform {
	u := t.flight()
	return burst.Transform{
		X:     t.pos.X,
		Y:     t.pos.Y,
		Angle: TransferSpin * u,
		Scale: lerp(1, TransferEndScale, u),
		Alpha: 1 - u,
	}
}

func (t *transfer) advance(dt float64) bool {
	t.elapsed += dt
	if t.elapsed > TransferDelay && dt > 0 {
		spring := harmonica.NewSpring(dt, TransferFrequency, TransferDamping)
		t.pos.X, t.vel.X = spring.Update(t.pos.X, t.vel.X, t.to.X)
		t.pos.Y, t.vel.Y = spring.Update(t.pos.Y, t.vel.Y, t.to.Y)
	}
	return t.elapsed < TransferDelay+TransferFlight
}

func (t *transfer) finish() {
	if t.done != nil {
		t.done()
	}
}
