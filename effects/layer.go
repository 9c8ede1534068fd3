// Package effects provides timed visuals that share a display with confetti
// bursts: button ripples, money transfers, points badges, attention rings
// and slowly rising coins and icons.
//
// A Layer is a burst.System. Register it on a simulator's scheduler and
// queue effects on it between frames.
package effects

import (
	"github.com/plus3/confetti/burst"
)

// effect is one running visual.
type effect interface {
	sprite() burst.Sprite
	transform() burst.Transform
	// advance moves the effect forward and reports whether it is still running.
	advance(dt float64) bool
	finish()
}

type builder func(frame *burst.UpdateFrame) effect

type running struct {
	id burst.ElementId
	fx effect
}

// Layer runs queued effects, one display element each.
type Layer struct {
	queued  []builder
	running []running
}

// NewLayer creates an empty effects layer.
func NewLayer() *Layer {
	return &Layer{}
}

// Len returns the number of effects on screen.
func (l *Layer) Len() int {
	return len(l.running)
}

// Queued returns the number of effects waiting for the next frame.
func (l *Layer) Queued() int {
	return len(l.queued)
}

func (l *Layer) enqueue(b builder) {
	l.queued = append(l.queued, b)
}

func (l *Layer) Execute(frame *burst.UpdateFrame) {
	alive := l.running[:0]
	for _, r := range l.running {
		if r.fx.advance(frame.DeltaTime) {
			frame.Display.Place(r.id, r.fx.transform())
			alive = append(alive, r)
			continue
		}
		if frame.Display.Attached(r.id) {
			frame.Display.Detach(r.id)
		}
		r.fx.finish()
	}
	clear(l.running[len(alive):])
	l.running = alive

	for _, build := range l.queued {
		fx := build(frame)
		id := frame.NewElementId()
		frame.Display.Attach(id, fx.sprite())
		frame.Display.Place(id, fx.transform())
		l.running = append(l.running, running{id: id, fx: fx})
	}
	clear(l.queued)
	l.queued = l.queued[:0]
}
