// Package display provides an in-memory burst.Display used by tests and
// headless runs.
package display

import (
	"github.com/plus3/confetti/burst"
)

// Element is the recorded state of one attached element.
type Element struct {
	Sprite     burst.Sprite
	Transform  burst.Transform
	Placements int
}

// Recorder is a burst.Display and burst.Viewport that keeps every attached
// element in memory and counts the operations applied to it.
type Recorder struct {
	Width, Height float64

	Attaches int
	Places   int
	Detaches int

	elements map[burst.ElementId]*Element
}

// NewRecorder creates a recorder with the given viewport size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		Width:    width,
		Height:   height,
		elements: make(map[burst.ElementId]*Element),
	}
}

func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

func (r *Recorder) Attach(id burst.ElementId, s burst.Sprite) {
	r.Attaches++
	r.elements[id] = &Element{Sprite: s}
}

func (r *Recorder) Place(id burst.ElementId, t burst.Transform) {
	el, ok := r.elements[id]
	if !ok {
		return
	}
	r.Places++
	el.Transform = t
	el.Placements++
}

func (r *Recorder) Attached(id burst.ElementId) bool {
	_, ok := r.elements[id]
	return ok
}

func (r *Recorder) Detach(id burst.ElementId) {
	if _, ok := r.elements[id]; !ok {
		return
	}
	r.Detaches++
	delete(r.elements, id)
}

// Evict removes an element without counting it as a detach, as if
// something outside the simulator had taken it off the display.
func (r *Recorder) Evict(id burst.ElementId) {
	delete(r.elements, id)
}

// Element returns the recorded state of id.
func (r *Recorder) Element(id burst.ElementId) (Element, bool) {
	el, ok := r.elements[id]
	if !ok {
		return Element{}, false
	}
	return *el, true
}

// Len returns the number of attached elements.
func (r *Recorder) Len() int {
	return len(r.elements)
}

// Mutations returns the total number of attach, place and detach calls that
// changed the display.
func (r *Recorder) Mutations() int {
	return r.Attaches + r.Places + r.Detaches
}

// Reset drops all elements and zeroes the counters.
func (r *Recorder) Reset() {
	r.Attaches, r.Places, r.Detaches = 0, 0, 0
	clear(r.elements)
}
