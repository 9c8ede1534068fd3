package burst

import "time"

// UpdateFrame is the state handed to every system during one frame.
type UpdateFrame struct {
	DeltaTime float64
	Elapsed   float64       // seconds
	Clock     time.Duration // Elapsed without rounding error
	Commands  *Commands
	Particles *Store
	Display   Display
	Viewport  Viewport
	Rand      Random

	ids *idAllocator
}

// NewElementId reserves a fresh display element id.
func (f *UpdateFrame) NewElementId() ElementId {
	return f.ids.next()
}

type idAllocator struct {
	last ElementId
}

func (a *idAllocator) next() ElementId {
	a.last++
	return a.last
}
