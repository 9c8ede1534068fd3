package burst

// Display creates, moves and destroys visual elements.
//
// Detach may be called for ids the display no longer holds; implementations
// must treat that as a no-op.
type Display interface {
	Attach(id ElementId, s Sprite)
	Place(id ElementId, t Transform)
	Attached(id ElementId) bool
	Detach(id ElementId)
}

// Viewport reports the visible area in display units.
type Viewport interface {
	Size() (width, height float64)
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	Width, Height float64
}

func (v FixedViewport) Size() (float64, float64) {
	return v.Width, v.Height
}

// Random is the source of uniform draws in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}
