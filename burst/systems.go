package burst

import (
	"math"
	"time"
)

type pendingBurst struct {
	origin  Vec2
	count   int
	emitted int
	startAt time.Duration
}

func (b *pendingBurst) dueAt(i int, stagger time.Duration) time.Duration {
	return b.startAt + time.Duration(i)*stagger
}

// EmitterSystem releases queued explosion particles once their stagger
// delay has elapsed.
type EmitterSystem struct {
	Tuning *Tuning

	queue []*pendingBurst
}

// Queue schedules count particles at origin, the first due when the
// scheduler clock reaches startAt.
func (e *EmitterSystem) Queue(origin Vec2, count int, startAt time.Duration) {
	if count <= 0 {
		return
	}
	e.queue = append(e.queue, &pendingBurst{
		origin:  origin,
		count:   count,
		startAt: startAt,
	})
}

// Pending returns the number of queued particles not yet emitted.
func (e *EmitterSystem) Pending() int {
	n := 0
	for _, b := range e.queue {
		n += b.count - b.emitted
	}
	return n
}

func (e *EmitterSystem) Execute(frame *UpdateFrame) {
	if len(e.queue) == 0 {
		return
	}

	remaining := e.queue[:0]
	for _, b := range e.queue {
		for b.emitted < b.count && b.dueAt(b.emitted, e.Tuning.Stagger) <= frame.Clock {
			frame.Commands.Spawn(NewParticle(frame.NewElementId(), b.origin, *e.Tuning, frame.Rand))
			b.emitted++
		}
		if b.emitted < b.count {
			remaining = append(remaining, b)
		}
	}

	clear(e.queue[len(remaining):])
	e.queue = remaining
}

// NewParticle creates a particle at origin with randomised appearance and
// launch velocity.
func NewParticle(id ElementId, origin Vec2, t Tuning, rnd Random) Particle {
	palette := t.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	colorIdx := int(rnd.Float64() * float64(len(palette)))
	if colorIdx >= len(palette) {
		colorIdx = len(palette) - 1
	}

	size := t.SizeMin + rnd.Float64()*(t.SizeMax-t.SizeMin)

	shape := ShapeSquare
	if rnd.Float64() > 0.5 {
		shape = ShapeCircle
	}

	angle := rnd.Float64() * 2 * math.Pi
	speed := t.SpeedMin + rnd.Float64()*(t.SpeedMax-t.SpeedMin)

	return Particle{
		Id:       id,
		Position: origin,
		Velocity: Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Sprite: Sprite{
			Color: palette[colorIdx],
			Size:  size,
			Shape: shape,
		},
		Angle: RotationAt(origin.X),
	}
}

// MotionSystem integrates every active particle.
type MotionSystem struct {
	Tuning *Tuning
}

func (m *MotionSystem) Execute(frame *UpdateFrame) {
	if frame.DeltaTime <= 0 {
		return
	}
	for p := range frame.Particles.Iter() {
		Integrate(p, *m.Tuning, frame.DeltaTime)
	}
}

// PlacementSystem pushes particle transforms to the display.
type PlacementSystem struct{}

func (PlacementSystem) Execute(frame *UpdateFrame) {
	for p := range frame.Particles.Iter() {
		frame.Display.Place(p.Id, p.Transform())
	}
}

// CullSystem despawns particles that have left the viewport.
type CullSystem struct {
	Tuning *Tuning
}

func (c *CullSystem) Execute(frame *UpdateFrame) {
	_, height := frame.Viewport.Size()
	for p := range frame.Particles.Iter() {
		if Expired(p, *c.Tuning, height) {
			frame.Commands.Despawn(p.Id)
		}
	}
}
