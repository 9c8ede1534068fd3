// Package burst simulates confetti explosions: short-lived particles launched
// from a point, pulled down by gravity, slowed by drag and discarded once
// they fall out of view.
//
// A Simulator is driven one display refresh at a time, either by a host
// calling Advance from its own frame loop or by Run. It is not safe for
// concurrent use; all calls must come from the goroutine driving frames.
package burst

import (
	"context"
	"iter"
	"math/rand/v2"
	"time"
)

// Stats summarises a simulator's particle counts.
type Stats struct {
	Spawned int64
	Culled  int64
	Active  int
	Pending int
	Frames  int64
	Elapsed time.Duration
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithTuning replaces the default tuning.
func WithTuning(t Tuning) Option {
	return func(s *Simulator) {
		s.tuning = t
	}
}

// WithRand sets the random source used for particle launch parameters.
func WithRand(r Random) Option {
	return func(s *Simulator) {
		s.rand = r
	}
}

// WithExplosionHook registers fn to be called for every explosion that
// spawns at least one particle.
func WithExplosionHook(fn func(origin Vec2, count int)) Option {
	return func(s *Simulator) {
		s.onExplosion = fn
	}
}

// Simulator owns the active particle set and the frame pipeline.
type Simulator struct {
	tuning      Tuning
	rand        Random
	onExplosion func(origin Vec2, count int)

	store     *Store
	scheduler *Scheduler
	emitter   *EmitterSystem

	spawned int64
	culled  int64
}

// New creates a simulator drawing to display and culling against viewport.
func New(display Display, viewport Viewport, opts ...Option) *Simulator {
	if display == nil {
		panic("burst: nil display")
	}
	if viewport == nil {
		panic("burst: nil viewport")
	}

	s := &Simulator{
		tuning: DefaultTuning(),
		store:  NewStore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s.scheduler = NewScheduler(s.store, display, viewport, s.rand)
	s.scheduler.afterFlush = func(spawned, despawned int) {
		s.spawned += int64(spawned)
		s.culled += int64(despawned)
	}

	s.emitter = &EmitterSystem{Tuning: &s.tuning}
	s.scheduler.Register(s.emitter)
	s.scheduler.Register(&MotionSystem{Tuning: &s.tuning})
	s.scheduler.Register(PlacementSystem{})
	s.scheduler.Register(&CullSystem{Tuning: &s.tuning})

	return s
}

// Tuning returns the simulator's tuning.
func (s *Simulator) Tuning() Tuning {
	return s.tuning
}

// SpawnExplosion launches count particles from origin. Particles are
// released Stagger apart on the simulator's clock, the first on the next
// frame. A count of zero or less does nothing.
func (s *Simulator) SpawnExplosion(origin Vec2, count int) {
	if count <= 0 {
		return
	}
	s.emitter.Queue(origin, count, s.scheduler.Clock())
	if s.onExplosion != nil {
		s.onExplosion(origin, count)
	}
}

// SpawnDefault launches an explosion of the tuning's default size.
func (s *Simulator) SpawnDefault(origin Vec2) {
	s.SpawnExplosion(origin, s.tuning.DefaultCount)
}

// Advance runs one frame covering dt seconds.
func (s *Simulator) Advance(dt float64) {
	s.scheduler.Once(dt)
}

// Step runs one reference frame of 1/RefreshRate seconds.
func (s *Simulator) Step() {
	s.scheduler.Once(s.tuning.FrameDelta())
}

// Run advances the simulation every interval until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context, interval time.Duration) {
	s.scheduler.Run(ctx, interval)
}

// Scheduler exposes the frame pipeline so hosts can register extra systems.
// Systems registered here run after the built-in particle systems.
func (s *Simulator) Scheduler() *Scheduler {
	return s.scheduler
}

// Active returns the number of particles currently alive.
func (s *Simulator) Active() int {
	return s.store.Len()
}

// Particle returns a copy of the active particle with the given id.
func (s *Simulator) Particle(id ElementId) (Particle, bool) {
	p := s.store.Get(id)
	if p == nil {
		return Particle{}, false
	}
	return *p, true
}

// Particles yields a copy of every active particle.
func (s *Simulator) Particles() iter.Seq[Particle] {
	return func(yield func(Particle) bool) {
		for p := range s.store.Iter() {
			if !yield(*p) {
				return
			}
		}
	}
}

// Idle reports whether no particles are active or waiting to be emitted.
func (s *Simulator) Idle() bool {
	return s.store.Len() == 0 && s.emitter.Pending() == 0
}

// Stats returns the current particle counts.
func (s *Simulator) Stats() Stats {
	return Stats{
		Spawned: s.spawned,
		Culled:  s.culled,
		Active:  s.store.Len(),
		Pending: s.emitter.Pending(),
		Frames:  s.scheduler.Frames(),
		Elapsed: s.scheduler.Clock(),
	}
}
