package burst_test

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/plus3/confetti/burst"
	"github.com/plus3/confetti/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(opts ...burst.Option) (*burst.Simulator, *display.Recorder) {
	rec := display.NewRecorder(800, 600)
	opts = append([]burst.Option{burst.WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	return burst.New(rec, rec, opts...), rec
}

func runUntilIdle(t *testing.T, sim *burst.Simulator, maxFrames int) int {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		if sim.Idle() {
			return i
		}
		sim.Step()
	}
	require.Fail(t, "simulation did not settle", "still %d active after %d frames", sim.Active(), maxFrames)
	return maxFrames
}

func onlyParticle(t *testing.T, sim *burst.Simulator) burst.Particle {
	t.Helper()
	require.Equal(t, 1, sim.Active())
	for p := range sim.Particles() {
		return p
	}
	return burst.Particle{}
}

func TestSpawnExplosionCount(t *testing.T) {
	for _, count := range []int{1, 7, 50, 130} {
		sim, rec := newTestSimulator()
		sim.SpawnExplosion(burst.Vec2{X: 400, Y: 300}, count)

		assert.Equal(t, count, sim.Stats().Pending)

		runUntilIdle(t, sim, 5000)

		stats := sim.Stats()
		assert.Equal(t, int64(count), stats.Spawned, "count=%d", count)
		assert.Equal(t, int64(count), stats.Culled, "count=%d", count)
		assert.Equal(t, count, rec.Attaches)
		assert.Equal(t, count, rec.Detaches)
		assert.Equal(t, 0, rec.Len())
	}
}

func TestSpawnExplosionZero(t *testing.T) {
	hookCalls := 0
	sim, rec := newTestSimulator(burst.WithExplosionHook(func(burst.Vec2, int) {
		hookCalls++
	}))

	sim.SpawnExplosion(burst.Vec2{X: 10, Y: 10}, 0)
	sim.SpawnExplosion(burst.Vec2{X: 10, Y: 10}, -3)
	for range 10 {
		sim.Step()
	}

	assert.True(t, sim.Idle())
	assert.Equal(t, 0, rec.Mutations())
	assert.Equal(t, int64(0), sim.Stats().Spawned)
	assert.Equal(t, 0, hookCalls)
}

func TestSpawnExplosionStagger(t *testing.T) {
	sim, rec := newTestSimulator()
	sim.SpawnExplosion(burst.Vec2{X: 400, Y: 100}, 5)

	// Frames are ~16.7ms apart and particles 20ms apart.
	want := []int{1, 2, 3, 4, 5, 5}
	for frame, n := range want {
		sim.Step()
		assert.Equal(t, n, rec.Attaches, "frame %d", frame)
	}
	assert.Equal(t, 0, sim.Stats().Pending)
}

func TestSpawnExplosionStaggerOnFrameBoundaries(t *testing.T) {
	sim, rec := newTestSimulator()
	sim.SpawnExplosion(burst.Vec2{X: 400, Y: 100}, 50)

	// At 60 Hz particle i is due at frame i*6/5; every sixth frame lands
	// exactly on a release time and must not slip to the next one.
	for frame := 1; frame <= 60; frame++ {
		sim.Step()
		want := min(50, frame*5/6+1)
		assert.Equal(t, want, rec.Attaches, "frame %d", frame)
	}
}

func TestSpawnExplosionScenario(t *testing.T) {
	// colour, size, shape, angle=0, speed=100
	sim, rec := newTestSimulator(burst.WithRand(newScriptedRand(0, 0, 0, 0, 0)))
	sim.SpawnExplosion(burst.Vec2{X: 100, Y: 200}, 1)

	sim.Step()
	require.Equal(t, 1, sim.Active())

	p := onlyParticle(t, sim)
	assert.Equal(t, burst.Vec2{X: 100, Y: 200}, p.Position)
	assert.InDelta(t, 100.0, p.Velocity.X, 1e-9)
	assert.InDelta(t, 0.0, p.Velocity.Y, 1e-9)
	assert.Equal(t, burst.DefaultPalette[0], p.Sprite.Color)
	assert.Equal(t, burst.DefaultSizeMin, p.Sprite.Size)
	assert.Equal(t, burst.ShapeSquare, p.Sprite.Shape)

	sim.Step()

	p, ok := sim.Particle(p.Id)
	require.True(t, ok)
	assert.InDelta(t, 98.0, p.Velocity.X, 1e-9)
	assert.InDelta(t, 4.9, p.Velocity.Y, 1e-9)
	assert.InDelta(t, 101.6333, p.Position.X, 1e-4)
	assert.InDelta(t, 200.0817, p.Position.Y, 1e-4)

	el, ok := rec.Element(p.Id)
	require.True(t, ok)
	assert.InDelta(t, p.Position.X, el.Transform.X, 1e-9)
	assert.InDelta(t, p.Position.Y, el.Transform.Y, 1e-9)
	assert.InDelta(t, 2*p.Position.X, el.Transform.Angle, 1e-9)
}

func TestSpawnExplosionBoundedRandomness(t *testing.T) {
	sim, _ := newTestSimulator()
	tuning := sim.Tuning()

	sim.SpawnExplosion(burst.Vec2{X: 400, Y: 300}, 400)
	seen := map[burst.ElementId]bool{}

	for sim.Stats().Pending > 0 {
		sim.Step()
		for p := range sim.Particles() {
			if p.Frames > 0 {
				continue
			}
			seen[p.Id] = true

			speed := p.Velocity.Len()
			assert.GreaterOrEqual(t, speed, tuning.SpeedMin-1e-9)
			assert.LessOrEqual(t, speed, tuning.SpeedMax+1e-9)
			assert.GreaterOrEqual(t, p.Sprite.Size, tuning.SizeMin)
			assert.LessOrEqual(t, p.Sprite.Size, tuning.SizeMax)
			assert.True(t, slices.Contains(burst.DefaultPalette, p.Sprite.Color))
			assert.Contains(t, []burst.Shape{burst.ShapeCircle, burst.ShapeSquare}, p.Sprite.Shape)
		}
	}

	assert.Len(t, seen, 400)
}

func TestParticlesFallAfterEnoughFrames(t *testing.T) {
	rec := display.NewRecorder(800, 100000)
	sim := burst.New(rec, rec, burst.WithRand(rand.New(rand.NewPCG(3, 4))))
	sim.SpawnExplosion(burst.Vec2{X: 400, Y: 300}, 50)

	for range 120 {
		sim.Step()
	}

	require.Equal(t, 50, sim.Active())
	for p := range sim.Particles() {
		assert.Greater(t, p.Velocity.Y, 0.0, "particle %d", p.Id)
	}
}

func TestParticlesTerminate(t *testing.T) {
	sim, rec := newTestSimulator()
	sim.SpawnExplosion(burst.Vec2{X: 400, Y: 0}, 60)

	frames := runUntilIdle(t, sim, 5000)

	assert.Greater(t, frames, 0)
	assert.Equal(t, 0, sim.Active())
	assert.Equal(t, 0, rec.Len())
}

func TestCullToleratesExternalRemoval(t *testing.T) {
	sim, rec := newTestSimulator()
	sim.SpawnExplosion(burst.Vec2{X: 400, Y: 300}, 3)
	for range 5 {
		sim.Step()
	}
	require.Equal(t, 3, rec.Len())

	var evicted burst.ElementId
	for p := range sim.Particles() {
		evicted = p.Id
		break
	}
	rec.Evict(evicted)

	runUntilIdle(t, sim, 5000)

	assert.Equal(t, 2, rec.Detaches)
	assert.Equal(t, int64(3), sim.Stats().Culled)
}

func TestElementIdsNotReused(t *testing.T) {
	sim, _ := newTestSimulator()
	ids := map[burst.ElementId]bool{}

	for round := 0; round < 3; round++ {
		sim.SpawnExplosion(burst.Vec2{X: 400, Y: 500}, 20)
		for !sim.Idle() {
			sim.Step()
			for p := range sim.Particles() {
				if p.Frames == 0 {
					assert.False(t, ids[p.Id], "id %d reused", p.Id)
					ids[p.Id] = true
				}
			}
		}
	}

	assert.Len(t, ids, 60)
}

func TestExplosionHook(t *testing.T) {
	var origins []burst.Vec2
	var counts []int
	sim, _ := newTestSimulator(burst.WithExplosionHook(func(origin burst.Vec2, count int) {
		origins = append(origins, origin)
		counts = append(counts, count)
	}))

	sim.SpawnExplosion(burst.Vec2{X: 1, Y: 2}, 4)
	sim.SpawnDefault(burst.Vec2{X: 3, Y: 4})

	assert.Equal(t, []burst.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}, origins)
	assert.Equal(t, []int{4, burst.DefaultExplosionLen}, counts)
}

func TestAdvanceVariableDelta(t *testing.T) {
	sim, _ := newTestSimulator(burst.WithRand(newScriptedRand(0, 0, 0, 0, 0)))
	sim.SpawnExplosion(burst.Vec2{X: 0, Y: 0}, 1)

	sim.Advance(0)
	require.Equal(t, 1, sim.Active())

	sim.Advance(1.0 / 30)

	p := onlyParticle(t, sim)
	assert.InDelta(t, 100*0.98*0.98, p.Velocity.X, 1e-9)
	assert.Equal(t, 1, p.Frames)
}

func TestRunStopsOnCancel(t *testing.T) {
	sim, _ := newTestSimulator()
	sim.SpawnExplosion(burst.Vec2{X: 400, Y: 300}, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		sim.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	assert.Greater(t, sim.Stats().Frames, int64(0))
	assert.Greater(t, sim.Stats().Spawned, int64(0))
}

func TestNewPanicsWithoutCollaborators(t *testing.T) {
	rec := display.NewRecorder(10, 10)
	assert.Panics(t, func() { burst.New(nil, rec) })
	assert.Panics(t, func() { burst.New(rec, nil) })
}
