package effects_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/confetti/burst"
	"github.com/plus3/confetti/display"
	"github.com/plus3/confetti/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

func newTestLayer(rnd burst.Random) (*burst.Simulator, *effects.Layer, *display.Recorder) {
	rec := display.NewRecorder(800, 600)
	sim := burst.New(rec, rec, burst.WithRand(rnd))
	layer := effects.NewLayer()
	sim.Scheduler().Register(layer)
	return sim, layer, rec
}

func steps(sim *burst.Simulator, n int) {
	for range n {
		sim.Step()
	}
}

// lastElement returns the most recently attached element of the recorder.
func lastElement(t *testing.T, rec *display.Recorder) (burst.ElementId, display.Element) {
	t.Helper()
	for id := burst.ElementId(rec.Attaches); id > 0; id-- {
		if el, ok := rec.Element(id); ok {
			return id, el
		}
	}
	require.Fail(t, "no attached element")
	return 0, display.Element{}
}

func TestRipple(t *testing.T) {
	sim, layer, rec := newTestLayer(constRand(0.5))

	layer.Ripple(burst.Vec2{X: 40, Y: 50}, 80)
	assert.Equal(t, 1, layer.Queued())

	sim.Step()
	require.Equal(t, 1, layer.Len())

	_, el := lastElement(t, rec)
	assert.Equal(t, burst.ShapeCircle, el.Sprite.Shape)
	assert.Equal(t, 80.0, el.Sprite.Size)
	assert.Equal(t, 40.0, el.Transform.X)
	assert.Equal(t, 50.0, el.Transform.Y)
	assert.Equal(t, 0.0, el.Transform.Scale)
	assert.InDelta(t, effects.RippleAlpha, el.Transform.Alpha, 1e-9)

	steps(sim, 18)
	_, el = lastElement(t, rec)
	assert.Greater(t, el.Transform.Scale, 0.0)
	assert.Less(t, el.Transform.Scale, effects.RippleMaxScale)
	assert.Less(t, el.Transform.Alpha, effects.RippleAlpha)

	steps(sim, 30)
	assert.Equal(t, 0, layer.Len())
	assert.Equal(t, 1, rec.Detaches)
	assert.Equal(t, 0, rec.Len())
}

func TestTransfer(t *testing.T) {
	sim, layer, rec := newTestLayer(constRand(0.5))

	doneCalls := 0
	from := burst.Vec2{X: 100, Y: 500}
	to := burst.Vec2{X: 700, Y: 80}
	layer.Transfer(from, to, func() { doneCalls++ })

	sim.Step()
	id, el := lastElement(t, rec)
	assert.Equal(t, from.X, el.Transform.X)
	assert.Equal(t, 1.0, el.Transform.Scale)
	assert.Equal(t, 1.0, el.Transform.Alpha)

	// Still holding position during the start delay.
	steps(sim, 5)
	el, _ = rec.Element(id)
	assert.Equal(t, from.X, el.Transform.X)

	// 2.0s after creation: close to the target, faded and shrunk.
	steps(sim, 114)
	el, ok := rec.Element(id)
	require.True(t, ok)
	assert.InDelta(t, to.X, el.Transform.X, 1)
	assert.InDelta(t, to.Y, el.Transform.Y, 1)
	assert.Less(t, el.Transform.Scale, 0.55)
	assert.Less(t, el.Transform.Alpha, 0.05)
	assert.Equal(t, 0, doneCalls)

	steps(sim, 10)
	assert.Equal(t, 1, doneCalls)
	assert.Equal(t, 0, layer.Len())
	assert.False(t, rec.Attached(id))

	steps(sim, 10)
	assert.Equal(t, 1, doneCalls)
}

func TestTransferNilCallback(t *testing.T) {
	sim, layer, _ := newTestLayer(constRand(0.5))
	layer.Transfer(burst.Vec2{}, burst.Vec2{X: 10, Y: 10}, nil)

	assert.NotPanics(t, func() { steps(sim, 200) })
	assert.Equal(t, 0, layer.Len())
}

func TestDrift(t *testing.T) {
	sim, layer, rec := newTestLayer(constRand(0.5))

	layer.Drift(effects.DriftCoin)
	sim.Step()

	id, el := lastElement(t, rec)
	assert.Equal(t, 400.0, el.Transform.X)
	assert.Equal(t, 600.0, el.Transform.Y)
	assert.Equal(t, 0.0, el.Transform.Alpha)
	assert.Equal(t, 22.5, el.Sprite.Size)

	// Coin duration is 15 + 0.5*10 = 20s; check half way.
	steps(sim, 600)
	el, _ = rec.Element(id)
	assert.InDelta(t, 300.0, el.Transform.Y, 1)
	assert.InDelta(t, 180.0, el.Transform.Angle, 1)
	assert.InDelta(t, 0.5, el.Transform.Alpha, 1e-9)

	steps(sim, 601)
	assert.False(t, rec.Attached(id))
	assert.Equal(t, 0, layer.Len())
}

func TestDriftIcon(t *testing.T) {
	sim, layer, rec := newTestLayer(constRand(0))

	layer.Drift(effects.DriftIcon)
	sim.Step()

	_, el := lastElement(t, rec)
	assert.Equal(t, burst.ShapeSquare, el.Sprite.Shape)
	assert.Equal(t, 12.0, el.Sprite.Size)
	assert.Equal(t, 0.0, el.Transform.X)
}

func TestLayerToleratesExternalRemoval(t *testing.T) {
	sim, layer, rec := newTestLayer(constRand(0.5))
	layer.Ripple(burst.Vec2{}, 10)
	sim.Step()

	id, _ := lastElement(t, rec)
	rec.Evict(id)

	steps(sim, 60)
	assert.Equal(t, 0, layer.Len())
	assert.Equal(t, 0, rec.Detaches)
}

func TestAmbient(t *testing.T) {
	rec := display.NewRecorder(800, 600)
	sim := burst.New(rec, rec, burst.WithRand(rand.New(rand.NewPCG(9, 9))))
	layer := effects.NewLayer()
	ambient := &effects.Ambient{Layer: layer}
	sim.Scheduler().Register(ambient)
	sim.Scheduler().Register(layer)

	assert.Equal(t, effects.AmbientInitialCoins, ambient.InitialRemaining())

	// The last opening coin is due within 14*2+3 = 31s.
	steps(sim, 32*60)

	assert.Equal(t, 0, ambient.InitialRemaining())
	assert.GreaterOrEqual(t, rec.Attaches, effects.AmbientInitialCoins)
	assert.Equal(t, 0, sim.Active())
}

func TestPointsEarned(t *testing.T) {
	sim, layer, rec := newTestLayer(constRand(0.5))

	layer.PointsEarned(burst.Vec2{X: 200, Y: 300}, 25)
	sim.Step()

	id, el := lastElement(t, rec)
	assert.Equal(t, burst.ShapeBadge, el.Sprite.Shape)
	assert.Equal(t, "+25", el.Sprite.Label)
	assert.Equal(t, 0.0, el.Transform.Scale)
	assert.Equal(t, 0.0, el.Transform.Alpha)

	// Half way: full opacity at peak scale, not yet risen.
	steps(sim, 60)
	el, _ = rec.Element(id)
	assert.InDelta(t, effects.PointsPeakScale, el.Transform.Scale, 1e-3)
	assert.InDelta(t, 1.0, el.Transform.Alpha, 1e-3)
	assert.InDelta(t, 300.0, el.Transform.Y, 0.1)

	steps(sim, 59)
	el, _ = rec.Element(id)
	assert.InDelta(t, 300-effects.PointsSize, el.Transform.Y, 0.1)
	assert.InDelta(t, 1.0, el.Transform.Scale, 1e-3)
	assert.Less(t, el.Transform.Alpha, 0.01)

	steps(sim, 2)
	assert.False(t, rec.Attached(id))
	assert.Equal(t, 0, layer.Len())
}

func TestShake(t *testing.T) {
	sim, layer, rec := newTestLayer(constRand(0.5))

	layer.Shake(burst.Vec2{X: 100, Y: 100}, 60)
	sim.Step()

	id, el := lastElement(t, rec)
	assert.Equal(t, burst.ShapeRing, el.Sprite.Shape)
	assert.Equal(t, 100.0, el.Transform.X)

	// 0.125s is a quarter of the shake: furthest left.
	steps(sim, 7)
	el, _ = rec.Element(id)
	assert.InDelta(t, 100-effects.ShakeOffset*(7.0/60)/0.125, el.Transform.X, 1e-6)
	assert.Less(t, el.Transform.X, 100.0)

	steps(sim, 24)
	assert.False(t, rec.Attached(id))
}

func TestPulse(t *testing.T) {
	sim, layer, rec := newTestLayer(constRand(0.5))

	layer.Pulse(burst.Vec2{X: 50, Y: 50}, 40, 0)
	sim.Step()

	id, el := lastElement(t, rec)
	assert.Equal(t, burst.ShapeRing, el.Sprite.Shape)
	assert.Equal(t, 1.0, el.Transform.Scale)

	steps(sim, 30)
	el, _ = rec.Element(id)
	assert.InDelta(t, effects.PulseScale, el.Transform.Scale, 1e-6)
	assert.Equal(t, 50.0, el.Transform.X)

	steps(sim, 31)
	assert.False(t, rec.Attached(id))
}
