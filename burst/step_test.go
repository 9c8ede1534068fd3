package burst_test

import (
	"testing"

	"github.com/plus3/confetti/burst"
	"github.com/stretchr/testify/assert"
)

func TestIntegrateReferenceFrame(t *testing.T) {
	tuning := burst.DefaultTuning()
	p := &burst.Particle{
		Position: burst.Vec2{X: 100, Y: 200},
		Velocity: burst.Vec2{X: 100, Y: 0},
	}

	burst.Integrate(p, tuning, tuning.FrameDelta())

	assert.InDelta(t, 98.0, p.Velocity.X, 1e-9)
	assert.InDelta(t, 4.9, p.Velocity.Y, 1e-9)
	assert.InDelta(t, 100+98.0/60, p.Position.X, 1e-9)
	assert.InDelta(t, 200+4.9/60, p.Position.Y, 1e-9)
	assert.InDelta(t, 2*p.Position.X, p.Angle, 1e-9)
	assert.Equal(t, 1, p.Frames)
}

func TestIntegrateNonPositiveDelta(t *testing.T) {
	tuning := burst.DefaultTuning()
	p := &burst.Particle{
		Position: burst.Vec2{X: 1, Y: 2},
		Velocity: burst.Vec2{X: 3, Y: 4},
	}
	before := *p

	burst.Integrate(p, tuning, 0)
	burst.Integrate(p, tuning, -0.5)

	assert.Equal(t, before, *p)
}

func TestIntegrateDragScalesWithDelta(t *testing.T) {
	tuning := burst.DefaultTuning()
	tuning.Gravity = 0

	twoFrames := &burst.Particle{Velocity: burst.Vec2{X: 50, Y: -20}}
	burst.Integrate(twoFrames, tuning, tuning.FrameDelta())
	burst.Integrate(twoFrames, tuning, tuning.FrameDelta())

	oneLong := &burst.Particle{Velocity: burst.Vec2{X: 50, Y: -20}}
	burst.Integrate(oneLong, tuning, 2*tuning.FrameDelta())

	assert.InDelta(t, twoFrames.Velocity.X, oneLong.Velocity.X, 1e-9)
	assert.InDelta(t, twoFrames.Velocity.Y, oneLong.Velocity.Y, 1e-9)
	assert.InDelta(t, 50*0.98*0.98, oneLong.Velocity.X, 1e-9)
}

func TestIntegrateHalfRefreshRate(t *testing.T) {
	tuning := burst.DefaultTuning()
	p := &burst.Particle{Velocity: burst.Vec2{X: 0, Y: 0}}

	// A 30Hz host covers two reference frames per update.
	burst.Integrate(p, tuning, 1.0/30)

	assert.InDelta(t, 10*0.98*0.98, p.Velocity.Y, 1e-9)
}

func TestRotationAt(t *testing.T) {
	assert.Equal(t, 0.0, burst.RotationAt(0))
	assert.Equal(t, 203.0, burst.RotationAt(101.5))
	assert.Equal(t, -40.0, burst.RotationAt(-20))
}

func TestExpired(t *testing.T) {
	tuning := burst.DefaultTuning()

	tests := []struct {
		y    float64
		want bool
	}{
		{y: 0, want: false},
		{y: 599, want: false},
		{y: 699.99, want: false},
		{y: 700, want: true},
		{y: 1200, want: true},
	}

	for _, tt := range tests {
		p := &burst.Particle{Position: burst.Vec2{Y: tt.y}}
		assert.Equal(t, tt.want, burst.Expired(p, tuning, 600), "y=%v", tt.y)
	}
}
