package burst

import "math"

// Integrate advances p by dt seconds under gravity and drag.
//
// Drag is expressed per reference frame, so it is raised to the number of
// reference frames dt covers. At dt == 1/RefreshRate this reduces to
//
//	vy = (vy + Gravity/RefreshRate) * Drag
//	vx = vx * Drag
//	x += vx / RefreshRate
//	y += vy / RefreshRate
func Integrate(p *Particle, t Tuning, dt float64) {
	if dt <= 0 {
		return
	}

	damp := dragFactor(t, dt)

	p.Velocity.Y = (p.Velocity.Y + t.Gravity*dt) * damp
	p.Velocity.X = p.Velocity.X * damp

	p.Position.X += p.Velocity.X * dt
	p.Position.Y += p.Velocity.Y * dt

	p.Angle = RotationAt(p.Position.X)
	p.Frames++
}

// RotationAt is the rendered rotation, in degrees, of a particle at x.
func RotationAt(x float64) float64 {
	return 2 * x
}

func dragFactor(t Tuning, dt float64) float64 {
	frames := dt * t.RefreshRate
	if frames == 1 {
		return t.Drag
	}
	return math.Pow(t.Drag, frames)
}

// Expired reports whether p has dropped far enough below the viewport to be removed.
func Expired(p *Particle, t Tuning, viewportHeight float64) bool {
	return p.Position.Y >= viewportHeight+t.CullMargin
}
