package effects

import "github.com/plus3/confetti/burst"

// TransferPoints is the badge value shown when a transfer lands.
const TransferPoints = 10

// Stage ties a simulator to its effects layer and plays the composite
// celebrations the front ends bind to input.
type Stage struct {
	Sim        *burst.Simulator
	Layer      *Layer
	RippleSize float64

	transferring bool
}

// NewStage registers a fresh layer on sim's scheduler.
func NewStage(sim *burst.Simulator, rippleSize float64) *Stage {
	layer := NewLayer()
	sim.Scheduler().Register(layer)
	return &Stage{Sim: sim, Layer: layer, RippleSize: rippleSize}
}

// Celebrate fires a ripple and an explosion at p, followed by a points
// badge when points is positive.
func (s *Stage) Celebrate(p burst.Vec2, points int) {
	s.Layer.Ripple(p, s.RippleSize)
	s.Sim.SpawnDefault(p)
	if points > 0 {
		s.Layer.PointsEarned(p, points)
	}
}

// SendTransfer flies money from one point to another and celebrates with
// TransferPoints on arrival. Only one transfer flies at a time: a second
// request shakes the origin and reports false.
func (s *Stage) SendTransfer(from, to burst.Vec2) bool {
	if s.transferring {
		s.Layer.Shake(from, s.RippleSize/2)
		return false
	}

	s.transferring = true
	s.Layer.Pulse(from, s.RippleSize/2, 0)
	s.Layer.Transfer(from, to, func() {
		s.transferring = false
		s.Celebrate(to, TransferPoints)
	})
	return true
}

// Transferring reports whether a transfer is in flight.
func (s *Stage) Transferring() bool {
	return s.transferring
}
