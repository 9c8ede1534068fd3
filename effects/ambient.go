package effects

import (
	"github.com/plus3/confetti/burst"
)

const (
	AmbientInitialCoins = 15
	AmbientCoinSpacing  = 2.0 // seconds between initial coins
	AmbientCoinJitter   = 3.0
	AmbientCoinInterval = 5.0
	AmbientCoinChance   = 0.3
	AmbientIconInterval = 8.0
	AmbientIconChance   = 0.2
)

// Ambient keeps a sparse stream of drifting coins and icons going in the
// background. Drifters it queues appear the next time its Layer runs.
type Ambient struct {
	Layer *Layer

	started  bool
	elapsed  float64
	initial  []float64
	coinNext float64
	iconNext float64
}

func (a *Ambient) Execute(frame *burst.UpdateFrame) {
	if !a.started {
		a.started = true
		a.initial = make([]float64, AmbientInitialCoins)
		for i := range a.initial {
			a.initial[i] = float64(i)*AmbientCoinSpacing + frame.Rand.Float64()*AmbientCoinJitter
		}
		a.coinNext = AmbientCoinInterval
		a.iconNext = AmbientIconInterval
	}

	a.elapsed += frame.DeltaTime

	pending := a.initial[:0]
	for _, due := range a.initial {
		if due <= a.elapsed {
			a.Layer.Drift(DriftCoin)
			continue
		}
		pending = append(pending, due)
	}
	a.initial = pending

	for a.elapsed >= a.coinNext {
		a.coinNext += AmbientCoinInterval
		if frame.Rand.Float64() < AmbientCoinChance {
			a.Layer.Drift(DriftCoin)
		}
	}

	for a.elapsed >= a.iconNext {
		a.iconNext += AmbientIconInterval
		if frame.Rand.Float64() < AmbientIconChance {
			a.Layer.Drift(DriftIcon)
		}
	}
}

// InitialRemaining returns how many of the opening coins are still to come.
func (a *Ambient) InitialRemaining() int {
	if !a.started {
		return AmbientInitialCoins
	}
	return len(a.initial)
}
