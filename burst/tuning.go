package burst

import (
	"image/color"
	"time"
)

const (
	DefaultGravity      = 300.0 // units/s², downward
	DefaultDrag         = 0.98  // velocity multiplier per reference frame
	DefaultRefreshRate  = 60.0  // reference frame rate the drag is expressed in
	DefaultCullMargin   = 100.0 // distance below the viewport before removal
	DefaultSpeedMin     = 100.0
	DefaultSpeedMax     = 300.0
	DefaultSizeMin      = 4.0
	DefaultSizeMax      = 12.0
	DefaultStagger      = 20 * time.Millisecond
	DefaultExplosionLen = 50
)

// Tuning holds the physical constants and randomisation ranges of a burst.
type Tuning struct {
	Gravity      float64
	Drag         float64
	RefreshRate  float64
	CullMargin   float64
	SpeedMin     float64
	SpeedMax     float64
	SizeMin      float64
	SizeMax      float64
	Stagger      time.Duration
	DefaultCount int
	Palette      []color.NRGBA
}

// DefaultTuning returns the stock confetti tuning.
func DefaultTuning() Tuning {
	palette := make([]color.NRGBA, len(DefaultPalette))
	copy(palette, DefaultPalette)

	return Tuning{
		Gravity:      DefaultGravity,
		Drag:         DefaultDrag,
		RefreshRate:  DefaultRefreshRate,
		CullMargin:   DefaultCullMargin,
		SpeedMin:     DefaultSpeedMin,
		SpeedMax:     DefaultSpeedMax,
		SizeMin:      DefaultSizeMin,
		SizeMax:      DefaultSizeMax,
		Stagger:      DefaultStagger,
		DefaultCount: DefaultExplosionLen,
		Palette:      palette,
	}
}

// FrameDelta is the duration of one reference frame in seconds.
func (t Tuning) FrameDelta() float64 {
	return 1 / t.RefreshRate
}
