package effects

import (
	"image/color"

	"github.com/plus3/confetti/burst"
)

// DriftKind selects the look and pace of a rising background element.
type DriftKind uint8

const (
	DriftCoin DriftKind = iota
	DriftIcon
)

type driftPreset struct {
	color       color.NRGBA
	shape       burst.Shape
	sizeMin     float64
	sizeRange   float64
	alphaMin    float64
	alphaRange  float64
	durationMin float64
	durationRng float64
}

var driftPresets = map[DriftKind]driftPreset{
	DriftCoin: {
		color:       color.NRGBA{R: 246, G: 173, B: 85, A: 0xFF},
		shape:       burst.ShapeCircle,
		sizeMin:     15,
		sizeRange:   15,
		alphaMin:    0.3,
		alphaRange:  0.4,
		durationMin: 15,
		durationRng: 10,
	},
	DriftIcon: {
		color:       color.NRGBA{R: 26, G: 54, B: 93, A: 0xFF},
		shape:       burst.ShapeSquare,
		sizeMin:     12,
		sizeRange:   8,
		alphaMin:    0.2,
		alphaRange:  0.3,
		durationMin: 20,
		durationRng: 15,
	},
}

type drift struct {
	look     burst.Sprite
	start    burst.Vec2
	rise     float64
	opacity  float64
	duration float64
	elapsed  float64
}

// Drift releases a coin or icon from a random spot on the bottom edge. It
// rises one viewport height while turning a full circle, fading in over
// the first tenth of its flight and out over the last.
func (l *Layer) Drift(kind DriftKind) {
	preset, ok := driftPresets[kind]
	if !ok {
		preset = driftPresets[DriftCoin]
	}
	l.enqueue(func(frame *burst.UpdateFrame) effect {
		width, height := frame.Viewport.Size()
		r := frame.Rand
		return &drift{
			start: burst.Vec2{X: r.Float64() * width, Y: height},
			look: burst.Sprite{
				Color: preset.color,
				Size:  preset.sizeMin + r.Float64()*preset.sizeRange,
				Shape: preset.shape,
			},
			opacity:  preset.alphaMin + r.Float64()*preset.alphaRange,
			duration: preset.durationMin + r.Float64()*preset.durationRng,
			rise:     height,
		}
	})
}

func (d *drift) sprite() burst.Sprite {
	return d.look
}

func (d *drift) progress() float64 {
	return clamp01(d.elapsed / d.duration)
}

// fade is the opacity keyframe curve: 0 -> 1 over [0, 0.1], 1 until 0.9, then back to 0.
func fade(u float64) float64 {
	switch {
	case u < 0.1:
		return u / 0.1
	case u <= 0.9:
		return 1
	default:
		return clamp01((1 - u) / 0.1)
	}
}

func (d *drift) transform() burst.Transform {
	u := d.progress()
	return burst.Transform{
		X:     d.start.X,
		Y:     d.start.Y - d.rise*u,
		Angle: 360 * u,
		Scale: 1,
		Alpha: d.opacity * fade(u),
	}
}

func (d *drift) advance(dt float64) bool {
	d.elapsed += dt
	return d.elapsed < d.duration
}

func (d *drift) finish() {}
