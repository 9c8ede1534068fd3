package effects

import (
	"fmt"
	"image/color"

	"github.com/plus3/confetti/burst"
)

const (
	PointsDuration  = 2.0 // seconds
	PointsPeakScale = 1.2
	PointsSize      = 36.0 // badge height; it rises by this much
)

var pointsColor = color.NRGBA{R: 246, G: 173, B: 85, A: 0xE6}

type pointsBadge struct {
	at      burst.Vec2
	label   string
	elapsed float64
}

// PointsEarned pops a "+N" badge at the given point. It grows past full
// size while fading in, then settles and rises one badge height while
// fading out.
func (l *Layer) PointsEarned(at burst.Vec2, points int) {
	label := fmt.Sprintf("+%d", points)
	l.enqueue(func(*burst.UpdateFrame) effect {
		return &pointsBadge{at: at, label: label}
	})
}

func (b *pointsBadge) sprite() burst.Sprite {
	return burst.Sprite{Color: pointsColor, Size: PointsSize, Shape: burst.ShapeBadge, Label: b.label}
}

func (b *pointsBadge) transform() burst.Transform {
	u := clamp01(b.elapsed / PointsDuration)
	t := burst.Transform{X: b.at.X, Y: b.at.Y}

	if u < 0.5 {
		v := easeOutQuad(u * 2)
		t.Scale = PointsPeakScale * v
		t.Alpha = v
		return t
	}

	v := easeOutQuad((u - 0.5) * 2)
	t.Y -= PointsSize * v
	t.Scale = lerp(PointsPeakScale, 1, v)
	t.Alpha = 1 - v
	return t
}

func (b *pointsBadge) advance(dt float64) bool {
	b.elapsed += dt
	return b.elapsed < PointsDuration
}

func (b *pointsBadge) finish() {}
