// Package window renders confetti bursts and effects in an ebiten window.
package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"
	"github.com/plus3/confetti/burst"
)

const (
	ringStroke = 2

	// ebitenutil debug font cell.
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

type item struct {
	id        burst.ElementId
	look      burst.Sprite
	transform burst.Transform
}

// Screen is a burst.Display and burst.Viewport backed by an ebiten image.
// Elements are drawn in attach order, except that removing an element moves
// the most recent one into its place.
type Screen struct {
	width, height int

	items []*item
	index *intmap.Map[burst.ElementId, int]
	pixel *ebiten.Image
}

// NewScreen creates a screen of the given logical size.
func NewScreen(width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		index:  intmap.New[burst.ElementId, int](256),
	}
}

func (s *Screen) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

// Resize changes the logical size reported to the simulator.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = width, height
}

// Len returns the number of attached elements.
func (s *Screen) Len() int {
	return len(s.items)
}

func (s *Screen) Attach(id burst.ElementId, look burst.Sprite) {
	if pos, ok := s.index.Get(id); ok {
		s.items[pos].look = look
		return
	}
	s.index.Put(id, len(s.items))
	s.items = append(s.items, &item{
		id:        id,
		look:      look,
		transform: burst.Transform{Scale: 1, Alpha: 1},
	})
}

func (s *Screen) Place(id burst.ElementId, t burst.Transform) {
	pos, ok := s.index.Get(id)
	if !ok {
		return
	}
	s.items[pos].transform = t
}

func (s *Screen) Attached(id burst.ElementId) bool {
	_, ok := s.index.Get(id)
	return ok
}

func (s *Screen) Detach(id burst.ElementId) {
	pos, ok := s.index.Get(id)
	if !ok {
		return
	}

	last := len(s.items) - 1
	if pos != last {
		moved := s.items[last]
		s.items[pos] = moved
		s.index.Put(moved.id, pos)
	}
	s.items[last] = nil
	s.items = s.items[:last]
	s.index.Del(id)
}

// Draw renders every attached element onto dst.
func (s *Screen) Draw(dst *ebiten.Image) {
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(color.White)
	}

	for _, it := range s.items {
		t := it.transform
		if t.Alpha <= 0 || t.Scale <= 0 {
			continue
		}

		clr := fade(it.look.Color, t.Alpha)
		size := it.look.Size * t.Scale
		x, y := float32(t.X), float32(t.Y)

		switch it.look.Shape {
		case burst.ShapeCircle:
			vector.DrawFilledCircle(dst, x, y, float32(size/2), clr, true)
		case burst.ShapeRing:
			vector.StrokeCircle(dst, x, y, float32(size/2), ringStroke, clr, true)
		case burst.ShapeBadge:
			w, h := float32(BadgeWidth(it.look.Label, size)), float32(size)
			vector.DrawFilledRect(dst, x-w/2, y-h/2, w, h, clr, true)
			if t.Scale >= 0.5 && t.Alpha >= 0.3 {
				ebitenutil.DebugPrintAt(dst, it.look.Label, int(t.X)-len(it.look.Label)*debugGlyphWidth/2, int(t.Y)-debugGlyphHeight/2)
			}
		default:
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-0.5, -0.5)
			op.GeoM.Scale(size, size)
			op.GeoM.Rotate(t.Angle * math.Pi / 180)
			op.GeoM.Translate(t.X, t.Y)
			op.ColorScale.ScaleWithColor(clr)
			dst.DrawImage(s.pixel, op)
		}
	}
}

// BadgeWidth is the width of a label badge of the given height.
func BadgeWidth(label string, height float64) float64 {
	return height * (1 + 0.4*float64(len(label)))
}

func fade(c color.NRGBA, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	c.A = uint8(math.Round(float64(c.A) * alpha))
	return c
}
