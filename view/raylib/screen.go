// Package raylib renders confetti bursts and effects in a raylib window.
package raylib

import (
	"math"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/confetti/burst"
)

type element struct {
	id        burst.ElementId
	look      burst.Sprite
	transform burst.Transform
}

// Screen is a burst.Display and burst.Viewport drawn with raylib. Elements
// keep their attach order.
type Screen struct {
	width, height int

	elements []*element
	byId     map[burst.ElementId]*element
}

func NewScreen(width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		byId:   make(map[burst.ElementId]*element),
	}
}

func (s *Screen) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

func (s *Screen) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *Screen) Len() int {
	return len(s.elements)
}

func (s *Screen) Attach(id burst.ElementId, look burst.Sprite) {
	if el, ok := s.byId[id]; ok {
		el.look = look
		return
	}
	el := &element{id: id, look: look, transform: burst.Transform{Scale: 1, Alpha: 1}}
	s.byId[id] = el
	s.elements = append(s.elements, el)
}

func (s *Screen) Place(id burst.ElementId, t burst.Transform) {
	if el, ok := s.byId[id]; ok {
		el.transform = t
	}
}

func (s *Screen) Attached(id burst.ElementId) bool {
	_, ok := s.byId[id]
	return ok
}

func (s *Screen) Detach(id burst.ElementId) {
	el, ok := s.byId[id]
	if !ok {
		return
	}
	delete(s.byId, id)
	s.elements = slices.DeleteFunc(s.elements, func(e *element) bool { return e == el })
}

// BadgeWidth is the width of a label badge of the given height.
func BadgeWidth(label string, height float64) float64 {
	return height * (1 + 0.4*float64(len(label)))
}

// Color converts a sprite colour at the given opacity.
func Color(look burst.Sprite, alpha float64) rl.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	c := look.Color
	return rl.NewColor(c.R, c.G, c.B, uint8(math.Round(float64(c.A)*alpha)))
}

// Draw renders every element. It must run between rl.BeginDrawing and
// rl.EndDrawing.
func (s *Screen) Draw() {
	for _, el := range s.elements {
		t := el.transform
		if t.Alpha <= 0 || t.Scale <= 0 {
			continue
		}

		clr := Color(el.look, t.Alpha)
		size := float32(el.look.Size * t.Scale)
		x, y := float32(t.X), float32(t.Y)

		switch el.look.Shape {
		case burst.ShapeCircle:
			rl.DrawCircleV(rl.NewVector2(x, y), size/2, clr)
		case burst.ShapeRing:
			rl.DrawCircleLines(int32(x), int32(y), size/2, clr)
		case burst.ShapeBadge:
			w := float32(BadgeWidth(el.look.Label, float64(size)))
			rl.DrawRectangleRounded(rl.NewRectangle(x-w/2, y-size/2, w, size), 1, 8, clr)
			if font := int32(size / 2); font >= 6 {
				textWidth := rl.MeasureText(el.look.Label, font)
				rl.DrawText(el.look.Label, int32(x)-textWidth/2, int32(y)-font/2, font, rl.Fade(rl.White, float32(t.Alpha)))
			}
		default:
			rect := rl.NewRectangle(x, y, size, size)
			rl.DrawRectanglePro(rect, rl.NewVector2(size/2, size/2), float32(t.Angle), clr)
		}
	}
}
