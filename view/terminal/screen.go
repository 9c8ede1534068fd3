// Package terminal renders confetti bursts in a terminal with tcell.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/confetti/burst"
)

// One terminal cell covers CellWidth x CellHeight simulation units.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Alpha below which an element is drawn as a faint dot.
const faintAlpha = 0.35

type glyph struct {
	look      burst.Sprite
	transform burst.Transform
}

// Screen is a burst.Display and burst.Viewport drawing onto a tcell screen.
type Screen struct {
	screen tcell.Screen
	glyphs map[burst.ElementId]*glyph
	order  []burst.ElementId
}

// NewScreen wraps an initialised tcell screen.
func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{
		screen: screen,
		glyphs: make(map[burst.ElementId]*glyph),
	}
}

func (s *Screen) Size() (float64, float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

// CellAt maps a simulation position to a terminal cell.
func CellAt(x, y float64) (col, row int) {
	return int(x / CellWidth), int(y / CellHeight)
}

// PointAt maps a terminal cell to the simulation position of its centre.
func PointAt(col, row int) burst.Vec2 {
	return burst.Vec2{
		X: (float64(col) + 0.5) * CellWidth,
		Y: (float64(row) + 0.5) * CellHeight,
	}
}

func (s *Screen) Attach(id burst.ElementId, look burst.Sprite) {
	if g, ok := s.glyphs[id]; ok {
		g.look = look
		return
	}
	s.glyphs[id] = &glyph{look: look, transform: burst.Transform{Scale: 1, Alpha: 1}}
	s.order = append(s.order, id)
}

func (s *Screen) Place(id burst.ElementId, t burst.Transform) {
	if g, ok := s.glyphs[id]; ok {
		g.transform = t
	}
}

func (s *Screen) Attached(id burst.ElementId) bool {
	_, ok := s.glyphs[id]
	return ok
}

func (s *Screen) Detach(id burst.ElementId) {
	delete(s.glyphs, id)
}

// Len returns the number of attached elements.
func (s *Screen) Len() int {
	return len(s.glyphs)
}

// Rune picks the character used for an element.
func Rune(look burst.Sprite, t burst.Transform) rune {
	if t.Alpha < faintAlpha {
		return '·'
	}
	switch look.Shape {
	case burst.ShapeCircle:
		return '●'
	case burst.ShapeRing:
		return '○'
	default:
		// Squares alternate as they spin.
		if int(t.Angle/45)%2 == 0 {
			return '■'
		}
		return '◆'
	}
}

// Draw clears the terminal and paints every visible element.
func (s *Screen) Draw() {
	s.screen.Clear()
	cols, rows := s.screen.Size()

	live := s.order[:0]
	for _, id := range s.order {
		g, ok := s.glyphs[id]
		if !ok {
			continue
		}
		live = append(live, id)

		t := g.transform
		if t.Alpha <= 0 || t.Scale <= 0 || t.X < 0 || t.Y < 0 {
			continue
		}
		col, row := CellAt(t.X, t.Y)
		if col >= cols || row >= rows {
			continue
		}

		c := g.look.Color
		clr := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))

		if g.look.Shape == burst.ShapeBadge {
			if t.Alpha < faintAlpha {
				continue
			}
			style := tcell.StyleDefault.Background(clr).Foreground(tcell.ColorWhite).Bold(true)
			label := []rune(" " + g.look.Label + " ")
			start := col - len(label)/2
			for i, r := range label {
				if x := start + i; x >= 0 && x < cols {
					s.screen.SetContent(x, row, r, nil, style)
				}
			}
			continue
		}

		s.screen.SetContent(col, row, Rune(g.look, t), nil, tcell.StyleDefault.Foreground(clr))
	}
	s.order = live

	s.screen.Show()
}
