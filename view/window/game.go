package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/confetti/burst"
	"github.com/plus3/confetti/effects"
)

// Overlay is drawn on top of the scene and may swallow input.
// debugui/ebiten.Overlay satisfies it.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	CapturesMouse() bool
	CapturesKeyboard() bool
}

// Background is the clear colour of the window.
var Background = color.NRGBA{R: 0x1A, G: 0x36, B: 0x5D, A: 0xFF}

const rippleSize = 120

// Input is the user's actions during one tick.
type Input struct {
	Quit     bool
	Explode  bool
	Transfer bool
	Click    bool
	Cursor   burst.Vec2
}

// ReadInput polls ebiten for this tick's actions.
func ReadInput() Input {
	x, y := ebiten.CursorPosition()
	return Input{
		Quit:     ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape),
		Explode:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Transfer: inpututil.IsKeyJustPressed(ebiten.KeyT),
		Click:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Cursor:   burst.Vec2{X: float64(x), Y: float64(y)},
	}
}

// Game implements ebiten.Game around a simulator.
//
//   - left click: explosion and ripple at the cursor
//   - space: explosion at the centre
//   - T: money transfer across the window, ending in an explosion and a
//     points badge
//   - Q / Esc: quit
type Game struct {
	Sim     *burst.Simulator
	Screen  *Screen
	Effects *effects.Layer
	Stage   *effects.Stage
	Overlay Overlay
}

// NewGame wires a simulator and effects layer to a fresh screen.
func NewGame(width, height int, opts ...burst.Option) *Game {
	screen := NewScreen(width, height)
	sim := burst.New(screen, screen, opts...)
	stage := effects.NewStage(sim, rippleSize)

	return &Game{
		Sim:     sim,
		Screen:  screen,
		Effects: stage.Layer,
		Stage:   stage,
	}
}

func (g *Game) Update() error {
	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}

	err := g.HandleInput(ReadInput())
	if err == nil {
		g.Sim.Advance(1.0 / float64(ebiten.TPS()))
	}

	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}
	return err
}

// HandleInput applies in, skipping whatever the overlay is capturing. It
// returns ebiten.Termination when the user quits.
func (g *Game) HandleInput(in Input) error {
	keys := g.Overlay == nil || !g.Overlay.CapturesKeyboard()
	mouse := g.Overlay == nil || !g.Overlay.CapturesMouse()

	if keys && in.Quit {
		return ebiten.Termination
	}
	if mouse && in.Click {
		g.Celebrate(in.Cursor)
	}
	if keys && in.Explode {
		w, h := g.Screen.Size()
		g.Sim.SpawnDefault(burst.Vec2{X: w / 2, Y: h / 2})
	}
	if keys && in.Transfer {
		g.SendTransfer()
	}
	return nil
}

// Celebrate fires an explosion with a ripple at p.
func (g *Game) Celebrate(p burst.Vec2) {
	g.Stage.Celebrate(p, 0)
}

// SendTransfer flies money from the lower left to the upper right corner.
// It reports false, shaking the origin, while another transfer is in flight.
func (g *Game) SendTransfer() bool {
	w, h := g.Screen.Size()
	return g.Stage.SendTransfer(
		burst.Vec2{X: w * 0.15, Y: h * 0.85},
		burst.Vec2{X: w * 0.85, Y: h * 0.15},
	)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	g.Screen.Draw(screen)

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Screen.Resize(outsideWidth, outsideHeight)
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
