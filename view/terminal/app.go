package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/confetti/burst"
	"github.com/plus3/confetti/effects"
)

// FrameInterval is the terminal refresh period (~60 FPS).
const FrameInterval = 16 * time.Millisecond

// App runs a simulator in the terminal.
//
//   - mouse click: explosion and ripple at the cell
//   - space: explosion at the centre
//   - t: money transfer ending in an explosion and a points badge
//   - q, Esc, Ctrl-C: quit
type App struct {
	Screen  *Screen
	Sim     *burst.Simulator
	Effects *effects.Layer
	Stage   *effects.Stage

	term    tcell.Screen
	buttons tcell.ButtonMask
}

// NewApp wires a simulator and effects layer to term, which must already
// be initialised.
func NewApp(term tcell.Screen, opts ...burst.Option) *App {
	screen := NewScreen(term)
	sim := burst.New(screen, screen, opts...)
	stage := effects.NewStage(sim, 6*CellWidth)

	return &App{
		Screen:  screen,
		Sim:     sim,
		Effects: stage.Layer,
		Stage:   stage,
		term:    term,
	}
}

// Celebrate fires an explosion with a ripple at p.
func (a *App) Celebrate(p burst.Vec2) {
	a.Stage.Celebrate(p, 0)
}

// SendTransfer flies money from the lower left to the upper right. It
// reports false, shaking the origin, while another transfer is in flight.
func (a *App) SendTransfer() bool {
	w, h := a.Screen.Size()
	return a.Stage.SendTransfer(
		burst.Vec2{X: w * 0.15, Y: h * 0.85},
		burst.Vec2{X: w * 0.85, Y: h * 0.15},
	)
}

// HandleEvent applies one terminal event. It returns false when the app
// should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			w, h := a.Screen.Size()
			a.Sim.SpawnDefault(burst.Vec2{X: w / 2, Y: h / 2})
		case ev.Key() == tcell.KeyRune && ev.Rune() == 't':
			a.SendTransfer()
		}
	case *tcell.EventMouse:
		// Motion with the button held repeats Button1; only the press counts.
		pressed := ev.Buttons()&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
		a.buttons = ev.Buttons()
		if pressed {
			col, row := ev.Position()
			a.Celebrate(PointAt(col, row))
		}
	case *tcell.EventResize:
		a.term.Sync()
	}
	return true
}

// Run drives frames until ctx is cancelled or the user quits.
func (a *App) Run(ctx context.Context) {
	a.term.EnableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.term.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.Sim.Advance(now.Sub(last).Seconds())
			last = now
			a.Screen.Draw()
		}
	}
}
