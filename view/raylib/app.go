package raylib

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/confetti/burst"
	"github.com/plus3/confetti/effects"
)

var background = rl.NewColor(0x1A, 0x36, 0x5D, 0xFF)

const rippleSize = 120

// App runs a simulator in a raylib window.
//
//   - left click: explosion and ripple at the cursor
//   - space: explosion at the centre
//   - T: money transfer ending in an explosion and a points badge
//   - Esc: quit
type App struct {
	Screen  *Screen
	Sim     *burst.Simulator
	Effects *effects.Layer
	Stage   *effects.Stage

	// ShowStats draws particle counts in the corner.
	ShowStats bool
}

// NewApp wires a simulator and effects layer to a fresh screen.
func NewApp(width, height int, opts ...burst.Option) *App {
	screen := NewScreen(width, height)
	sim := burst.New(screen, screen, opts...)
	stage := effects.NewStage(sim, rippleSize)

	return &App{
		Screen:  screen,
		Sim:     sim,
		Effects: stage.Layer,
		Stage:   stage,
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

// RenderSystem draws the screen once the frame's commands are applied.
type RenderSystem struct {
	App *App
}

func (r *RenderSystem) Execute(frame *burst.UpdateFrame) {
	frame.Commands.Defer(r.App.draw)
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(background)
	a.Screen.Draw()

	if a.ShowStats {
		stats := a.Sim.Stats()
		rl.DrawText(fmt.Sprintf("active %d  pending %d", stats.Active, stats.Pending), 10, 10, 20, rl.White)
		rl.DrawText(fmt.Sprintf("spawned %d  culled %d", stats.Spawned, stats.Culled), 10, 35, 20, rl.White)
	}
	rl.EndDrawing()
}

func (a *App) handleInput() {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		a.Celebrate(burst.Vec2{X: float64(pos.X), Y: float64(pos.Y)})
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		w, h := a.Screen.Size()
		a.Sim.SpawnDefault(burst.Vec2{X: w / 2, Y: h / 2})
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.SendTransfer()
	}
}

// Run opens the window and drives frames until it is closed. Any systems
// registered before Run execute ahead of the render system.
func (a *App) Run(title string) {
	w, h := a.Screen.Size()
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w), int32(h), title)
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	a.Sim.Scheduler().Register(&RenderSystem{App: a})

	lastTime := rl.GetTime()
	for !rl.WindowShouldClose() {
		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		a.Screen.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		a.handleInput()
		a.Sim.Advance(deltaTime)
	}
}
