// Package ebiten provides the Dear ImGui backend for the confetti window.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/confetti/debugui"
)

// Overlay wraps the Ebiten Dear ImGui backend so it can be drawn on top of
// the confetti window. Register System on the simulator's scheduler; its
// input state decides what the window may handle.
type Overlay struct {
	*ebitenbackend.EbitenBackend
	System *debugui.System
}

// NewOverlay creates the backend and its window. imgui.ini is disabled.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		EbitenBackend: backend,
		System:        &debugui.System{},
	}
}

// CapturesMouse reports whether ImGui wanted the mouse last frame.
func (o *Overlay) CapturesMouse() bool {
	return o.System.Input.WantCaptureMouse
}

// CapturesKeyboard reports whether ImGui wanted the keyboard last frame.
func (o *Overlay) CapturesKeyboard() bool {
	return o.System.Input.WantCaptureKeyboard
}
