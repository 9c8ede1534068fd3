// Package debugui draws Dear ImGui panels for a running confetti simulator.
// System is a burst system that defers each panel's widgets until after the
// frame's commands are flushed, and tracks whether ImGui wants the input.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/confetti/burst"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System defers every registered item's render function and refreshes the
// input capture state.
type System struct {
	Items []Item
	Input InputState
}

// Add appends a render function.
func (s *System) Add(render func()) {
	s.Items = append(s.Items, Item{Render: render})
}

// Execute updates input state and queues the render functions.
func (s *System) Execute(frame *burst.UpdateFrame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
