// Package debugui provides a Dear ImGui overlay for inspecting a running game.
// Panels are rendered through the host scheduler's deferred commands, so they
// draw after every system of the frame has run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/host"
)

// Panel renders one ImGui window from the state of a frame.
type Panel interface {
	Render(frame *host.Frame)
}

// PanelFunc adapts a function to a Panel.
type PanelFunc func(frame *host.Frame)

func (fn PanelFunc) Render(frame *host.Frame) { fn(frame) }

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System updates the input capture state and defers every panel's render.
type System struct {
	Panels []Panel
	Input  InputState

	// Capture reports ImGui's capture flags. Nil reads them from the current
	// ImGui context.
	Capture func() InputState
}

func (s *System) Execute(frame *host.Frame) {
	if s.Capture != nil {
		s.Input = s.Capture()
	} else {
		io := imgui.CurrentIO()
		s.Input = InputState{
			WantCaptureMouse:    io.WantCaptureMouse(),
			WantCaptureKeyboard: io.WantCaptureKeyboard(),
		}
	}

	for _, p := range s.Panels {
		frame.Commands.Defer(func() { p.Render(frame) })
	}
}

// KeyboardCaptured reports whether ImGui held the keyboard in the last frame.
func (s *System) KeyboardCaptured() bool {
	return s.Input.WantCaptureKeyboard
}
