package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/host"
)

// Input turns tcell events into per-frame key state. Terminals report key
// presses but not releases, so a key event counts as both held and pressed for
// the frame it arrives in; the terminal's autorepeat keeps a held key moving.
//
// Input is also a host.System and must be registered before host.InputSystem
// so the events are drained before they are read.
type Input struct {
	Bindings []Binding
	// Quit is called on the loop goroutine when a quit key arrives.
	Quit func()

	events  chan tcell.Event
	active  map[host.Action]bool
	resized bool
}

func NewInput(buffer int) *Input {
	return &Input{
		Bindings: DefaultBindings,
		events:   make(chan tcell.Event, buffer),
		active:   make(map[host.Action]bool),
	}
}

// Events is where the poller forwards screen events.
func (in *Input) Events() chan<- tcell.Event {
	return in.events
}

func (in *Input) Down(a host.Action) bool    { return in.active[a] }
func (in *Input) Pressed(a host.Action) bool { return in.active[a] }

func (in *Input) Execute(frame *host.Frame) {
	clear(in.active)

	for {
		select {
		case ev := <-in.events:
			in.handle(ev)
		default:
			return
		}
	}
}

func (in *Input) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			if in.Quit != nil {
				in.Quit()
			}
			return
		}
		if a, ok := ActionFor(in.Bindings, ev); ok {
			in.active[a] = true
		}
	case *tcell.EventResize:
		in.resized = true
	}
}

// TakeResize reports whether the screen was resized since the last call.
func (in *Input) TakeResize() bool {
	r := in.resized
	in.resized = false
	return r
}
