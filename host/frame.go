package host

import "github.com/plus3/tetris/game"

// Frame is handed to every system during one scheduler pass.
type Frame struct {
	// DeltaTime is the elapsed time since the previous frame, in seconds.
	DeltaTime float64
	Game      *game.Game
	Input     Input
	// Events collects the engine outcomes produced during this frame.
	Events   []game.Event
	Commands *Commands
}

func newFrame(dt float64, g *game.Game, input Input) *Frame {
	return &Frame{
		DeltaTime: dt,
		Game:      g,
		Input:     input,
		Commands:  newCommands(),
	}
}

// Emit records engine events so later systems in the same frame can react.
func (f *Frame) Emit(events ...game.Event) {
	f.Events = append(f.Events, events...)
}

// Has reports whether an event of the given kind was emitted this frame.
func (f *Frame) Has(kind game.EventKind) bool {
	for _, ev := range f.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
