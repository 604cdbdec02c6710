package host

import "time"

// Reference timings for the host loop.
const (
	DefaultFPS             = 30
	DefaultGravityInterval = 500 * time.Millisecond
	DefaultRestartDelay    = 2 * time.Second
)

// InputSystem maps the frame's key state onto engine calls. Movement repeats
// every frame while held; drop, rotate and pause fire on the press edge.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *Frame) {
	in, g := frame.Input, frame.Game

	if in.Down(ActionLeft) {
		g.MovePiece(-1, 0)
	}
	if in.Down(ActionRight) {
		g.MovePiece(1, 0)
	}
	if in.Down(ActionDown) {
		g.MovePiece(0, 1)
	}
	if in.Pressed(ActionDrop) {
		frame.Emit(g.HardDrop()...)
	}
	if in.Pressed(ActionRotate) {
		g.RotatePiece()
	}
	if in.Pressed(ActionPause) {
		g.TogglePause()
	}
}

// GravitySystem steps the game each time Interval has accumulated. At most one
// step runs per frame and surplus time is carried over rather than drained, so
// under slow frames gravity lags behind real time.
type GravitySystem struct {
	Interval time.Duration

	// Steps counts the gravity steps issued so far.
	Steps int

	accumulator float64
}

func (s *GravitySystem) Execute(frame *Frame) {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultGravityInterval
	}

	s.accumulator += frame.DeltaTime
	if s.accumulator >= interval.Seconds() {
		frame.Emit(frame.Game.Step()...)
		s.accumulator -= interval.Seconds()
		s.Steps++
	}
}

// RestartSystem restarts a finished game once it has stayed over for Delay.
// The restart runs after the frame's remaining systems.
type RestartSystem struct {
	Delay time.Duration

	// Restarts counts the restarts issued so far.
	Restarts int

	elapsed float64
}

func (s *RestartSystem) Execute(frame *Frame) {
	g := frame.Game
	if !g.GameOver() {
		s.elapsed = 0
		return
	}

	s.elapsed += frame.DeltaTime
	if s.elapsed >= s.Delay.Seconds() {
		s.elapsed = 0
		s.Restarts++
		frame.Commands.Defer(g.Restart)
	}
}
