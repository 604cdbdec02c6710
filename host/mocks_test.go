package host_test

import (
	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/host"
	"github.com/stretchr/testify/mock"
)

type MockInput struct {
	mock.Mock
}

func (m *MockInput) Down(a host.Action) bool {
	args := m.Called(a)
	return args.Bool(0)
}

func (m *MockInput) Pressed(a host.Action) bool {
	args := m.Called(a)
	return args.Bool(0)
}

// expectKeys sets every query to false except the listed down and pressed actions.
func (m *MockInput) expectKeys(down []host.Action, pressed []host.Action) {
	isIn := func(a host.Action, set []host.Action) bool {
		for _, s := range set {
			if s == a {
				return true
			}
		}
		return false
	}
	for _, a := range host.Actions() {
		m.On("Down", a).Return(isIn(a, down)).Maybe()
		m.On("Pressed", a).Return(isIn(a, pressed)).Maybe()
	}
}

// shapes deals the given shapes in order, forever.
type shapes struct {
	seq []game.Shape
	i   int
}

func (s *shapes) IntN(n int) int {
	shape := s.seq[s.i%len(s.seq)]
	s.i++
	return int(shape)
}

func newGame(seq ...game.Shape) *game.Game {
	return game.New(game.WithRandomizer(&shapes{seq: seq}))
}

// recorder keeps a copy of every frame's events.
type recorder struct {
	frames [][]game.Event
}

func (r *recorder) Execute(frame *host.Frame) {
	r.frames = append(r.frames, append([]game.Event(nil), frame.Events...))
}

func (r *recorder) all() []game.Event {
	var out []game.Event
	for _, f := range r.frames {
		out = append(out, f...)
	}
	return out
}
