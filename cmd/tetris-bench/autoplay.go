package main

import (
	"math/rand/v2"

	"github.com/plus3/tetris/game"
	"github.com/plus3/tetris/host"
)

// Per-frame odds of each action in the autoplayer.
var actionOdds = map[host.Action]float64{
	host.ActionLeft:   0.25,
	host.ActionRight:  0.25,
	host.ActionDown:   0.10,
	host.ActionDrop:   0.04,
	host.ActionRotate: 0.10,
}

// Autoplay is a host.Input that mashes random keys. Registered as a system
// ahead of host.InputSystem, it rolls a fresh set of keys every frame.
type Autoplay struct {
	rng    *rand.Rand
	active map[host.Action]bool
}

func NewAutoplay(seed uint64) *Autoplay {
	return &Autoplay{
		rng:    game.NewRandomizer(seed),
		active: make(map[host.Action]bool),
	}
}

func (a *Autoplay) Down(act host.Action) bool    { return a.active[act] }
func (a *Autoplay) Pressed(act host.Action) bool { return a.active[act] }

func (a *Autoplay) Execute(frame *host.Frame) {
	for _, act := range host.Actions() {
		a.active[act] = a.rng.Float64() < actionOdds[act]
	}
}

// ScoreTracker remembers the best score reached in any game.
type ScoreTracker struct {
	Best int
}

func (s *ScoreTracker) Execute(frame *host.Frame) {
	for _, ev := range frame.Events {
		if ev.Kind == game.EventGameOver {
			s.Best = max(s.Best, ev.Score)
		}
	}
	s.Best = max(s.Best, frame.Game.Score())
}
