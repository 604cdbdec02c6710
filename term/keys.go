// Package term plays the game in a terminal through tcell.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/host"
)

// Binding maps a special key, or a rune when Key is tcell.KeyRune, to an action.
type Binding struct {
	Key    tcell.Key
	Rune   rune
	Action host.Action
}

// DefaultBindings mirror the window controls, plus vi-style letters.
var DefaultBindings = []Binding{
	{Key: tcell.KeyLeft, Action: host.ActionLeft},
	{Key: tcell.KeyRune, Rune: 'h', Action: host.ActionLeft},
	{Key: tcell.KeyRight, Action: host.ActionRight},
	{Key: tcell.KeyRune, Rune: 'l', Action: host.ActionRight},
	{Key: tcell.KeyDown, Action: host.ActionDown},
	{Key: tcell.KeyRune, Rune: 'j', Action: host.ActionDown},
	{Key: tcell.KeyRune, Rune: ' ', Action: host.ActionDrop},
	{Key: tcell.KeyUp, Action: host.ActionRotate},
	{Key: tcell.KeyRune, Rune: 'k', Action: host.ActionRotate},
	{Key: tcell.KeyRune, Rune: 'p', Action: host.ActionPause},
	{Key: tcell.KeyRune, Rune: 'P', Action: host.ActionPause},
}

// ActionFor returns the action bound to a key event.
func ActionFor(bindings []Binding, ev *tcell.EventKey) (host.Action, bool) {
	for _, b := range bindings {
		if b.Key != ev.Key() {
			continue
		}
		if b.Key == tcell.KeyRune && b.Rune != ev.Rune() {
			continue
		}
		return b.Action, true
	}
	return 0, false
}

// IsQuit reports whether the key event ends the session: Esc, Ctrl-C or q.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
