package host

import "fmt"

// Action is a player intent the host maps onto engine calls.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionDown
	ActionDrop
	ActionRotate
	ActionPause

	actionCount
)

var actionNames = [actionCount]string{"left", "right", "down", "drop", "rotate", "pause"}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// Input answers key-state queries for the current frame. Down is true while
// the bound key is held; Pressed only on the frame the key went down.
type Input interface {
	Down(Action) bool
	Pressed(Action) bool
}

// NoInput never reports any key.
type NoInput struct{}

func (NoInput) Down(Action) bool    { return false }
func (NoInput) Pressed(Action) bool { return false }
