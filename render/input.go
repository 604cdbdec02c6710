package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetris/host"
)

// Bindings maps each action to the keys that trigger it.
type Bindings map[host.Action][]ebiten.Key

// DefaultBindings are the reference controls: arrows to move, space to drop,
// up to rotate and P to pause.
func DefaultBindings() Bindings {
	return Bindings{
		host.ActionLeft:   {ebiten.KeyArrowLeft},
		host.ActionRight:  {ebiten.KeyArrowRight},
		host.ActionDown:   {ebiten.KeyArrowDown},
		host.ActionDrop:   {ebiten.KeySpace},
		host.ActionRotate: {ebiten.KeyArrowUp},
		host.ActionPause:  {ebiten.KeyP},
	}
}

// Keys returns every key bound to any action.
func (b Bindings) Keys() []ebiten.Key {
	var keys []ebiten.Key
	for _, a := range host.Actions() {
		keys = append(keys, b[a]...)
	}
	return keys
}

// KeyboardInput reads the ebiten keyboard state. It must only be queried from
// within the ebiten update loop.
type KeyboardInput struct {
	Bindings Bindings
	// Blocked, when set and true, hides the keyboard from the game, e.g. while
	// the debug overlay has focus.
	Blocked func() bool
}

func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{Bindings: DefaultBindings()}
}

func (in *KeyboardInput) Down(a host.Action) bool {
	return in.any(a, ebiten.IsKeyPressed)
}

func (in *KeyboardInput) Pressed(a host.Action) bool {
	return in.any(a, inpututil.IsKeyJustPressed)
}

func (in *KeyboardInput) any(a host.Action, test func(ebiten.Key) bool) bool {
	if in.Blocked != nil && in.Blocked() {
		return false
	}
	for _, k := range in.Bindings[a] {
		if test(k) {
			return true
		}
	}
	return false
}
