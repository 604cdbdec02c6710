package host

// System represents a behavior executed once per frame against the game.
// Systems may carry custom state fields that persist between frames.
type System interface {
	Execute(frame *Frame)
}
