package game

import "math/rand/v2"

// Randomizer is the source of piece draws. *rand.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// NewRandomizer returns a deterministic generator for the given seed.
func NewRandomizer(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalRandomizer draws from the runtime-seeded math/rand/v2 source.
type globalRandomizer struct{}

func (globalRandomizer) IntN(n int) int {
	return rand.IntN(n)
}

// RandomShape draws one of the seven shapes with equal probability.
func RandomShape(r Randomizer) Shape {
	return Shape(r.IntN(ShapeCount))
}

// RandomPiece draws a shape and returns it at the spawn offset.
func RandomPiece(r Randomizer) Piece {
	return NewPiece(RandomShape(r))
}
