package pebbles

// Strategy decides how many pebbles the Program removes on its turn. The engine
// clamps the answer to the pebbles remaining.
type Strategy interface {
	Take(state GameState) uint32
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc func(GameState) uint32

func (f StrategyFunc) Take(s GameState) uint32 { return f(s) }

// ReferenceStrategy always takes a single pebble, or none when the pile is empty.
// Difficulty has no effect.
type ReferenceStrategy struct{}

func (ReferenceStrategy) Take(s GameState) uint32 {
	return min(1, s.PebblesRemaining)
}
