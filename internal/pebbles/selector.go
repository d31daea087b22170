package pebbles

import "fmt"

// RandomSource supplies an unpredictable 32-bit value keyed by salt. Hosts key
// it with the id of the triggering message so the value cannot be replayed.
type RandomSource interface {
	Random(salt []byte) (uint32, error)
}

// RandomFunc adapts a function to the RandomSource interface.
type RandomFunc func(salt []byte) (uint32, error)

func (f RandomFunc) Random(salt []byte) (uint32, error) { return f(salt) }

// SelectFirstPlayer draws the starting player for the game created by msg:
// User on an even value, Program on an odd one.
func SelectFirstPlayer(src RandomSource, msg MessageID) (Player, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: no source configured", ErrRandomUnavailable)
	}
	v, err := src.Random([]byte(msg))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomUnavailable, err)
	}
	if v%2 == 0 {
		return User, nil
	}
	return Program, nil
}
