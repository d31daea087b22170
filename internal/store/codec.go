package store

import (
	"errors"
	"fmt"

	"github.com/lox/pebbles/internal/pebbles"
	"github.com/tinylib/msgp/msgp"
)

// slotVersion is bumped whenever the file layout changes.
const slotVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported state file version")
	ErrInconsistentState  = errors.New("inconsistent game state")
)

// encodeSlot writes {"v": 1, "state": nil | {...}}.
func encodeSlot(b []byte, s *pebbles.GameState) []byte {
	b = msgp.AppendMapHeader(b, 2)
	b = msgp.AppendString(b, "v")
	b = msgp.AppendUint8(b, slotVersion)
	b = msgp.AppendString(b, "state")
	if s == nil {
		return msgp.AppendNil(b)
	}

	b = msgp.AppendMapHeader(b, 6)
	b = msgp.AppendString(b, "count")
	b = msgp.AppendUint32(b, s.PebblesCount)
	b = msgp.AppendString(b, "max")
	b = msgp.AppendUint32(b, s.MaxPebblesPerTurn)
	b = msgp.AppendString(b, "remaining")
	b = msgp.AppendUint32(b, s.PebblesRemaining)
	b = msgp.AppendString(b, "difficulty")
	b = msgp.AppendString(b, s.Difficulty.String())
	b = msgp.AppendString(b, "first")
	b = msgp.AppendString(b, s.FirstPlayer.String())
	b = msgp.AppendString(b, "winner")
	if s.Winner == nil {
		b = msgp.AppendNil(b)
	} else {
		b = msgp.AppendString(b, s.Winner.String())
	}
	return b
}

func decodeSlot(b []byte) (*pebbles.GameState, error) {
	n, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return nil, err
	}

	var (
		version uint8
		state   *pebbles.GameState
	)
	for ; n > 0; n-- {
		var key string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return nil, err
		}
		switch key {
		case "v":
			version, b, err = msgp.ReadUint8Bytes(b)
		case "state":
			if msgp.IsNil(b) {
				b, err = msgp.ReadNilBytes(b)
				break
			}
			state = &pebbles.GameState{}
			b, err = decodeState(b, state)
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return nil, msgp.WrapError(err, key)
		}
	}
	if version != slotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if state != nil && state.PebblesRemaining > state.PebblesCount {
		return nil, fmt.Errorf("%w: %d pebbles remaining of %d", ErrInconsistentState, state.PebblesRemaining, state.PebblesCount)
	}
	return state, nil
}

func decodeState(b []byte, s *pebbles.GameState) ([]byte, error) {
	n, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for ; n > 0; n-- {
		var key, v string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return b, err
		}
		switch key {
		case "count":
			s.PebblesCount, b, err = msgp.ReadUint32Bytes(b)
		case "max":
			s.MaxPebblesPerTurn, b, err = msgp.ReadUint32Bytes(b)
		case "remaining":
			s.PebblesRemaining, b, err = msgp.ReadUint32Bytes(b)
		case "difficulty":
			if v, b, err = msgp.ReadStringBytes(b); err == nil {
				s.Difficulty, err = pebbles.ParseDifficulty(v)
			}
		case "first":
			if v, b, err = msgp.ReadStringBytes(b); err == nil {
				s.FirstPlayer, err = pebbles.ParsePlayer(v)
			}
		case "winner":
			if msgp.IsNil(b) {
				b, err = msgp.ReadNilBytes(b)
				s.Winner = nil
				break
			}
			if v, b, err = msgp.ReadStringBytes(b); err == nil {
				var w pebbles.Player
				w, err = pebbles.ParsePlayer(v)
				s.Winner = &w
			}
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return b, msgp.WrapError(err, key)
		}
	}
	return b, nil
}
