package pebbles

import (
	"fmt"
	"strings"
)

// MessageID identifies the message that triggered an invocation.
type MessageID string

// Player is one of the two parties of a game.
type Player uint8

const (
	User Player = iota
	Program
)

func (p Player) String() string {
	switch p {
	case User:
		return "user"
	case Program:
		return "program"
	default:
		return fmt.Sprintf("player(%d)", uint8(p))
	}
}

// ParsePlayer converts "user" or "program" (any case) into a Player.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return User, nil
	case "program":
		return Program, nil
	default:
		return 0, fmt.Errorf("unknown player %q", s)
	}
}

func (p Player) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Player) UnmarshalText(b []byte) error {
	v, err := ParsePlayer(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Difficulty is stored with a game. The reference strategy ignores it.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", uint8(d))
	}
}

// ParseDifficulty converts "easy" or "hard" (any case) into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}

func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Config is the creation input of a game.
type Config struct {
	PebblesCount      uint32
	MaxPebblesPerTurn uint32
	Difficulty        Difficulty
}

// Validate reports ErrInvalidConfiguration when the pile is empty, the per-turn
// cap is zero, or the cap exceeds the pile.
func (c Config) Validate() error {
	switch {
	case c.PebblesCount == 0:
		return fmt.Errorf("%w: pebbles_count must be positive", ErrInvalidConfiguration)
	case c.MaxPebblesPerTurn == 0:
		return fmt.Errorf("%w: max_pebbles_per_turn must be positive", ErrInvalidConfiguration)
	case c.MaxPebblesPerTurn > c.PebblesCount:
		return fmt.Errorf("%w: max_pebbles_per_turn %d exceeds pebbles_count %d",
			ErrInvalidConfiguration, c.MaxPebblesPerTurn, c.PebblesCount)
	}
	return nil
}

// GameState is the complete state of one game instance.
type GameState struct {
	PebblesCount      uint32
	MaxPebblesPerTurn uint32
	PebblesRemaining  uint32
	Difficulty        Difficulty
	FirstPlayer       Player
	Winner            *Player
}

// Clone returns a copy that shares no memory with s.
func (s GameState) Clone() GameState {
	if s.Winner != nil {
		w := *s.Winner
		s.Winner = &w
	}
	return s
}

// IsOver reports whether a winner has been recorded.
func (s GameState) IsOver() bool { return s.Winner != nil }

// MaxTake is the largest count a Turn may remove right now.
func (s GameState) MaxTake() uint32 {
	return min(s.MaxPebblesPerTurn, s.PebblesRemaining)
}

func newGameState(count, maxPerTurn uint32, d Difficulty, first Player) *GameState {
	return &GameState{
		PebblesCount:      count,
		MaxPebblesPerTurn: maxPerTurn,
		PebblesRemaining:  count,
		Difficulty:        d,
		FirstPlayer:       first,
	}
}
