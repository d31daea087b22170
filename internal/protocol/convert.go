package protocol

import (
	"fmt"

	"github.com/lox/pebbles/internal/pebbles"
)

// NewInit builds the init frame for cfg.
func NewInit(cfg pebbles.Config) *Init {
	return &Init{
		Type:              TypeInit,
		PebblesCount:      cfg.PebblesCount,
		MaxPebblesPerTurn: cfg.MaxPebblesPerTurn,
		Difficulty:        cfg.Difficulty.String(),
	}
}

// Config converts the frame into a game configuration. An empty difficulty
// means easy.
func (m *Init) Config() (pebbles.Config, error) {
	d, err := parseDifficulty(m.Difficulty)
	if err != nil {
		return pebbles.Config{}, err
	}
	return pebbles.Config{
		PebblesCount:      m.PebblesCount,
		MaxPebblesPerTurn: m.MaxPebblesPerTurn,
		Difficulty:        d,
	}, nil
}

func NewTurn(count uint32) *Turn { return &Turn{Type: TypeTurn, Count: count} }

func NewGiveUp() *GiveUp { return &GiveUp{Type: TypeGiveUp} }

func NewRestart(r pebbles.Restart) *Restart {
	return &Restart{
		Type:              TypeRestart,
		Difficulty:        r.Difficulty.String(),
		PebblesCount:      r.PebblesCount,
		MaxPebblesPerTurn: r.MaxPebblesPerTurn,
	}
}

func NewStateQuery() *StateQuery { return &StateQuery{Type: TypeStateQuery} }

// FromAction builds the frame for a game action.
func FromAction(a pebbles.Action) (Message, error) {
	switch a := a.(type) {
	case pebbles.Turn:
		return NewTurn(a.Count), nil
	case pebbles.GiveUp:
		return NewGiveUp(), nil
	case pebbles.Restart:
		return NewRestart(a), nil
	default:
		return nil, fmt.Errorf("%w: %T", pebbles.ErrUnknownAction, a)
	}
}

// ActionFor converts a client frame into a game action.
func ActionFor(m Message) (pebbles.Action, error) {
	switch m := m.(type) {
	case *Turn:
		return pebbles.Turn{Count: m.Count}, nil
	case *GiveUp:
		return pebbles.GiveUp{}, nil
	case *Restart:
		d, err := parseDifficulty(m.Difficulty)
		if err != nil {
			return nil, err
		}
		return pebbles.Restart{
			Difficulty:        d,
			PebblesCount:      m.PebblesCount,
			MaxPebblesPerTurn: m.MaxPebblesPerTurn,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T is not an action", ErrBadRequest, m)
	}
}

// NewState builds the snapshot frame for s.
func NewState(messageID string, s pebbles.GameState) *State {
	st := &State{
		Type:              TypeState,
		MessageID:         messageID,
		PebblesCount:      s.PebblesCount,
		MaxPebblesPerTurn: s.MaxPebblesPerTurn,
		PebblesRemaining:  s.PebblesRemaining,
		Difficulty:        s.Difficulty.String(),
		FirstPlayer:       s.FirstPlayer.String(),
	}
	if s.Winner != nil {
		w := s.Winner.String()
		st.Winner = &w
	}
	return st
}

// Game converts the snapshot back into a game state.
func (m *State) Game() (pebbles.GameState, error) {
	d, err := parseDifficulty(m.Difficulty)
	if err != nil {
		return pebbles.GameState{}, err
	}
	first, err := pebbles.ParsePlayer(m.FirstPlayer)
	if err != nil {
		return pebbles.GameState{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	s := pebbles.GameState{
		PebblesCount:      m.PebblesCount,
		MaxPebblesPerTurn: m.MaxPebblesPerTurn,
		PebblesRemaining:  m.PebblesRemaining,
		Difficulty:        d,
		FirstPlayer:       first,
	}
	if m.Winner != nil {
		w, err := pebbles.ParsePlayer(*m.Winner)
		if err != nil {
			return pebbles.GameState{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		s.Winner = &w
	}
	return s, nil
}

// EventMessage builds the frame for a game event.
func EventMessage(messageID string, ev pebbles.Event) (Message, error) {
	switch ev := ev.(type) {
	case pebbles.CounterTurnEvent:
		return &CounterTurn{Type: TypeCounterTurn, MessageID: messageID, Count: ev.Count}, nil
	case pebbles.WonEvent:
		return &Won{Type: TypeWon, MessageID: messageID, Player: ev.Player.String()}, nil
	default:
		return nil, fmt.Errorf("unknown event %T", ev)
	}
}

func (m *CounterTurn) Event() pebbles.Event { return pebbles.CounterTurn(m.Count) }

func (m *Won) Event() (pebbles.Event, error) {
	p, err := pebbles.ParsePlayer(m.Player)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return pebbles.Won(p), nil
}

func NewAck(messageID string, events int) *Ack {
	return &Ack{Type: TypeAck, MessageID: messageID, Events: uint32(events)}
}

func parseDifficulty(s string) (pebbles.Difficulty, error) {
	if s == "" {
		return pebbles.Easy, nil
	}
	d, err := pebbles.ParseDifficulty(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return d, nil
}
