package pebbles

import "fmt"

// Engine owns the optional game slot of one process and applies invocations to it.
type Engine struct {
	state    *GameState
	random   RandomSource
	strategy Strategy
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrategy replaces the Program's move policy. A nil strategy is ignored.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) {
		if s != nil {
			e.strategy = s
		}
	}
}

// NewEngine creates an uninitialized engine drawing first players from random.
func NewEngine(random RandomSource, opts ...Option) *Engine {
	e := &Engine{
		random:   random,
		strategy: ReferenceStrategy{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialized reports whether a game slot exists.
func (e *Engine) Initialized() bool { return e.state != nil }

// Init validates cfg and installs the first game. When the Program is drawn as
// first player its opening move is applied and returned.
func (e *Engine) Init(msg MessageID, cfg Config) ([]Event, error) {
	if e.state != nil {
		return nil, ErrAlreadyInitialized
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	first, err := SelectFirstPlayer(e.random, msg)
	if err != nil {
		return nil, err
	}

	s := newGameState(cfg.PebblesCount, cfg.MaxPebblesPerTurn, cfg.Difficulty, first)
	var events []Event
	if first == Program {
		events = e.programTurn(s)
	}
	e.state = s
	return events, nil
}

// Handle applies one action. On error the slot is left exactly as it was.
func (e *Engine) Handle(msg MessageID, a Action) ([]Event, error) {
	if e.state == nil {
		return nil, ErrNotInitialized
	}

	saved := e.Checkpoint()
	events, err := e.apply(msg, a)
	if err != nil {
		e.Restore(saved)
		return nil, err
	}
	return events, nil
}

func (e *Engine) apply(msg MessageID, a Action) ([]Event, error) {
	switch a := a.(type) {
	case Turn:
		return e.turn(a.Count)
	case GiveUp:
		return e.giveUp(), nil
	case Restart:
		return e.restart(msg, a)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}

func (e *Engine) turn(count uint32) ([]Event, error) {
	s := e.state
	if s.IsOver() {
		return nil, fmt.Errorf("%w: %s already won", ErrGameOver, *s.Winner)
	}
	if limit := s.MaxTake(); count < 1 || count > limit {
		return nil, fmt.Errorf("%w: count %d outside 1..%d", ErrInvalidMove, count, limit)
	}

	s.PebblesRemaining -= count
	if ev, ok := checkWin(s, User); ok {
		return []Event{ev}, nil
	}
	return e.programTurn(s), nil
}

// giveUp concedes even a finished game, overwriting any recorded winner.
func (e *Engine) giveUp() []Event {
	w := Program
	e.state.Winner = &w
	return []Event{Won(Program)}
}

func (e *Engine) restart(msg MessageID, r Restart) ([]Event, error) {
	first, err := SelectFirstPlayer(e.random, msg)
	if err != nil {
		return nil, err
	}

	s := newGameState(r.PebblesCount, r.MaxPebblesPerTurn, r.Difficulty, first)
	var events []Event
	if first == Program {
		events = e.programTurn(s)
	}
	e.state = s
	return events, nil
}

// programTurn applies the Program's move to s. Nothing happens once a winner
// is recorded.
func (e *Engine) programTurn(s *GameState) []Event {
	if s.IsOver() {
		return nil
	}
	take := min(e.strategy.Take(s.Clone()), s.PebblesRemaining)
	s.PebblesRemaining -= take

	events := []Event{CounterTurn(take)}
	if ev, ok := checkWin(s, Program); ok {
		events = append(events, ev)
	}
	return events
}

// State returns a copy of the current game.
func (e *Engine) State() (GameState, error) {
	if e.state == nil {
		return GameState{}, ErrNoActiveGame
	}
	return e.state.Clone(), nil
}

// Checkpoint returns a detached copy of the slot, nil when uninitialized.
func (e *Engine) Checkpoint() *GameState {
	if e.state == nil {
		return nil
	}
	c := e.state.Clone()
	return &c
}

// Restore replaces the slot with a copy of s. A nil s empties the slot.
func (e *Engine) Restore(s *GameState) {
	if s == nil {
		e.state = nil
		return
	}
	c := s.Clone()
	e.state = &c
}
