package pebbles

// ActionKind names an action variant on the wire and in logs.
type ActionKind string

const (
	ActionTurn    ActionKind = "turn"
	ActionGiveUp  ActionKind = "give_up"
	ActionRestart ActionKind = "restart"
)

func (k ActionKind) String() string { return string(k) }

// Action is one of Turn, GiveUp or Restart.
type Action interface {
	Kind() ActionKind
	isAction()
}

// Turn removes Count pebbles on behalf of the User.
type Turn struct {
	Count uint32
}

// GiveUp concedes the game to the Program.
type GiveUp struct{}

// Restart replaces the game with a fresh one. Its fields are not validated.
type Restart struct {
	Difficulty        Difficulty
	PebblesCount      uint32
	MaxPebblesPerTurn uint32
}

func (Turn) Kind() ActionKind    { return ActionTurn }
func (GiveUp) Kind() ActionKind  { return ActionGiveUp }
func (Restart) Kind() ActionKind { return ActionRestart }

func (Turn) isAction()    {}
func (GiveUp) isAction()  {}
func (Restart) isAction() {}

// Config returns the creation input equivalent to r.
func (r Restart) Config() Config {
	return Config{
		PebblesCount:      r.PebblesCount,
		MaxPebblesPerTurn: r.MaxPebblesPerTurn,
		Difficulty:        r.Difficulty,
	}
}
