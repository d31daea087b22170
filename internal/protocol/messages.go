// Package protocol defines the MessagePack frames exchanged between a game
// host and its clients. Every frame is a map carrying a "type" key.
package protocol

//go:generate msgp -tests=false

// Frame types
const (
	// Client -> Host
	TypeInit       = "init"
	TypeTurn       = "turn"
	TypeGiveUp     = "give_up"
	TypeRestart    = "restart"
	TypeStateQuery = "state"

	// Host -> Client
	TypeCounterTurn = "counter_turn"
	TypeWon         = "won"
	TypeState       = "state"
	TypeAck         = "ack"
	TypeError       = "error"
)

// Client -> Host Messages

// Init creates the game. Accepted once per host.
type Init struct {
	Type              string `msg:"type"`
	PebblesCount      uint32 `msg:"pebbles_count"`
	MaxPebblesPerTurn uint32 `msg:"max_pebbles_per_turn"`
	Difficulty        string `msg:"difficulty"` // easy, hard
}

// Turn removes Count pebbles
type Turn struct {
	Type  string `msg:"type"`
	Count uint32 `msg:"count"`
}

// GiveUp concedes the game
type GiveUp struct {
	Type string `msg:"type"`
}

// Restart replaces the game with a new one
type Restart struct {
	Type              string `msg:"type"`
	Difficulty        string `msg:"difficulty"`
	PebblesCount      uint32 `msg:"pebbles_count"`
	MaxPebblesPerTurn uint32 `msg:"max_pebbles_per_turn"`
}

// StateQuery asks for a snapshot
type StateQuery struct {
	Type string `msg:"type"`
}

// Host -> Client Messages

// CounterTurn reports the Program's move
type CounterTurn struct {
	Type      string `msg:"type"`
	MessageID string `msg:"message_id"`
	Count     uint32 `msg:"count"`
}

// Won reports the winner
type Won struct {
	Type      string `msg:"type"`
	MessageID string `msg:"message_id"`
	Player    string `msg:"player"` // user, program
}

// State is the full game snapshot
type State struct {
	Type              string  `msg:"type" json:"-"`
	MessageID         string  `msg:"message_id" json:"message_id,omitempty"`
	PebblesCount      uint32  `msg:"pebbles_count" json:"pebbles_count"`
	MaxPebblesPerTurn uint32  `msg:"max_pebbles_per_turn" json:"max_pebbles_per_turn"`
	PebblesRemaining  uint32  `msg:"pebbles_remaining" json:"pebbles_remaining"`
	Difficulty        string  `msg:"difficulty" json:"difficulty"`
	FirstPlayer       string  `msg:"first_player" json:"first_player"`
	Winner            *string `msg:"winner" json:"winner"`
}

// Ack closes the reply to a mutating request. Events is the number of event
// frames sent before it.
type Ack struct {
	Type      string `msg:"type"`
	MessageID string `msg:"message_id"`
	Events    uint32 `msg:"events"`
}

// Error message
type Error struct {
	Type      string `msg:"type"`
	MessageID string `msg:"message_id"`
	Code      string `msg:"code"`
	Message   string `msg:"message"`
}
