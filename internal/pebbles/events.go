package pebbles

import "fmt"

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeCounterTurn EventType = "counter_turn"
	EventTypeWon         EventType = "won"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is a reply emitted by an invocation.
type Event interface {
	EventType() EventType
}

// CounterTurnEvent reports how many pebbles the Program removed.
type CounterTurnEvent struct {
	Count uint32
}

func (e CounterTurnEvent) EventType() EventType { return EventTypeCounterTurn }
func (e CounterTurnEvent) String() string       { return fmt.Sprintf("CounterTurn(%d)", e.Count) }

// WonEvent reports the winner of the game.
type WonEvent struct {
	Player Player
}

func (e WonEvent) EventType() EventType { return EventTypeWon }
func (e WonEvent) String() string       { return fmt.Sprintf("Won(%s)", e.Player) }

// CounterTurn is shorthand for CounterTurnEvent{Count: n}.
func CounterTurn(n uint32) Event { return CounterTurnEvent{Count: n} }

// Won is shorthand for WonEvent{Player: p}.
func Won(p Player) Event { return WonEvent{Player: p} }
