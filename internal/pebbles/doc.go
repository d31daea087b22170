// Package pebbles implements the pebble-removal game played between an external
// User and the automated Program.
//
// The main type is Engine, which owns the single optional GameState of a process
// and applies every invocation to it: initialization, the three actions (Turn,
// GiveUp, Restart) and read-only state queries.
//
// # Basic Usage
//
//	e := pebbles.NewEngine(source)
//	events, err := e.Init("msg-1", pebbles.Config{PebblesCount: 15, MaxPebblesPerTurn: 3})
//	events, err = e.Handle("msg-2", pebbles.Turn{Count: 3})
//	state, err := e.State()
//
// Each call returns the events produced as replies to the triggering message
// (CounterTurn, Won) or a typed error. A failed call leaves the state exactly as
// it was before the call.
//
// # Finished Games
//
// Once a winner is recorded, Turn is rejected with ErrGameOver and nothing the
// Program does can overwrite the result. GiveUp is the one exception: it is
// accepted in any initialized state and always records the Program as winner,
// replacing an earlier User win. Restart starts a fresh game.
//
// # Deterministic Testing
//
// The first player is drawn from a RandomSource keyed by the message id. Tests
// can pass a RandomFunc that returns a fixed value:
//
//	even := pebbles.RandomFunc(func([]byte) (uint32, error) { return 0, nil })
//	e := pebbles.NewEngine(even) // User always starts
//
// # Concurrency
//
// Engine is not safe for concurrent use. The hosting runtime is expected to
// deliver invocations one at a time.
package pebbles
