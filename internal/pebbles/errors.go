package pebbles

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidMove          = errors.New("invalid move")
	ErrNotInitialized       = errors.New("game not initialized")
	ErrAlreadyInitialized   = errors.New("game already initialized")
	ErrNoActiveGame         = errors.New("no active game")
	ErrRandomUnavailable    = errors.New("random source unavailable")
	ErrUnknownAction        = errors.New("unknown action")

	// ErrGameOver rejects a Turn once a winner is recorded. It is an ErrInvalidMove.
	ErrGameOver = fmt.Errorf("%w: game is over", ErrInvalidMove)
)
