package protocol

import (
	"errors"
	"fmt"

	"github.com/lox/pebbles/internal/host"
	"github.com/lox/pebbles/internal/pebbles"
)

// ErrBadRequest marks frames that could not be decoded or converted.
var ErrBadRequest = errors.New("bad request")

// Error codes carried by Error frames.
const (
	CodeInvalidConfiguration = "invalid_configuration"
	CodeInvalidMove          = "invalid_move"
	CodeGameOver             = "game_over"
	CodeNotInitialized       = "not_initialized"
	CodeAlreadyInitialized   = "already_initialized"
	CodeNoActiveGame         = "no_active_game"
	CodeRandomUnavailable    = "random_unavailable"
	CodeBudgetExceeded       = "budget_exceeded"
	CodeBadRequest           = "bad_request"
	CodeInternal             = "internal"
)

var codes = []struct {
	code string
	err  error
}{
	{CodeInvalidConfiguration, pebbles.ErrInvalidConfiguration},
	// before invalid_move, which it wraps
	{CodeGameOver, pebbles.ErrGameOver},
	{CodeInvalidMove, pebbles.ErrInvalidMove},
	{CodeNotInitialized, pebbles.ErrNotInitialized},
	{CodeAlreadyInitialized, pebbles.ErrAlreadyInitialized},
	{CodeNoActiveGame, pebbles.ErrNoActiveGame},
	{CodeRandomUnavailable, pebbles.ErrRandomUnavailable},
	{CodeBudgetExceeded, host.ErrBudgetExceeded},
	{CodeBadRequest, ErrBadRequest},
	{CodeBadRequest, pebbles.ErrUnknownAction},
	{CodeBadRequest, ErrUnknownMessageType},
	{CodeBadRequest, ErrMissingType},
}

// CodeFor maps an error to its wire code. Unrecognized errors are internal.
func CodeFor(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// ErrorFor returns the sentinel for a wire code, nil for internal or unknown codes.
func ErrorFor(code string) error {
	for _, c := range codes {
		if c.code == code {
			return c.err
		}
	}
	return nil
}

// NewError builds the error frame for err.
func NewError(messageID string, err error) *Error {
	return &Error{
		Type:      TypeError,
		MessageID: messageID,
		Code:      CodeFor(err),
		Message:   err.Error(),
	}
}

// RemoteError is an Error frame received from a host. It unwraps to the
// matching sentinel so callers can use errors.Is.
type RemoteError struct {
	MessageID string
	Code      string
	Message   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RemoteError) Unwrap() error { return ErrorFor(e.Code) }

// Err converts the frame into a RemoteError.
func (m *Error) Err() error {
	return &RemoteError{MessageID: m.MessageID, Code: m.Code, Message: m.Message}
}
