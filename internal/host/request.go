package host

import (
	"github.com/lox/pebbles/internal/pebbles"
)

type requestKind uint8

const (
	kindInit requestKind = iota
	kindAction
	kindQuery
)

func (k requestKind) String() string {
	switch k {
	case kindInit:
		return "init"
	case kindAction:
		return "action"
	case kindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Request is one invocation of the hosted game.
type Request struct {
	kind   requestKind
	config pebbles.Config
	action pebbles.Action
}

// InitRequest creates the game.
func InitRequest(cfg pebbles.Config) Request {
	return Request{kind: kindInit, config: cfg}
}

// ActionRequest applies a Turn, GiveUp or Restart.
func ActionRequest(a pebbles.Action) Request {
	return Request{kind: kindAction, action: a}
}

// QueryRequest reads the current state.
func QueryRequest() Request {
	return Request{kind: kindQuery}
}

// Name describes the request for logs.
func (r Request) Name() string {
	if r.kind == kindAction && r.action != nil {
		return r.action.Kind().String()
	}
	return r.kind.String()
}

// Reply is what an invocation produced. State is set for queries only.
type Reply struct {
	MessageID pebbles.MessageID
	Events    []pebbles.Event
	State     *pebbles.GameState
}
