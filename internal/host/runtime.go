package host

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/pebbles/internal/msgid"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/lox/pebbles/internal/store"
)

var (
	ErrBudgetExceeded = errors.New("invocation budget exceeded")
	ErrStopped        = errors.New("runtime stopped")
	ErrPersist        = errors.New("persist game state")
)

const (
	// DefaultBudget bounds how long an invocation may wait and run.
	DefaultBudget = 5 * time.Second

	mailboxSize = 64
)

// IDSource mints message ids.
type IDSource interface {
	New() (string, error)
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithClock sets the clock used for budgets.
func WithClock(c quartz.Clock) Option {
	return func(r *Runtime) { r.clock = c }
}

// WithStore persists the slot after every committed invocation.
func WithStore(s store.Store) Option {
	return func(r *Runtime) { r.store = s }
}

// WithBudget sets the per-invocation budget. Zero disables it.
func WithBudget(d time.Duration) Option {
	return func(r *Runtime) { r.budget = d }
}

// WithIDSource replaces the message id generator.
func WithIDSource(ids IDSource) Option {
	return func(r *Runtime) { r.ids = ids }
}

// Runtime serializes invocations against one engine.
type Runtime struct {
	engine  *pebbles.Engine
	store   store.Store
	clock   quartz.Clock
	budget  time.Duration
	ids     IDSource
	logger  *log.Logger
	mailbox chan *invocation
	stopped chan struct{}
	running atomic.Bool
}

const (
	statusPending int32 = iota
	statusStarted
	statusExpired
)

type invocation struct {
	id       pebbles.MessageID
	req      Request
	deadline time.Time
	status   atomic.Int32
	done     chan result
}

type result struct {
	reply Reply
	err   error
}

// NewRuntime wraps engine. Without options it keeps the slot in memory, uses
// the real clock and DefaultBudget.
func NewRuntime(engine *pebbles.Engine, logger *log.Logger, opts ...Option) *Runtime {
	r := &Runtime{
		engine:  engine,
		store:   store.NewMemory(),
		clock:   quartz.NewReal(),
		budget:  DefaultBudget,
		ids:     msgid.NewGenerator(nil),
		logger:  logger.WithPrefix("host"),
		mailbox: make(chan *invocation, mailboxSize),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Restore loads a previously persisted slot into the engine. It must be called
// before Run. It reports whether a game was found.
func (r *Runtime) Restore(ctx context.Context) (bool, error) {
	if r.running.Load() {
		return false, errors.New("restore while running")
	}
	s, err := r.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load game state: %w", err)
	}
	r.engine.Restore(s)
	if s != nil {
		r.logger.Info("Restored game", "remaining", s.PebblesRemaining, "winner", winnerName(s))
	}
	return s != nil, nil
}

// Run processes invocations until ctx is done.
func (r *Runtime) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return errors.New("runtime already running")
	}
	defer close(r.stopped)

	r.logger.Debug("Runtime started", "budget", r.budget)
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("Runtime stopped")
			return nil
		case inv := <-r.mailbox:
			r.process(ctx, inv)
		}
	}
}

// Send submits req and waits for its reply.
func (r *Runtime) Send(ctx context.Context, req Request) (Reply, error) {
	inv, err := r.submit(ctx, req)
	if err != nil {
		return Reply{}, err
	}

	var expired chan struct{}
	if r.budget > 0 {
		fired := make(chan struct{})
		t := r.clock.AfterFunc(r.budget, func() { close(fired) })
		defer t.Stop()
		expired = fired
	}

	cancelled := ctx.Done()
	for {
		select {
		case res := <-inv.done:
			return res.reply, res.err
		case <-expired:
			if inv.status.CompareAndSwap(statusPending, statusExpired) {
				r.logger.Warn("Invocation budget exceeded", "message_id", inv.id, "request", req.Name())
				return Reply{MessageID: inv.id}, ErrBudgetExceeded
			}
			// already running; it finishes on its own
			expired = nil
		case <-cancelled:
			if inv.status.CompareAndSwap(statusPending, statusExpired) {
				return Reply{MessageID: inv.id}, ctx.Err()
			}
			cancelled = nil
		case <-r.stopped:
			select {
			case res := <-inv.done:
				return res.reply, res.err
			default:
				return Reply{MessageID: inv.id}, ErrStopped
			}
		}
	}
}

// submit stamps req with a message id and queues it.
func (r *Runtime) submit(ctx context.Context, req Request) (*invocation, error) {
	id, err := r.ids.New()
	if err != nil {
		return nil, err
	}
	inv := &invocation{
		id:   pebbles.MessageID(id),
		req:  req,
		done: make(chan result, 1),
	}
	if r.budget > 0 {
		inv.deadline = r.clock.Now().Add(r.budget)
	}

	select {
	case r.mailbox <- inv:
		return inv, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-r.stopped:
		return nil, ErrStopped
	}
}

func (r *Runtime) process(ctx context.Context, inv *invocation) {
	if !inv.deadline.IsZero() && !r.clock.Now().Before(inv.deadline) {
		if inv.status.CompareAndSwap(statusPending, statusExpired) {
			r.logger.Warn("Discarding expired invocation", "message_id", inv.id, "request", inv.req.Name())
			inv.done <- result{reply: Reply{MessageID: inv.id}, err: ErrBudgetExceeded}
		}
		return
	}
	if !inv.status.CompareAndSwap(statusPending, statusStarted) {
		r.logger.Debug("Skipping abandoned invocation", "message_id", inv.id)
		return
	}

	reply, err := r.invoke(ctx, inv)
	if err != nil {
		r.logger.Debug("Invocation rejected", "message_id", inv.id, "request", inv.req.Name(), "error", err)
	}
	inv.done <- result{reply: reply, err: err}
}

// invoke applies one request and persists the result. The slot is rolled back
// when persisting fails.
func (r *Runtime) invoke(ctx context.Context, inv *invocation) (Reply, error) {
	reply := Reply{MessageID: inv.id}
	saved := r.engine.Checkpoint()

	var err error
	switch inv.req.kind {
	case kindInit:
		reply.Events, err = r.engine.Init(inv.id, inv.req.config)
	case kindAction:
		r.warnUnvalidatedRestart(inv)
		reply.Events, err = r.engine.Handle(inv.id, inv.req.action)
	case kindQuery:
		var s pebbles.GameState
		if s, err = r.engine.State(); err == nil {
			reply.State = &s
		}
		return reply, err
	default:
		return reply, fmt.Errorf("unknown request kind %d", inv.req.kind)
	}
	if err != nil {
		return Reply{MessageID: inv.id}, err
	}

	if err := r.store.Save(ctx, r.engine.Checkpoint()); err != nil {
		r.engine.Restore(saved)
		r.logger.Error("Failed to persist game, rolled back", "message_id", inv.id, "error", err)
		return Reply{MessageID: inv.id}, fmt.Errorf("%w: %w", ErrPersist, err)
	}

	r.logger.Info("Invocation committed",
		"message_id", inv.id,
		"request", inv.req.Name(),
		"events", len(reply.Events))
	return reply, nil
}

// warnUnvalidatedRestart flags restarts that would have been rejected at init.
// They are still applied.
func (r *Runtime) warnUnvalidatedRestart(inv *invocation) {
	rs, ok := inv.req.action.(pebbles.Restart)
	if !ok {
		return
	}
	if err := rs.Config().Validate(); err != nil {
		r.logger.Warn("Restart with parameters init would reject",
			"message_id", inv.id,
			"pebbles", rs.PebblesCount,
			"max_per_turn", rs.MaxPebblesPerTurn,
			"reason", err)
	}
}

func winnerName(s *pebbles.GameState) string {
	if s.Winner == nil {
		return "none"
	}
	return s.Winner.String()
}
