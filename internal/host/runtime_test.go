package host

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/lox/pebbles/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// sequentialIDs hands out m-1, m-2, ...
type sequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (s *sequentialIDs) New() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("m-%d", s.n), nil
}

// recordingSource returns even values and remembers the salts it saw.
type recordingSource struct {
	mu    sync.Mutex
	salts []string
	value uint32
}

func (r *recordingSource) Random(salt []byte) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.salts = append(r.salts, string(salt))
	return r.value, nil
}

type failingStore struct {
	store.Memory
	fail bool
}

func (f *failingStore) Save(ctx context.Context, s *pebbles.GameState) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Memory.Save(ctx, s)
}

func startRuntime(t *testing.T, rt *Runtime) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})
}

func newRuntime(t *testing.T, opts ...Option) (*Runtime, *recordingSource) {
	t.Helper()
	src := &recordingSource{}
	opts = append([]Option{WithIDSource(&sequentialIDs{})}, opts...)
	rt := NewRuntime(pebbles.NewEngine(src), testLogger(), opts...)
	return rt, src
}

func TestRuntimeInitAndTurn(t *testing.T) {
	mem := store.NewMemory()
	rt, src := newRuntime(t, WithStore(mem))
	startRuntime(t, rt)
	ctx := context.Background()

	reply, err := rt.Send(ctx, InitRequest(pebbles.Config{PebblesCount: 15, MaxPebblesPerTurn: 3}))
	require.NoError(t, err)
	assert.Equal(t, pebbles.MessageID("m-1"), reply.MessageID)
	assert.Empty(t, reply.Events)

	reply, err = rt.Send(ctx, ActionRequest(pebbles.Turn{Count: 3}))
	require.NoError(t, err)
	assert.Equal(t, pebbles.MessageID("m-2"), reply.MessageID)
	assert.Equal(t, []pebbles.Event{pebbles.CounterTurn(1)}, reply.Events)

	reply, err = rt.Send(ctx, QueryRequest())
	require.NoError(t, err)
	require.NotNil(t, reply.State)
	assert.Equal(t, uint32(11), reply.State.PebblesRemaining)

	assert.Equal(t, []string{"m-1"}, src.salts, "first player is keyed by the init message id")
	assert.Equal(t, 2, mem.Saves(), "queries are not persisted")

	saved, err := mem.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, *reply.State, *saved)
}

func TestRuntimeRejectionsLeaveStateAlone(t *testing.T) {
	mem := store.NewMemory()
	rt, _ := newRuntime(t, WithStore(mem))
	startRuntime(t, rt)
	ctx := context.Background()

	_, err := rt.Send(ctx, QueryRequest())
	assert.ErrorIs(t, err, pebbles.ErrNoActiveGame)
	_, err = rt.Send(ctx, ActionRequest(pebbles.GiveUp{}))
	assert.ErrorIs(t, err, pebbles.ErrNotInitialized)
	_, err = rt.Send(ctx, InitRequest(pebbles.Config{PebblesCount: 2, MaxPebblesPerTurn: 3}))
	assert.ErrorIs(t, err, pebbles.ErrInvalidConfiguration)

	_, err = rt.Send(ctx, InitRequest(pebbles.Config{PebblesCount: 15, MaxPebblesPerTurn: 3}))
	require.NoError(t, err)
	_, err = rt.Send(ctx, ActionRequest(pebbles.Turn{Count: 5}))
	assert.ErrorIs(t, err, pebbles.ErrInvalidMove)

	reply, err := rt.Send(ctx, QueryRequest())
	require.NoError(t, err)
	assert.Equal(t, uint32(15), reply.State.PebblesRemaining)
	assert.Equal(t, 1, mem.Saves())
}

func TestRuntimeSerializesConcurrentSenders(t *testing.T) {
	rt, _ := newRuntime(t)
	startRuntime(t, rt)
	ctx := context.Background()

	_, err := rt.Send(ctx, InitRequest(pebbles.Config{PebblesCount: 100, MaxPebblesPerTurn: 1}))
	require.NoError(t, err)

	const senders = 20
	var wg sync.WaitGroup
	errs := make(chan error, senders)
	for range senders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := rt.Send(ctx, ActionRequest(pebbles.Turn{Count: 1}))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	reply, err := rt.Send(ctx, QueryRequest())
	require.NoError(t, err)
	assert.Equal(t, uint32(100-2*senders), reply.State.PebblesRemaining)
}

func TestRuntimePersistFailureRollsBack(t *testing.T) {
	fs := &failingStore{}
	rt, _ := newRuntime(t, WithStore(fs))
	startRuntime(t, rt)
	ctx := context.Background()

	_, err := rt.Send(ctx, InitRequest(pebbles.Config{PebblesCount: 10, MaxPebblesPerTurn: 2}))
	require.NoError(t, err)

	fs.fail = true
	_, err = rt.Send(ctx, ActionRequest(pebbles.Turn{Count: 2}))
	require.ErrorIs(t, err, ErrPersist)

	reply, err := rt.Send(ctx, QueryRequest())
	require.NoError(t, err)
	assert.Equal(t, uint32(10), reply.State.PebblesRemaining)
}

func TestRuntimePersistFailureOnInit(t *testing.T) {
	fs := &failingStore{fail: true}
	rt, _ := newRuntime(t, WithStore(fs))
	startRuntime(t, rt)
	ctx := context.Background()

	_, err := rt.Send(ctx, InitRequest(pebbles.Config{PebblesCount: 10, MaxPebblesPerTurn: 2}))
	require.ErrorIs(t, err, ErrPersist)

	_, err = rt.Send(ctx, QueryRequest())
	assert.ErrorIs(t, err, pebbles.ErrNoActiveGame)
}

func TestRuntimeRestore(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	w := pebbles.User
	require.NoError(t, mem.Save(ctx, &pebbles.GameState{
		PebblesCount: 5, MaxPebblesPerTurn: 2, PebblesRemaining: 0, Winner: &w,
	}))

	rt, _ := newRuntime(t, WithStore(mem))
	found, err := rt.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	startRuntime(t, rt)

	reply, err := rt.Send(ctx, QueryRequest())
	require.NoError(t, err)
	assert.Equal(t, pebbles.User, *reply.State.Winner)

	_, err = rt.Send(ctx, InitRequest(pebbles.Config{PebblesCount: 3, MaxPebblesPerTurn: 1}))
	assert.ErrorIs(t, err, pebbles.ErrAlreadyInitialized)
}

func TestRuntimeRestoreEmptyStore(t *testing.T) {
	rt, _ := newRuntime(t)
	found, err := rt.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRuntimeBudgetExceededWhileQueued(t *testing.T) {
	// No loop is running, so the invocation can never be served in time.
	rt, _ := newRuntime(t, WithBudget(10*time.Millisecond))

	_, err := rt.Send(context.Background(), InitRequest(pebbles.Config{PebblesCount: 3, MaxPebblesPerTurn: 1}))
	require.ErrorIs(t, err, ErrBudgetExceeded)

	// The abandoned invocation must not run once the loop starts.
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()
	require.Eventually(t, func() bool { return len(rt.mailbox) == 0 }, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.False(t, rt.engine.Initialized())
}

func TestRuntimeDiscardsExpiredInvocation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mock := quartz.NewMock(t)
	rt, src := newRuntime(t, WithClock(mock), WithBudget(time.Second))

	inv, err := rt.submit(ctx, InitRequest(pebbles.Config{PebblesCount: 3, MaxPebblesPerTurn: 1}))
	require.NoError(t, err)
	mock.Advance(2 * time.Second).MustWait(ctx)

	startRuntime(t, rt)
	res := <-inv.done
	require.ErrorIs(t, res.err, ErrBudgetExceeded)
	assert.Equal(t, inv.id, res.reply.MessageID)
	assert.False(t, rt.engine.Initialized())
	assert.Empty(t, src.salts, "expired invocations never reach the engine")
}

func TestRuntimeWithinBudget(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mock := quartz.NewMock(t)
	rt, _ := newRuntime(t, WithClock(mock), WithBudget(time.Second))

	inv, err := rt.submit(ctx, InitRequest(pebbles.Config{PebblesCount: 3, MaxPebblesPerTurn: 1}))
	require.NoError(t, err)
	mock.Advance(999 * time.Millisecond).MustWait(ctx)

	startRuntime(t, rt)
	res := <-inv.done
	require.NoError(t, res.err)
}

func TestRuntimeStopped(t *testing.T) {
	rt, _ := newRuntime(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()
	cancel()
	require.NoError(t, <-done)

	_, err := rt.Send(context.Background(), QueryRequest())
	assert.ErrorIs(t, err, ErrStopped)

	assert.Error(t, rt.Run(context.Background()), "a runtime runs once")
}

func TestRuntimeCallerCancellation(t *testing.T) {
	rt, _ := newRuntime(t, WithBudget(0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rt.Send(ctx, QueryRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRuntimeWarnsOnUnvalidatedRestart(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})
	rt := NewRuntime(pebbles.NewEngine(&recordingSource{}), logger, WithIDSource(&sequentialIDs{}))
	startRuntime(t, rt)
	ctx := context.Background()

	_, err := rt.Send(ctx, InitRequest(pebbles.Config{PebblesCount: 5, MaxPebblesPerTurn: 2}))
	require.NoError(t, err)

	reply, err := rt.Send(ctx, ActionRequest(pebbles.Restart{PebblesCount: 2, MaxPebblesPerTurn: 9}))
	require.NoError(t, err)
	assert.Empty(t, reply.Events)
	assert.Contains(t, buf.String(), "Restart with parameters init would reject")

	state, err := rt.Send(ctx, QueryRequest())
	require.NoError(t, err)
	assert.Equal(t, uint32(9), state.State.MaxPebblesPerTurn)
}
