package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/pebbles/internal/host"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/lox/pebbles/internal/protocol"
	"github.com/lox/pebbles/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func startHost(t *testing.T, first uint32) string {
	t.Helper()
	logger := testLogger()
	src := pebbles.RandomFunc(func([]byte) (uint32, error) { return first, nil })
	rt := host.NewRuntime(pebbles.NewEngine(src), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()

	ts := httptest.NewServer(server.NewServer("", rt, logger).Handler())
	t.Cleanup(func() {
		ts.Close()
		cancel()
		<-done
	})
	return ts.URL
}

func connect(t *testing.T, url string) *Client {
	t.Helper()
	c := New(url, testLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Connect(ctx))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestClientPlaysToTheEnd(t *testing.T) {
	c := connect(t, startHost(t, 0))
	ctx := testContext(t)

	res, err := c.Init(ctx, pebbles.Config{PebblesCount: 15, MaxPebblesPerTurn: 3})
	require.NoError(t, err)
	assert.Empty(t, res.Events)
	assert.NotEmpty(t, res.MessageID)

	res, err = c.Turn(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []pebbles.Event{pebbles.CounterTurn(1)}, res.Events)
	_, won := res.Winner()
	assert.False(t, won)

	// 11 left: 3+1, 3+1 leaves 3, then the user takes all three
	for range 2 {
		_, err = c.Turn(ctx, 3)
		require.NoError(t, err)
	}
	res, err = c.Turn(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []pebbles.Event{pebbles.Won(pebbles.User)}, res.Events)
	winner, won := res.Winner()
	require.True(t, won)
	assert.Equal(t, pebbles.User, winner)

	_, err = c.Turn(ctx, 1)
	assert.ErrorIs(t, err, pebbles.ErrInvalidMove)

	s, err := c.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), s.PebblesRemaining)
	assert.Equal(t, pebbles.User, *s.Winner)
}

func TestClientErrorsMapToSentinels(t *testing.T) {
	c := connect(t, startHost(t, 0))
	ctx := testContext(t)

	_, err := c.State(ctx)
	assert.ErrorIs(t, err, pebbles.ErrNoActiveGame)

	_, err = c.GiveUp(ctx)
	assert.ErrorIs(t, err, pebbles.ErrNotInitialized)

	_, err = c.Init(ctx, pebbles.Config{PebblesCount: 0, MaxPebblesPerTurn: 1})
	assert.ErrorIs(t, err, pebbles.ErrInvalidConfiguration)

	_, err = c.Init(ctx, pebbles.Config{PebblesCount: 5, MaxPebblesPerTurn: 1})
	require.NoError(t, err)
	_, err = c.Init(ctx, pebbles.Config{PebblesCount: 5, MaxPebblesPerTurn: 1})
	assert.ErrorIs(t, err, pebbles.ErrAlreadyInitialized)
}

func TestClientRestartProgramFirst(t *testing.T) {
	c := connect(t, startHost(t, 1))
	ctx := testContext(t)

	res, err := c.Init(ctx, pebbles.Config{PebblesCount: 4, MaxPebblesPerTurn: 2})
	require.NoError(t, err)
	assert.Equal(t, []pebbles.Event{pebbles.CounterTurn(1)}, res.Events)

	res, err = c.Restart(ctx, pebbles.Restart{Difficulty: pebbles.Hard, PebblesCount: 1, MaxPebblesPerTurn: 5})
	require.NoError(t, err)
	assert.Equal(t, []pebbles.Event{pebbles.CounterTurn(1), pebbles.Won(pebbles.Program)}, res.Events)

	s, err := c.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, pebbles.Hard, s.Difficulty)
	assert.Equal(t, uint32(5), s.MaxPebblesPerTurn)
	assert.Equal(t, pebbles.Program, s.FirstPlayer)
}

// slowHost answers request n with id m-n. Actions get CounterTurn(n) and an
// ack, queries a state with n pebbles remaining. A request whose number has a
// gate is answered only once the gate is closed.
func slowHost(t *testing.T, gates map[int]chan struct{}) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	done := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		for n := 1; ; n++ {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if gate, ok := gates[n]; ok {
				select {
				case <-gate:
				case <-done:
					return
				}
			}
			req, err := protocol.DecodeRequest(data)
			if err != nil {
				return
			}

			id := fmt.Sprintf("m-%d", n)
			var frames []protocol.Message
			if _, ok := req.(*protocol.StateQuery); ok {
				frames = append(frames, protocol.NewState(id, pebbles.GameState{
					PebblesCount: 10, MaxPebblesPerTurn: 3, PebblesRemaining: uint32(n),
				}))
			} else {
				ev, _ := protocol.EventMessage(id, pebbles.CounterTurn(uint32(n)))
				frames = append(frames, ev, protocol.NewAck(id, 1))
			}
			for _, f := range frames {
				out, err := protocol.Marshal(f)
				if err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.BinaryMessage, out); err != nil {
					return
				}
			}
		}
	}))
	t.Cleanup(ts.Close)
	t.Cleanup(func() { close(done) })
	return ts.URL
}

func TestClientSkipsRepliesToAbandonedRequests(t *testing.T) {
	first, third := make(chan struct{}), make(chan struct{})
	c := connect(t, slowHost(t, map[int]chan struct{}{1: first, 3: third}))

	short, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Turn(short, 3)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	close(first)

	ctx := testContext(t)
	res, err := c.Turn(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "m-2", res.MessageID)
	assert.Equal(t, []pebbles.Event{pebbles.CounterTurn(2)}, res.Events)

	short2, cancel2 := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel2()
	_, err = c.State(short2)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	close(third)

	s, err := c.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), s.PebblesRemaining)

	res, err = c.Turn(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "m-5", res.MessageID)
	assert.Equal(t, []pebbles.Event{pebbles.CounterTurn(5)}, res.Events)
}

func TestFetchState(t *testing.T) {
	url := startHost(t, 0)
	ctx := testContext(t)

	_, err := FetchState(ctx, url)
	assert.ErrorIs(t, err, pebbles.ErrNoActiveGame)

	c := connect(t, url)
	_, err = c.Init(ctx, pebbles.Config{PebblesCount: 6, MaxPebblesPerTurn: 2})
	require.NoError(t, err)

	s, err := FetchState(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, uint32(6), s.PebblesRemaining)
	assert.Nil(t, s.Winner)
}

func TestClientNotConnected(t *testing.T) {
	c := New("http://127.0.0.1:1", testLogger())
	_, err := c.Turn(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestClientHostGoesAway(t *testing.T) {
	url := startHost(t, 0)
	c := connect(t, url)
	ctx := testContext(t)

	_, err := c.Init(ctx, pebbles.Config{PebblesCount: 6, MaxPebblesPerTurn: 2})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = c.State(ctx)
	assert.Error(t, err)
}

func TestEndpoint(t *testing.T) {
	u, err := endpoint("https://example.com:9000/ignored", "/ws", true)
	require.NoError(t, err)
	assert.Equal(t, "wss://example.com:9000/ws", u)

	u, err = endpoint("ws://localhost:8080", "/state", false)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/state", u)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())

	path := filepath.Join(t.TempDir(), "client.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
server {
  url             = "http://pebbles.internal:9000"
  request_timeout = 3
}
`), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://pebbles.internal:9000", cfg.Server.URL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout())
	assert.Equal(t, "warn", cfg.UI.LogLevel)

	cfg.UI.LogLevel = "chatty"
	assert.Error(t, cfg.Validate())
}
