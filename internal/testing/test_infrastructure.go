package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/lox/pebbles/internal/beacon"
	"github.com/lox/pebbles/internal/client"
	"github.com/lox/pebbles/internal/host"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/lox/pebbles/internal/server"
	"github.com/lox/pebbles/internal/store"
	"github.com/lox/pebbles/internal/tui"
)

// Test constants
const (
	ServerReadyTimeout = 5 * time.Second
	RequestTimeout     = 5 * time.Second
	DefaultSeed        = 12345
)

// TestScenario is a scripted game typed the way a player would in the TUI
type TestScenario struct {
	Name              string
	Config            pebbles.Config
	First             pebbles.Player
	Commands          []string          // after the game is created
	ExpectedEvents    [][]pebbles.Event // one entry per command, nil to skip
	ExpectedRemaining uint32
	ExpectedWinner    *pebbles.Player
}

// ServerOptions configures StartTestServer
type ServerOptions struct {
	Random    pebbles.RandomSource // defaults to a seeded source
	StateFile string               // in-memory slot when empty
	Clock     quartz.Clock
	Budget    time.Duration
}

// TestServer wraps a running host
type TestServer struct {
	URL      string
	Restored bool
	cancel   context.CancelFunc
	done     chan error
	stopOnce sync.Once
}

// Stop shuts the host down and waits for it
func (s *TestServer) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.done
	})
}

// TestClient wraps a client and tracks the last snapshot it saw
type TestClient struct {
	client *client.Client
	state  *pebbles.GameState
	t      *testing.T
}

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// FirstPlayer returns a random source that always picks p
func FirstPlayer(p pebbles.Player) pebbles.RandomSource {
	return pebbles.RandomFunc(func([]byte) (uint32, error) { return uint32(p), nil })
}

// StartTestServer runs a host with its runtime and HTTP server on a free port
func StartTestServer(t *testing.T, opts ServerOptions) *TestServer {
	t.Helper()
	logger := testLogger()

	cfg := server.DefaultConfig()
	cfg.Server.Address = "127.0.0.1"
	cfg.Server.Port = findFreePort(t)
	cfg.Server.LogLevel = "error"
	cfg.Server.StateFile = opts.StateFile
	require.NoError(t, cfg.Validate())

	random := opts.Random
	if random == nil {
		random = beacon.NewSeeded(DefaultSeed)
	}
	var slot store.Store = store.NewMemory()
	if cfg.Server.StateFile != "" {
		slot = store.NewFile(cfg.Server.StateFile)
	}
	budget := cfg.Budget()
	if opts.Budget > 0 {
		budget = opts.Budget
	}
	runtimeOpts := []host.Option{host.WithStore(slot), host.WithBudget(budget)}
	if opts.Clock != nil {
		runtimeOpts = append(runtimeOpts, host.WithClock(opts.Clock))
	}
	rt := host.NewRuntime(pebbles.NewEngine(random), logger, runtimeOpts...)

	ctx, cancel := context.WithCancel(context.Background())
	restored, err := rt.Restore(ctx)
	if err != nil {
		cancel()
		require.NoError(t, err, "Failed to restore game")
	}

	srv := server.NewServer(cfg.GetServerAddress(), rt, logger)
	done := make(chan error, 1)
	go func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = rt.Run(ctx)
		}()
		err := srv.Serve(ctx)
		cancel()
		wg.Wait()
		done <- err
	}()

	s := &TestServer{
		URL:      fmt.Sprintf("http://%s", cfg.GetServerAddress()),
		Restored: restored,
		cancel:   cancel,
		done:     done,
	}
	t.Cleanup(s.Stop)
	waitForServerReady(t, s.URL, ServerReadyTimeout)
	return s
}

// ConnectTestClient opens a WebSocket session to the host
func ConnectTestClient(t *testing.T, serverURL string) *TestClient {
	t.Helper()
	c := client.New(serverURL, testLogger())
	ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
	defer cancel()
	require.NoError(t, c.Connect(ctx), "Failed to connect")
	t.Cleanup(func() { _ = c.Close() })
	return &TestClient{client: c, t: t}
}

// Execute runs one TUI command against the host and refreshes the snapshot
func (c *TestClient) Execute(input string) (client.Result, error) {
	c.t.Helper()
	cmd, err := tui.ParseCommand(input, c.state)
	if err != nil {
		return client.Result{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
	defer cancel()

	var res client.Result
	switch cmd.Kind {
	case tui.CmdNew:
		res, err = c.client.Init(ctx, cmd.Config)
	case tui.CmdAction:
		res, err = c.client.Do(ctx, cmd.Action)
	case tui.CmdState:
	default:
		return client.Result{}, fmt.Errorf("command %q has no effect on the host", input)
	}
	c.t.Logf("STEP: %q -> %v %v", input, res.Events, err)

	s, stateErr := c.client.State(ctx)
	switch {
	case stateErr == nil:
		c.state = &s
	case errors.Is(stateErr, pebbles.ErrNoActiveGame):
		c.state = nil
	default:
		require.NoError(c.t, stateErr, "Failed to refresh state")
	}
	return res, err
}

// MustExecute is Execute for commands that must succeed
func (c *TestClient) MustExecute(input string) client.Result {
	c.t.Helper()
	res, err := c.Execute(input)
	require.NoError(c.t, err, "Command %q failed", input)
	return res
}

// State returns the last snapshot seen, nil before a game exists
func (c *TestClient) State() *pebbles.GameState {
	return c.state
}

// RunScenario plays sc against a fresh host
func RunScenario(t *testing.T, sc TestScenario) {
	t.Helper()
	srv := StartTestServer(t, ServerOptions{Random: FirstPlayer(sc.First)})
	c := ConnectTestClient(t, srv.URL)

	cfg := sc.Config
	c.MustExecute(fmt.Sprintf("new %d %d %s", cfg.PebblesCount, cfg.MaxPebblesPerTurn, cfg.Difficulty))
	require.NotNil(t, c.State())
	require.Equal(t, sc.First, c.State().FirstPlayer)

	for i, input := range sc.Commands {
		res := c.MustExecute(input)
		if i >= len(sc.ExpectedEvents) || sc.ExpectedEvents[i] == nil {
			continue
		}
		if want := sc.ExpectedEvents[i]; len(want) == 0 {
			require.Empty(t, res.Events, "events after %q", input)
		} else {
			require.Equal(t, want, res.Events, "events after %q", input)
		}
	}

	require.Equal(t, sc.ExpectedRemaining, c.State().PebblesRemaining)
	if sc.ExpectedWinner == nil {
		require.Nil(t, c.State().Winner)
	} else {
		require.NotNil(t, c.State().Winner)
		require.Equal(t, *sc.ExpectedWinner, *c.State().Winner)
	}
}

// Helper Functions

func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	_ = listener.Close()
	return port
}

func waitForServerReady(t *testing.T, serverURL string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := http.Get(serverURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(20 * time.Millisecond)
	}

	t.Fatalf("Server at %s did not become ready within %v", serverURL, timeout)
}
