package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/lox/pebbles/internal/protocol"
)

const writeWait = 10 * time.Second

var (
	ErrNotConnected = errors.New("not connected")
	ErrUnexpected   = errors.New("unexpected reply")
)

// Result is the outcome of a mutating request
type Result struct {
	MessageID string
	Events    []pebbles.Event
}

// Winner returns the player announced by a Won event, if any.
func (r Result) Winner() (pebbles.Player, bool) {
	for _, ev := range r.Events {
		if w, ok := ev.(pebbles.WonEvent); ok {
			return w.Player, true
		}
	}
	return 0, false
}

// Client talks to a pebbles host over WebSocket. Requests are issued one at a
// time; each call returns once the host has closed its reply.
type Client struct {
	serverURL string
	conn      *websocket.Conn
	receive   chan protocol.Message
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	reqMu     sync.Mutex
	abandoned int // requests whose replies are still on the wire, guarded by reqMu
	closeOnce sync.Once
	readErr   error
	mu        sync.RWMutex
}

// New creates a client for the host at serverURL (http, https, ws or wss).
func New(serverURL string, logger *log.Logger) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		serverURL: serverURL,
		receive:   make(chan protocol.Message, 16),
		logger:    logger.WithPrefix("client"),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func endpoint(serverURL, path string, websocketScheme bool) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}
	if websocketScheme {
		switch u.Scheme {
		case "http":
			u.Scheme = "ws"
		case "https":
			u.Scheme = "wss"
		}
	} else {
		switch u.Scheme {
		case "ws":
			u.Scheme = "http"
		case "wss":
			u.Scheme = "https"
		}
	}
	u.Path = path
	return u.String(), nil
}

// Connect establishes the WebSocket connection
func (c *Client) Connect(ctx context.Context) error {
	wsURL, err := endpoint(c.serverURL, "/ws", true)
	if err != nil {
		return err
	}
	c.logger.Debug("Connecting to host", "url", wsURL)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	go c.readPump()
	return nil
}

// Close closes the connection
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()
		if conn == nil {
			return
		}
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait))
		err = conn.Close()
	})
	return err
}

// readPump decodes frames from the host
func (c *Client) readPump() {
	defer close(c.receive)
	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && c.ctx.Err() == nil {
				c.logger.Error("WebSocket error", "error", err)
			}
			c.mu.Lock()
			c.readErr = err
			c.mu.Unlock()
			return
		}
		if kind != websocket.BinaryMessage {
			continue
		}

		m, err := protocol.DecodeReply(data)
		if err != nil {
			c.logger.Warn("Dropping undecodable frame", "error", err)
			continue
		}
		select {
		case c.receive <- m:
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Client) write(m protocol.Message) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return ErrNotConnected
	}

	data, err := protocol.Marshal(m)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.BinaryMessage, data)
}

func (c *Client) next(ctx context.Context) (protocol.Message, error) {
	select {
	case m, ok := <-c.receive:
		if !ok {
			c.mu.RLock()
			err := c.readErr
			c.mu.RUnlock()
			if err == nil {
				err = ErrNotConnected
			}
			return nil, fmt.Errorf("%w: %w", ErrNotConnected, err)
		}
		return m, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// closesReply reports whether m is the last frame the host sends for a request.
func closesReply(m protocol.Message) bool {
	switch m.(type) {
	case *protocol.Ack, *protocol.Error, *protocol.State:
		return true
	default:
		return false
	}
}

// reply returns the next frame of the current request. The host answers
// requests in order, so frames left over from abandoned requests are skipped
// up to and including their closing frame. Callers must hold reqMu.
func (c *Client) reply(ctx context.Context) (protocol.Message, error) {
	for {
		m, err := c.next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.abandoned++
			}
			return nil, err
		}
		if c.abandoned == 0 {
			return m, nil
		}
		c.logger.Debug("Discarding reply to abandoned request", "type", fmt.Sprintf("%T", m))
		if closesReply(m) {
			c.abandoned--
		}
	}
}

// call sends a mutating request and collects events until the ack.
func (c *Client) call(ctx context.Context, m protocol.Message) (Result, error) {
	c.reqMu.Lock()
	defer c.reqMu.Unlock()

	if err := c.write(m); err != nil {
		return Result{}, err
	}

	var res Result
	for {
		reply, err := c.reply(ctx)
		if err != nil {
			return res, err
		}
		switch r := reply.(type) {
		case *protocol.CounterTurn:
			res.MessageID = r.MessageID
			res.Events = append(res.Events, r.Event())
		case *protocol.Won:
			ev, err := r.Event()
			if err != nil {
				return res, err
			}
			res.MessageID = r.MessageID
			res.Events = append(res.Events, ev)
		case *protocol.Ack:
			res.MessageID = r.MessageID
			if int(r.Events) != len(res.Events) {
				return res, fmt.Errorf("%w: ack for %d events, got %d", ErrUnexpected, r.Events, len(res.Events))
			}
			return res, nil
		case *protocol.Error:
			return res, r.Err()
		default:
			return res, fmt.Errorf("%w: %T", ErrUnexpected, reply)
		}
	}
}

// Init creates the game
func (c *Client) Init(ctx context.Context, cfg pebbles.Config) (Result, error) {
	return c.call(ctx, protocol.NewInit(cfg))
}

// Do applies an action
func (c *Client) Do(ctx context.Context, a pebbles.Action) (Result, error) {
	m, err := protocol.FromAction(a)
	if err != nil {
		return Result{}, err
	}
	return c.call(ctx, m)
}

// Turn removes count pebbles
func (c *Client) Turn(ctx context.Context, count uint32) (Result, error) {
	return c.Do(ctx, pebbles.Turn{Count: count})
}

// GiveUp concedes the game
func (c *Client) GiveUp(ctx context.Context) (Result, error) {
	return c.Do(ctx, pebbles.GiveUp{})
}

// Restart starts a new game
func (c *Client) Restart(ctx context.Context, r pebbles.Restart) (Result, error) {
	return c.Do(ctx, r)
}

// State fetches the current snapshot
func (c *Client) State(ctx context.Context) (pebbles.GameState, error) {
	c.reqMu.Lock()
	defer c.reqMu.Unlock()

	if err := c.write(protocol.NewStateQuery()); err != nil {
		return pebbles.GameState{}, err
	}
	reply, err := c.reply(ctx)
	if err != nil {
		return pebbles.GameState{}, err
	}
	switch r := reply.(type) {
	case *protocol.State:
		return r.Game()
	case *protocol.Error:
		return pebbles.GameState{}, r.Err()
	default:
		return pebbles.GameState{}, fmt.Errorf("%w: %T", ErrUnexpected, reply)
	}
}

// FetchState reads the snapshot from the host's HTTP endpoint without
// opening a WebSocket.
func FetchState(ctx context.Context, serverURL string) (pebbles.GameState, error) {
	stateURL, err := endpoint(serverURL, "/state", false)
	if err != nil {
		return pebbles.GameState{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, stateURL, nil)
	if err != nil {
		return pebbles.GameState{}, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return pebbles.GameState{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Code == "" {
			return pebbles.GameState{}, fmt.Errorf("state request failed: %s", resp.Status)
		}
		return pebbles.GameState{}, &protocol.RemoteError{Code: e.Code, Message: e.Message}
	}

	var st protocol.State
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return pebbles.GameState{}, fmt.Errorf("decode state: %w", err)
	}
	return st.Game()
}
