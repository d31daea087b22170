package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/pebbles/internal/host"
	"github.com/lox/pebbles/internal/protocol"
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	conn      *websocket.Conn
	send      chan []byte
	runtime   *host.Runtime
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, rt *host.Runtime, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:    conn,
		send:    make(chan []byte, 256),
		runtime: rt,
		logger:  logger.WithPrefix("conn").With("remote", conn.RemoteAddr().String()),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024
)

var ErrConnectionClosed = errors.New("connection closed")

// SendMessage queues a frame for the client
func (c *Connection) SendMessage(m protocol.Message) error {
	data, err := protocol.Marshal(m)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// readPump handles incoming frames. Requests from one client are handled in
// order, each waiting for its reply before the next is read.
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }() // Ignore close errors during cleanup

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}
		if kind != websocket.BinaryMessage {
			c.sendError("", protocol.ErrBadRequest)
			continue
		}

		c.handleFrame(data)
	}
}

// writePump handles outgoing frames to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // Ignore close errors during cleanup
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// handleFrame decodes one request and relays it to the runtime
func (c *Connection) handleFrame(data []byte) {
	msg, err := protocol.DecodeRequest(data)
	if err != nil {
		c.logger.Debug("Rejected frame", "error", err)
		c.sendError("", errors.Join(protocol.ErrBadRequest, err))
		return
	}

	var req host.Request
	switch m := msg.(type) {
	case *protocol.Init:
		cfg, err := m.Config()
		if err != nil {
			c.sendError("", err)
			return
		}
		req = host.InitRequest(cfg)
	case *protocol.StateQuery:
		req = host.QueryRequest()
	default:
		action, err := protocol.ActionFor(m)
		if err != nil {
			c.sendError("", err)
			return
		}
		req = host.ActionRequest(action)
	}

	c.logger.Debug("Received request", "request", req.Name())
	reply, err := c.runtime.Send(c.ctx, req)
	id := string(reply.MessageID)
	if err != nil {
		c.sendError(id, err)
		return
	}

	if reply.State != nil {
		_ = c.SendMessage(protocol.NewState(id, *reply.State))
		return
	}
	for _, ev := range reply.Events {
		frame, err := protocol.EventMessage(id, ev)
		if err != nil {
			c.logger.Error("Failed to encode event", "error", err)
			c.sendError(id, err)
			return
		}
		if err := c.SendMessage(frame); err != nil {
			return
		}
	}
	_ = c.SendMessage(protocol.NewAck(id, len(reply.Events)))
}

// sendError sends an error frame to the client
func (c *Connection) sendError(messageID string, err error) {
	if sendErr := c.SendMessage(protocol.NewError(messageID, err)); sendErr != nil {
		c.logger.Debug("Failed to send error", "error", sendErr)
	}
}
