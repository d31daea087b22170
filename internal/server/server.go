package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/pebbles/internal/host"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/lox/pebbles/internal/protocol"
)

const shutdownTimeout = 5 * time.Second

// Server exposes a host runtime over WebSocket and HTTP
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	runtime     *host.Runtime
	connections map[*Connection]bool
	logger      *log.Logger
	mu          sync.RWMutex
}

// NewServer creates a server in front of rt
func NewServer(addr string, rt *host.Runtime, logger *log.Logger) *Server {
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			// The game has no browser-facing origin to protect
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		runtime:     rt,
		connections: make(map[*Connection]bool),
		logger:      logger.WithPrefix("server"),
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/state", s.handleState)
	return mux
}

// Serve listens on the configured address until ctx is done
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting WebSocket server", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	s.closeConnections()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ConnectionCount returns the number of open WebSocket clients
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) track(c *Connection) {
	s.mu.Lock()
	s.connections[c] = true
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)
}

func (s *Server) untrack(c *Connection) {
	s.mu.Lock()
	_, ok := s.connections[c]
	delete(s.connections, c)
	total := len(s.connections)
	s.mu.Unlock()
	if ok {
		s.logger.Info("Client disconnected", "total", total)
	}
}

func (s *Server) closeConnections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.connections {
		_ = conn.Close() // Ignore close errors during shutdown
	}
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s.runtime, s.logger)
	s.track(client)
	client.Start()

	go func() {
		<-client.ctx.Done()
		s.untrack(client)
	}()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}

// handleState serves the current snapshot as JSON
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reply, err := s.runtime.Send(r.Context(), host.QueryRequest())
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, pebbles.ErrNoActiveGame):
			status = http.StatusNotFound
		case errors.Is(err, host.ErrBudgetExceeded):
			status = http.StatusServiceUnavailable
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    protocol.CodeFor(err),
			"message": err.Error(),
		})
		return
	}

	_ = json.NewEncoder(w).Encode(protocol.NewState(string(reply.MessageID), *reply.State))
}
