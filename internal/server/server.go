// Package server exposes the simulation engine as a websocket
// advisory service: clients submit raw table states and receive the
// per-action probability report.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/blackjack-odds/internal/simulator"
)

// Server serves estimate requests over websocket connections
type Server struct {
	config      *Config
	upgrader    websocket.Upgrader
	connections map[*Connection]bool
	register    chan *Connection
	unregister  chan *Connection
	logger      *log.Logger
	clock       quartz.Clock
	mu          sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
}

// New creates a new advisory server
func New(config *Config, logger *log.Logger) *Server {
	return newWithClock(config, logger, quartz.NewReal())
}

// newWithClock is the constructor used by tests to control time.
func newWithClock(config *Config, logger *log.Logger, clock quartz.Clock) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		config: config,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The service carries no credentials or per-client
				// state, so any origin may connect.
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		logger:      logger.WithPrefix("server"),
		clock:       clock,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start starts the server and blocks serving HTTP
func (s *Server) Start() error {
	go s.run()

	s.logger.Info("starting advisory server", "addr", s.config.Addr())
	return http.ListenAndServe(s.config.Addr(), s.Handler())
}

// Handler returns the HTTP handler, exposed separately so tests can
// mount it on httptest servers.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Stop stops the server and closes all connections
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()

	return nil
}

// newEngine builds a per-request engine. A configured non-zero seed
// pins results for reproducible deployments; otherwise each request
// gets a clock-derived seed.
func (s *Server) newEngine() *simulator.Engine {
	seed := s.config.Simulation.Seed
	if seed == 0 {
		seed = s.clock.Now().UnixNano()
	}
	return simulator.New(simulator.Config{
		Seed:    seed,
		Workers: s.config.Simulation.Workers,
		Logger:  s.logger.WithPrefix("engine"),
	})
}

// run handles connection lifecycle
func (s *Server) run() {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("client connected", "total", total)

		case conn := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.connections[conn]; ok {
				delete(s.connections, conn)
				_ = conn.Close()
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("client disconnected", "total", total)

		case <-s.ctx.Done():
			return
		}
	}
}

// handleWebSocket handles websocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s)
	s.register <- client
	client.Start()

	go func() {
		select {
		case <-client.ctx.Done():
			s.unregister <- client
		case <-s.ctx.Done():
		}
	}()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}
