package server

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/blackjack-odds/internal/advisor"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period, must be less than pongWait
	pingPeriod = (pongWait * 9) / 10
)

// ErrConnectionClosed is returned when sending on a closed connection
var ErrConnectionClosed = errors.New("connection closed")

// Connection wraps a client websocket and serves estimate requests
// over it.
type Connection struct {
	conn      *websocket.Conn
	send      chan any
	server    *Server
	logger    *log.Logger
	clock     quartz.Clock
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, server *Server) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:   conn,
		send:   make(chan any, 16),
		server: server,
		logger: server.logger.WithPrefix("conn").With("remote", conn.RemoteAddr()),
		clock:  server.clock,
		ctx:    ctx,
		cancel: cancel,
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

// Send queues a message for the client.
func (c *Connection) Send(msg any) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
		c.logger.Warn("send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// readPump reads estimate requests until the client goes away.
func (c *Connection) readPump() {
	defer func() {
		_ = c.Close()
	}()

	_ = c.conn.SetReadDeadline(c.clock.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(c.clock.Now().Add(pongWait))
	})

	for {
		var req EstimateRequest
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("unexpected close", "error", err)
			}
			return
		}

		if req.Type != TypeEstimate {
			_ = c.Send(&ErrorMessage{
				Type:    TypeError,
				Code:    CodeMalformedInput,
				Message: fmt.Sprintf("unknown message type %q", req.Type),
			})
			continue
		}

		c.handleEstimate(&req)
	}
}

// writePump writes queued messages and keeps the connection alive
// with pings.
func (c *Connection) writePump() {
	ticker := c.clock.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(c.clock.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(c.clock.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

// handleEstimate parses the raw request, runs the engine, and replies
// with either the report or a structured error.
func (c *Connection) handleEstimate(req *EstimateRequest) {
	state, err := advisor.Parse(advisor.Input{
		PlayerCards: req.PlayerCards,
		DealerCards: req.DealerCards,
		NumDecks:    req.NumDecks,
		BetSize:     req.BetSize,
		Trials:      req.NumSims,
	})
	if err != nil {
		_ = c.Send(errorMessageFor(err))
		return
	}

	limits := c.server.config.Simulation
	if state.Trials > limits.MaxTrials {
		c.logger.Warn("capping requested trials", "requested", state.Trials, "max", limits.MaxTrials)
		state.Trials = limits.MaxTrials
	}
	if state.NumDecks > limits.MaxDecks {
		_ = c.Send(&ErrorMessage{
			Type:    TypeError,
			Code:    CodeInvalidGameState,
			Message: fmt.Sprintf("at most %d decks supported", limits.MaxDecks),
		})
		return
	}

	start := c.clock.Now()
	report, err := c.server.newEngine().ComputeActionOutcomes(state)
	if err != nil {
		c.logger.Error("estimation failed", "error", err)
		_ = c.Send(&ErrorMessage{Type: TypeError, Code: CodeInternal, Message: err.Error()})
		return
	}

	elapsed := c.clock.Since(start)
	c.logger.Info("estimate served",
		"player", state.PlayerHand.String(),
		"dealer", state.DealerUpCard.String(),
		"trials", state.Trials,
		"elapsed", elapsed)

	_ = c.Send(&ResultMessage{
		Type:     TypeResult,
		Outcomes: report,
		Elapsed:  elapsed.Milliseconds(),
	})
}

// errorMessageFor maps adapter errors onto the wire codes.
func errorMessageFor(err error) *ErrorMessage {
	var malformed *advisor.MalformedInputError
	if errors.As(err, &malformed) {
		return &ErrorMessage{Type: TypeError, Code: CodeMalformedInput, Message: malformed.Error()}
	}

	var invalid *advisor.InvalidGameStateError
	if errors.As(err, &invalid) {
		return &ErrorMessage{Type: TypeError, Code: CodeInvalidGameState, Message: invalid.Error()}
	}

	return &ErrorMessage{Type: TypeError, Code: CodeInternal, Message: err.Error()}
}
