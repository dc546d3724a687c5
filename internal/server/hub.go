package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"em_casing/internal/casing"
	"em_casing/internal/config"
	"em_casing/internal/halfspace"
	"em_casing/internal/wire"
)

// Per-request limits. The dense system grows as 4*segments^2.
const (
	MaxSegments  = 2000
	MaxWireNodes = 10000
)

var ErrTooLarge = errors.New("server: request too large")

// Hub serves the requests of one connection in arrival order.
type Hub struct {
	conn    *websocket.Conn
	workers int
	// request
	msg chan Msg
	// response
	replies chan Msg
}

func NewHub(conn *websocket.Conn, workers int) *Hub {
	return &Hub{
		conn:    conn,
		workers: workers,
		msg:     make(chan Msg, 10),
		replies: make(chan Msg, 10),
	}
}

// handleRequest runs until msg is closed, then closes replies.
func (h *Hub) handleRequest(ctx context.Context) {
	defer close(h.replies)
	for msg := range h.msg {
		h.replies <- h.reply(ctx, msg)
	}
}

// handleResponse is the only writer on the connection.
func (h *Hub) handleResponse() {
	for reply := range h.replies {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.WithError(err).WithField("id", reply.ID).Warn("writing reply")
		}
	}
}

func (h *Hub) reply(ctx context.Context, msg Msg) Msg {
	id := uuid.NewString()
	logger := log.WithFields(log.Fields{"id": id, "type": msg.Type})
	switch msg.Type {
	case TypeSolve:
		start := time.Now()
		rep, err := h.solve(ctx, msg.Content)
		if err != nil {
			logger.WithError(err).Warn("solve failed")
			return Msg{Type: TypeError, ID: id, Error: err.Error()}
		}
		content, err := json.Marshal(rep)
		if err != nil {
			return Msg{Type: TypeError, ID: id, Error: err.Error()}
		}
		logger.WithField("elapsed", time.Since(start)).Info("solve done")
		return Msg{Type: TypeSolved, ID: id, Content: content}
	default:
		text := msg.Error
		if text == "" {
			text = fmt.Sprintf("server: unknown message type %q", msg.Type)
		}
		logger.Warn(text)
		return Msg{Type: TypeError, ID: id, Error: text}
	}
}

func (h *Hub) solve(ctx context.Context, content json.RawMessage) (*SolveReply, error) {
	cfg := config.Default()
	req := SolveRequest{
		Casing:  cfg.Casing,
		Current: cfg.Wire.Current,
		Method:  cfg.Run.Method,
	}
	if len(content) > 0 {
		if err := json.Unmarshal(content, &req); err != nil {
			return nil, fmt.Errorf("server: decoding solve request: %w", err)
		}
	}
	if req.Casing.Segments > MaxSegments {
		return nil, fmt.Errorf("%w: %d segments, at most %d", ErrTooLarge, req.Casing.Segments, MaxSegments)
	}
	if len(req.Wire) > MaxWireNodes {
		return nil, fmt.Errorf("%w: %d wire nodes, at most %d", ErrTooLarge, len(req.Wire), MaxWireNodes)
	}
	cfg.Casing = req.Casing
	cfg.Wire.Current = req.Current
	p, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	m := &casing.Model{
		Params:   p,
		Path:     wire.NewPath(req.Wire...),
		Method:   halfspace.Method(req.Method),
		Workers:  h.workers,
		Symmetry: true,
	}
	sol, err := m.Solve(ctx)
	if err != nil {
		return nil, err
	}
	rep := newSolveReply(sol)
	return &rep, nil
}
