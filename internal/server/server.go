// Package server exposes casing solves over a websocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// MaxMessageSize is the largest frame a client may send, bytes.
const MaxMessageSize = 1 << 20

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	workers  int

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	wg    sync.WaitGroup // open connections
}

// NewServer listens on addr once Serve is called. workers bounds the matrix
// assembly of each solve.
func NewServer(addr string, upgrader websocket.Upgrader, workers int) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		workers:  workers,
		conns:    make(map[*websocket.Conn]struct{}),
	}
}

func (s *Server) track(conn *websocket.Conn, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if open {
		s.conns[conn] = struct{}{}
	} else {
		delete(s.conns, conn)
	}
}

// closeConns drops every client; http.Server.Shutdown does not see hijacked
// connections.
func (s *Server) closeConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.Close()
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade")
		return
	}
	s.wg.Add(1)
	defer s.wg.Done()
	defer conn.Close()
	s.track(conn, true)
	defer s.track(conn, false)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	hub := NewHub(conn, s.workers)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		hub.handleRequest(ctx)
	}()
	go func() {
		defer wg.Done()
		hub.handleResponse()
	}()

	log.WithField("remote", conn.RemoteAddr()).Info("client connected")
	conn.SetReadLimit(MaxMessageSize)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if errors.Is(err, websocket.ErrReadLimit) ||
				websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("reading message")
			}
			break
		}
		var msg Msg
		if err := json.Unmarshal(data, &msg); err != nil {
			msg = Msg{Error: "server: decoding message: " + err.Error()}
		}
		hub.msg <- msg
	}
	close(hub.msg)
	cancel()
	wg.Wait()
	log.WithField("remote", conn.RemoteAddr()).Info("client disconnected")
}

// Serve blocks until ctx is done or the listener fails. Open connections are
// waited for before it returns.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.RegisterOnShutdown(s.closeConns)
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	log.WithField("addr", s.addr).Info("serving")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.wg.Wait()
	return nil
}
