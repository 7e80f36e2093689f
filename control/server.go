// SPDX-License-Identifier: EPL-2.0

package control

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ik5/busmix/internal/logger"
	"github.com/ik5/busmix/internal/run"
	"github.com/ik5/busmix/mixer"
)

const (
	ControlPath  = "/control"
	ControlsPath = "/controls"

	writeWait    = 5 * time.Second
	shutdownWait = 2 * time.Second
)

// Message is a control change sent by a WebSocket client:
//
//	{"control":"b_left","value":0.5}
type Message struct {
	Control string  `json:"control"`
	Value   float64 `json:"value"`
}

// Reply echoes the position the control ended up at, or the reason it did
// not move.
type Reply struct {
	Control string  `json:"control"`
	Value   float64 `json:"value"`
	Error   string  `json:"error,omitempty"`
}

// Server exposes a Surface over WebSocket. Every connection gets its own
// goroutine; they all share the surface, each fader holds its own Sender.
type Server struct {
	surface  *Surface
	upgrader websocket.Upgrader
	mux      *http.ServeMux

	mtx     sync.Mutex
	conns   map[*websocket.Conn]struct{}
	closing bool
	clients sync.WaitGroup
}

func NewServer(surface *Surface) *Server {
	s := &Server{
		surface: surface,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		mux:   http.NewServeMux(),
		conns: make(map[*websocket.Conn]struct{}),
	}
	s.mux.HandleFunc(ControlPath, s.serveControl)
	s.mux.HandleFunc(ControlsPath, s.serveControls)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Serve accepts control clients on ln until ctx is done. On return every
// client connection is closed and its handler has finished.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: writeWait,
	}

	errC := make(chan error, 1)
	go func() { errC <- srv.Serve(ln) }()

	logger.WithField("addr", ln.Addr().String()).Info("control server listening")

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()

	// Shutdown leaves hijacked connections alone.
	err := srv.Shutdown(sctx)
	s.closeClients()
	s.clients.Wait()

	if err != nil {
		return err
	}
	if err := <-errC; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// track registers conn. It reports false once the server is shutting down.
func (s *Server) track(conn *websocket.Conn) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closing {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mtx.Lock()
	delete(s.conns, conn)
	s.mtx.Unlock()
}

// closeClients says goodbye to every open client and closes its socket,
// which unblocks the handler's pending read.
func (s *Server) closeClients() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.closing = true
	for conn := range s.conns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		conn.Close()
	}
}

func (s *Server) serveControls(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.surface.Values()); err != nil {
		logger.WithError(err).Error("failed to write controls")
	}
}

func (s *Server) serveControl(w http.ResponseWriter, r *http.Request) {
	defer run.Recover()

	s.clients.Add(1)
	defer s.clients.Done()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	if !s.track(conn) {
		return
	}
	defer s.untrack(conn)

	log := logger.WithField("remote", r.RemoteAddr)
	log.Debug("control client connected")
	defer log.Debug("control client disconnected")

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("control read ended")
			}
			return
		}

		reply, err := s.apply(msg)

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if werr := conn.WriteJSON(reply); werr != nil {
			log.WithError(werr).Warn("control write failed")
			return
		}

		if errors.Is(err, mixer.ErrDisconnected) {
			log.WithError(err).Warn("mixer gone, closing control client")
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "mixer stopped"),
				time.Now().Add(writeWait))
			return
		}
	}
}

func (s *Server) apply(msg Message) (Reply, error) {
	reply := Reply{Control: msg.Control, Value: msg.Value}

	if err := s.surface.Set(msg.Control, msg.Value); err != nil {
		reply.Error = err.Error()
		return reply, err
	}

	f, _ := s.surface.Fader(msg.Control)
	reply.Value = f.Value()
	return reply, nil
}
