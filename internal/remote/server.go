package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/pinpad/internal/logging"
	"github.com/muurk/pinpad/internal/pinentry"
)

const (
	// Time allowed to write an ack to the peer
	writeWait = 10 * time.Second

	// Time allowed between frames before the connection is dropped
	readWait = 5 * time.Minute

	// Maximum frame size allowed from peer
	maxMessageSize = 1024

	// KeysPath is the websocket endpoint
	KeysPath = "/keys"

	// HealthPath is the liveness endpoint
	HealthPath = "/healthz"
)

// Sink receives decoded key events. It is called from connection goroutines
// and must hand the event to the widget's owner goroutine.
type Sink func(ev pinentry.KeyEvent)

// Config holds the bridge configuration
type Config struct {
	Host string
	Port int
}

// Server is the websocket keypad bridge
type Server struct {
	config      Config
	sink        Sink
	upgrader    websocket.Upgrader
	httpServer  *http.Server
	listener    net.Listener
	wg          sync.WaitGroup
	mu          sync.Mutex
	activeConns map[string]*websocket.Conn
}

// New creates a bridge that forwards events to sink
func New(config Config, sink Sink) *Server {
	s := &Server{
		config: config,
		sink:   sink,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxMessageSize,
			WriteBufferSize: maxMessageSize,
			// Keypads are other devices on the LAN, not browser pages of this origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		activeConns: make(map[string]*websocket.Conn),
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the bridge's HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(KeysPath, s.handleKeys)
	mux.HandleFunc(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

// Listen binds the listening socket. Port 0 picks a free port; read it back with Addr.
func (s *Server) Listen() error {
	addr := net.JoinHostPort(s.config.Host, fmt.Sprintf("%d", s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	logging.Info("Keypad bridge listening",
		zap.String("addr", listener.Addr().String()),
	)
	return nil
}

// Addr returns the bound address, or nil before Listen
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Port returns the bound TCP port, or 0 before Listen
func (s *Server) Port() int {
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// Serve accepts connections until ctx is cancelled, then shuts down.
// Listen is called first if it has not been.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown stops accepting connections and closes active keypads
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down keypad bridge")

	err := s.httpServer.Shutdown(ctx)

	// Hijacked websocket connections are not closed by http.Server
	s.mu.Lock()
	for addr, conn := range s.activeConns {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "bridge shutting down"),
			time.Now().Add(time.Second))
		_ = conn.Close()
		logging.LogConnection(addr, "closed_on_shutdown")
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for keypad connections: %w", ctx.Err())
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to shut down bridge: %w", err)
	}
	return nil
}

// ActiveConnections returns the number of connected keypads
func (s *Server) ActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("Websocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	remoteAddr := r.RemoteAddr
	s.wg.Add(1)
	s.mu.Lock()
	s.activeConns[remoteAddr] = conn
	s.mu.Unlock()

	defer func() {
		_ = conn.Close()
		s.mu.Lock()
		delete(s.activeConns, remoteAddr)
		s.mu.Unlock()
		logging.LogConnection(remoteAddr, "keypad_disconnected")
		s.wg.Done()
	}()

	logging.LogConnection(remoteAddr, "keypad_connected")
	s.readLoop(conn, remoteAddr)
}

// readLoop decodes frames until the peer goes away
func (s *Server) readLoop(conn *websocket.Conn, remoteAddr string) {
	conn.SetReadLimit(maxMessageSize)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(readWait)); err != nil {
			return
		}

		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Info("Keypad connection closed unexpectedly",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		if msgType != websocket.TextMessage {
			if err := s.writeAck(conn, Ack{Error: "expected text frame"}); err != nil {
				return
			}
			continue
		}

		ack := s.handleFrame(remoteAddr, data)
		if err := s.writeAck(conn, ack); err != nil {
			logging.Warn("Failed to write ack",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			return
		}
	}
}

func (s *Server) handleFrame(remoteAddr string, data []byte) Ack {
	frame, err := DecodeFrame(data)
	if err != nil {
		logging.Warn("Rejected keypad frame", zap.String("remote_addr", remoteAddr), zap.Error(err))
		return Ack{Error: err.Error()}
	}

	events, err := frame.Events()
	if err != nil {
		logging.Warn("Rejected keypad frame", zap.String("remote_addr", remoteAddr), zap.Error(err))
		return Ack{Error: err.Error()}
	}

	logging.LogFrame(remoteAddr, frame.Type, len(events))
	for _, ev := range events {
		logging.LogKeyEvent("remote", ev.Code.String(), ev.Action.String(), true)
		if s.sink != nil {
			s.sink(ev)
		}
	}
	return Ack{OK: true}
}

func (s *Server) writeAck(conn *websocket.Conn, ack Ack) error {
	data, err := json.Marshal(ack)
	if err != nil {
		return fmt.Errorf("failed to marshal ack: %w", err)
	}
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
