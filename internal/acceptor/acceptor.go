// Package acceptor implements the bounded connection-collection window:
// one TCP listener upgrading WebSocket connections into seats, in
// insertion order, until a wall-clock window expires.
package acceptor

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/pokerarena/internal/transport"
)

// ErrNoConnections is returned by Accept when the window closed without
// a single connection ever arriving.
var ErrNoConnections = errors.New("acceptor: no connections accepted before window expired")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Acceptor collects inbound WebSocket connections into seats for a
// single window, in the order they arrive.
type Acceptor struct {
	clock  quartz.Clock
	logger zerolog.Logger

	mu      sync.Mutex
	seats   []*transport.Adapter
	httpSrv *http.Server
}

// New creates an Acceptor using clock for its window deadline (a
// quartz.Mock in tests, quartz.NewReal() in production).
func New(clock quartz.Clock, logger zerolog.Logger) *Acceptor {
	return &Acceptor{clock: clock, logger: logger}
}

// Accept listens on addr and collects connections for window, each
// becoming one seat's transport.Adapter in arrival order. One timer of
// length window, started once, bounds the whole collection; acceptance
// ends when it fires or ctx is cancelled, whichever comes first. Returns
// ErrNoConnections if the window closed empty.
func (a *Acceptor) Accept(ctx context.Context, addr string, window time.Duration) ([]*transport.Adapter, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer listener.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", a.handleUpgrade)
	a.httpSrv = &http.Server{Handler: mux}
	go func() {
		_ = a.httpSrv.Serve(listener)
	}()
	defer a.httpSrv.Close()

	// The window deadline is a single timer relative to the start
	// instant, the saturating (never-negative) form of which matters
	// for the per-call accept loop in original_source's server.rs; here
	// the HTTP server already accepts concurrently in the background, so
	// one timer covers the whole window.
	timer := a.clock.NewTimer(window)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	return a.finish()
}

func (a *Acceptor) finish() ([]*transport.Adapter, error) {
	a.mu.Lock()
	seats := a.seats
	a.mu.Unlock()
	if len(seats) == 0 {
		return nil, ErrNoConnections
	}
	return seats, nil
}

func (a *Acceptor) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	adapter := transport.New(conn, a.clock, a.logger)

	a.mu.Lock()
	a.seats = append(a.seats, adapter)
	seatIndex := len(a.seats) - 1
	a.mu.Unlock()

	a.logger.Info().Int("seat", seatIndex).Str("remote", r.RemoteAddr).Msg("seat accepted")
}
