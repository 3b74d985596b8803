// Package transport implements the per-seat push/pull contract the game
// loop drives each turn through: a WebSocket text-frame connection whose
// Push and Pull report failures as errors (closed, deadline exceeded),
// which the game loop turns into a Fold for that turn.
package transport

import (
	"errors"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second

	// Send pings to the peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// ErrClosed is returned by Push and Pull once the underlying connection
// has shut down.
var ErrClosed = errors.New("transport: connection closed")

// ErrDeadlineExceeded is returned by Pull when no frame arrived before
// its deadline.
var ErrDeadlineExceeded = errors.New("transport: pull deadline exceeded")

// Adapter owns one seat's WebSocket connection. It is never shared
// across seats and exposes exactly the two operations the game loop
// needs: Push a server state frame, Pull the next client frame.
type Adapter struct {
	conn   *websocket.Conn
	clock  quartz.Clock
	logger zerolog.Logger

	send chan []byte
	recv chan []byte
	done chan struct{}
	once sync.Once
}

// New wraps an accepted WebSocket connection and starts its read/write
// pumps. The clock is injectable so tests can control ping/timer timing
// deterministically with a quartz.Mock.
func New(conn *websocket.Conn, clock quartz.Clock, logger zerolog.Logger) *Adapter {
	a := &Adapter{
		conn:   conn,
		clock:  clock,
		logger: logger,
		send:   make(chan []byte, 1),
		recv:   make(chan []byte, 1),
		done:   make(chan struct{}),
	}
	go a.readPump()
	go a.writePump()
	return a
}

// Close shuts the connection down. Safe to call more than once and from
// any goroutine.
func (a *Adapter) Close() {
	a.once.Do(func() {
		close(a.done)
		_ = a.conn.Close()
	})
}

// Push sends a server→client state frame. It returns ErrClosed if the
// connection is already down, or ErrDeadlineExceeded if the send buffer
// never drains before writeWait elapses — the caller (the game loop)
// treats any error here as "synthesize a Fold for this turn", per the
// transport contract.
func (a *Adapter) Push(data []byte) error {
	select {
	case <-a.done:
		return ErrClosed
	default:
	}
	select {
	case a.send <- data:
		return nil
	case <-a.done:
		return ErrClosed
	case <-a.clock.After(writeWait):
		return ErrDeadlineExceeded
	}
}

// Pull waits for the next client→server frame until deadline. Any
// non-nil error (closed, I/O failure already observed by readPump, or
// deadline exceeded) maps the caller's turn to a Fold; Pull itself never
// inspects frame contents.
func (a *Adapter) Pull(deadline time.Time) ([]byte, error) {
	timer := a.clock.NewTimer(time.Until(deadline))
	defer timer.Stop()

	select {
	case msg := <-a.recv:
		return msg, nil
	case <-timer.C:
		return nil, ErrDeadlineExceeded
	case <-a.done:
		return nil, ErrClosed
	}
}

func (a *Adapter) readPump() {
	defer a.Close()

	_ = a.conn.SetReadDeadline(a.clock.Now().Add(pongWait))
	a.conn.SetPongHandler(func(string) error {
		_ = a.conn.SetReadDeadline(a.clock.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := a.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				a.logger.Warn().Err(err).Msg("unexpected websocket close")
			}
			return
		}
		select {
		case a.recv <- message:
		case <-a.done:
			return
		}
	}
}

func (a *Adapter) writePump() {
	ticker := a.clock.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		a.Close()
	}()

	for {
		select {
		case message, ok := <-a.send:
			_ = a.conn.SetWriteDeadline(a.clock.Now().Add(writeWait))
			if !ok {
				_ = a.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := a.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = a.conn.SetWriteDeadline(a.clock.Now().Add(writeWait))
			if err := a.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-a.done:
			return
		}
	}
}
