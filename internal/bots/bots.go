// Package bots implements the reference in-process bot strategies used
// to fill out a table: a calling station, a random actor, and a broken
// client that never sends a parseable reply.
package bots

import (
	"math/rand"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// ActionFunc produces the wire bytes a bot replies with on its turn. It
// ignores the pushed state entirely — none of the reference strategies
// need to read the board to decide.
type ActionFunc func() []byte

// Call always calls.
func Call() ActionFunc {
	return func() []byte { return []byte(`{"action":"call"}`) }
}

// Random picks uniformly among fold, call, check, and a fixed raise of 5.
func Random(rng *rand.Rand) ActionFunc {
	options := [][]byte{
		[]byte(`{"action":"fold"}`),
		[]byte(`{"action":"call"}`),
		[]byte(`{"action":"check"}`),
		[]byte(`{"action":"raise","amount":5}`),
	}
	return func() []byte {
		return options[rng.Intn(len(options))]
	}
}

// Broken replies with text that is not valid JSON at all, exercising the
// transport's malformed-frame fold path on every turn.
func Broken() ActionFunc {
	return func() []byte { return []byte("hi") }
}

// Run connects to serverURL and replies to every pushed turn with
// action(), until the connection closes (normally, because the game
// ended). name labels log output only.
func Run(serverURL, name string, action ActionFunc, logger *log.Logger) error {
	u, err := url.Parse(serverURL)
	if err != nil {
		return err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "", "ws", "wss":
		if u.Scheme == "" {
			u.Scheme = "ws"
		}
	}

	logger.Info("connecting", "name", name, "url", u.String())
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			logger.Info("connection closed", "name", name, "err", err)
			return nil
		}
		if err := conn.WriteMessage(websocket.TextMessage, action()); err != nil {
			logger.Warn("write failed", "name", name, "err", err)
			return nil
		}
	}
}
