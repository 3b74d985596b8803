// Package engine drives a game.Table to completion by pushing a view to
// the current seat and pulling its reply each turn, through one
// transport.Adapter per seat. It is the only place that turns a
// transport failure into a synthesized Fold.
package engine

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/pokerarena/internal/game"
)

// ReadTimeout is how long the engine waits for a seat's reply before
// synthesizing a Fold for that turn.
const ReadTimeout = 10 * time.Second

// Seat is the per-seat contract the engine drives each turn through.
// *transport.Adapter satisfies it; tests substitute fakes.
type Seat interface {
	Push(data []byte) error
	Pull(deadline time.Time) ([]byte, error)
}

// Engine owns one Table and the per-seat adapters driving it.
type Engine struct {
	table  *game.Table
	seats  []Seat
	logger zerolog.Logger
}

// New pairs a freshly-dealt table with one seat adapter per seat, in
// seat order. len(seats) must equal table.PlayerCount().
func New(table *game.Table, seats []Seat, logger zerolog.Logger) *Engine {
	return &Engine{table: table, seats: seats, logger: logger}
}

// Run drives the table to completion and returns the final ranked
// report from Table.GetResults.
func (e *Engine) Run() string {
	for !e.table.IsGameOver() {
		seat := e.table.CurrentPlayerIndex()
		action := e.turn(seat)
		e.table.TakeAction(action)
	}
	return e.table.GetResults()
}

// turn pushes the current state to seat and pulls its reply, never
// propagating a transport error: any failure becomes a Fold.
func (e *Engine) turn(seat int) game.HandAction {
	view := e.table.ViewFor(int8(seat))
	data, err := json.Marshal(view)
	if err != nil {
		e.logger.Error().Err(err).Int("seat", seat).Msg("failed to marshal table view")
		return game.Fold()
	}

	adapter := e.seats[seat]
	if err := adapter.Push(data); err != nil {
		e.logger.Warn().Err(err).Int("seat", seat).Msg("push failed, folding seat")
		return game.Fold()
	}

	frame, err := adapter.Pull(time.Now().Add(ReadTimeout))
	if err != nil {
		e.logger.Warn().Err(err).Int("seat", seat).Msg("pull failed or timed out, folding seat")
		return game.Fold()
	}

	action, err := game.ParseAction(frame)
	if err != nil {
		e.logger.Warn().Err(err).Int("seat", seat).Msg("malformed action frame, folding seat")
		return game.Fold()
	}
	return action
}
