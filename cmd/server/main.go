// Command server runs one poker table for one game: it accepts inbound
// WebSocket connections for a bounded window, assigns each as a seat in
// arrival order, then drives the hand-by-hand engine loop to game over.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/pokerarena/internal/acceptor"
	"github.com/lox/pokerarena/internal/bots"
	"github.com/lox/pokerarena/internal/engine"
	"github.com/lox/pokerarena/internal/game"
)

// Exit codes, distinct per the operational surface's error taxonomy.
const (
	exitOK            = 0
	exitBadInput      = 2
	exitNoConnections = 3
)

type CLI struct {
	Port                    int  `kong:"default='10100',help='TCP listen port'"`
	AcceptanceWindowSeconds int  `kong:"default='30',help='Length of the connection-acceptance window'"`
	NCallBots               int  `kong:"name='n-call-bots',default='0',help='In-process always-call bots to launch'"`
	NRandomBots             int  `kong:"name='n-random-bots',default='0',help='In-process random-action bots to launch'"`
	NFailBots               int  `kong:"name='n-fail-bots',default='0',help='In-process malformed-reply bots to launch'"`
	DisableLogging          bool `kong:"help='Suppress console logging'"`
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Name("pokerarena-server"), kong.Description("No-limit ante poker server"))

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if cli.DisableLogging {
		logger = zerolog.Nop()
	}

	if sum := cli.NCallBots + cli.NRandomBots + cli.NFailBots; sum >= game.MaxPlayers {
		logger.Error().Int("sum", sum).Msg("bot count sum must be less than 23")
		os.Exit(exitBadInput)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	addr := fmt.Sprintf(":%d", cli.Port)
	clock := quartz.NewReal()
	a := acceptor.New(clock, logger)

	window := time.Duration(cli.AcceptanceWindowSeconds) * time.Second
	logger.Info().Str("addr", addr).Dur("window", window).Msg("accepting connections")

	go launchBots(addr, cli, logger)

	seatAdapters, err := a.Accept(ctx, addr, window)
	if err != nil {
		logger.Error().Err(err).Msg("no connections accepted during acceptance window")
		os.Exit(exitNoConnections)
	}

	n := len(seatAdapters)
	logger.Info().Int("seats", n).Msg("acceptance window closed, starting game")

	seats := make([]engine.Seat, n)
	for i, adapter := range seatAdapters {
		seats[i] = adapter
	}

	table := game.NewTableWithRand(n, rand.New(rand.NewSource(time.Now().UnixNano())))
	e := engine.New(table, seats, logger)
	results := e.Run()

	fmt.Println(results)
	os.Exit(exitOK)
}

// launchBots connects the requested number of in-process reference bots
// to this server's own listener. It runs concurrently with Accept, so
// bots race real external clients for the remaining seats.
func launchBots(addr string, cli CLI, zl zerolog.Logger) {
	serverURL := "ws://localhost" + addr + "/ws"
	clientLogger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "bots"})
	if cli.DisableLogging {
		clientLogger.SetOutput(discardWriter{})
	}

	for i := 0; i < cli.NCallBots; i++ {
		go func(i int) {
			if err := bots.Run(serverURL, fmt.Sprintf("call-%d", i), bots.Call(), clientLogger); err != nil {
				zl.Warn().Err(err).Int("bot", i).Msg("call bot exited with error")
			}
		}(i)
	}
	for i := 0; i < cli.NRandomBots; i++ {
		go func(i int) {
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(i)))
			if err := bots.Run(serverURL, fmt.Sprintf("random-%d", i), bots.Random(rng), clientLogger); err != nil {
				zl.Warn().Err(err).Int("bot", i).Msg("random bot exited with error")
			}
		}(i)
	}
	for i := 0; i < cli.NFailBots; i++ {
		go func(i int) {
			if err := bots.Run(serverURL, fmt.Sprintf("fail-%d", i), bots.Broken(), clientLogger); err != nil {
				zl.Warn().Err(err).Int("bot", i).Msg("fail bot exited with error")
			}
		}(i)
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
