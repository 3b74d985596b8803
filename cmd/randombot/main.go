// Command randombot is a reference bot that picks a uniformly random
// legal-shaped action each turn (fold, call, check, or a fixed raise).
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerarena/internal/bots"
)

type CLI struct {
	Server string `kong:"default='ws://localhost:10100/ws',help='Game server WebSocket URL'"`
	Name   string `kong:"default='Random Bot',help='Display name in logs'"`
	Seed   int64  `kong:"help='Deterministic RNG seed (default: current time)'"`
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Name("randombot"), kong.Description("Uniformly-random reference bot"))

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "randombot"})
	if err := bots.Run(cli.Server, cli.Name, bots.Random(rng), logger); err != nil {
		logger.Fatal("randombot exited", "err", err)
	}
}
