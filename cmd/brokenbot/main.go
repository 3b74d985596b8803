// Command brokenbot is a reference bot that never sends a parseable
// reply, exercising the server's fold-on-malformed-frame path.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerarena/internal/bots"
)

type CLI struct {
	Server string `kong:"default='ws://localhost:10100/ws',help='Game server WebSocket URL'"`
	Name   string `kong:"default='Broken Bot',help='Display name in logs'"`
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Name("brokenbot"), kong.Description("Malformed-reply reference bot"))

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "brokenbot"})
	if err := bots.Run(cli.Server, cli.Name, bots.Broken(), logger); err != nil {
		logger.Fatal("brokenbot exited", "err", err)
	}
}
