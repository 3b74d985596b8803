// Command callbot is a reference bot that always calls.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerarena/internal/bots"
)

type CLI struct {
	Server string `kong:"default='ws://localhost:10100/ws',help='Game server WebSocket URL'"`
	Name   string `kong:"default='Call Bot',help='Display name in logs'"`
}

func main() {
	var cli CLI
	kong.Parse(&cli, kong.Name("callbot"), kong.Description("Always-call reference bot"))

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "callbot"})
	if err := bots.Run(cli.Server, cli.Name, bots.Call(), logger); err != nil {
		logger.Fatal("callbot exited", "err", err)
	}
}
