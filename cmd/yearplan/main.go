package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/klabast/yearplan/internal/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	var code int
	// Check for subcommands
	if len(os.Args) > 1 && os.Args[1] == "fixed" {
		code = commands.Fixed(ctx, os.Args[2:])
	} else {
		code = commands.Plan(ctx, os.Args[1:])
	}

	cancel()
	os.Exit(code)
}
