package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"primemath/cmd/primes/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
