package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(newViper()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "talentdesk: %v\n", err)
		return 1
	}
	return 0
}
