// Package main is the entry point for dexview.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/dexview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// The output region already carries the user-facing message.
		if !errors.Is(err, app.ErrLookupFailed) {
			fmt.Fprintf(os.Stderr, "dexview: %v\n", err)
		}
		return 1
	}
	return 0
}
