package main

import (
	"context"
	"os/signal"
	"syscall"
)

// signalContext derives a context cancelled on SIGINT or SIGTERM so a
// running install or uninstall stops at the next step boundary.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
