// Command juggle searches and analyses siteswap juggling patterns.
//
//	juggle generate --period 4 --max 7 --objects 3 --jugglers 2 --at-least 5:1
//	juggle generate --config profile.yaml --objects 3-5 --transitions
//	juggle analyze 86277 --jugglers 2
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/juggle/internal/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		render.Error(os.Stderr, err)
		stop()
		os.Exit(1)
	}
	stop()
}
