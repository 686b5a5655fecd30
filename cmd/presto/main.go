// Command presto serves the delivery request, chat and wallet API.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/polkiloo/presto/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run(ctx, newApp(ctx))
}

// newApp builds the API graph; ctx is cancelled on SIGINT or SIGTERM.
func newApp(ctx context.Context, opts ...fx.Option) *fx.App {
	return fx.New(
		fx.Provide(func() context.Context { return ctx }),
		di.Module(opts...),
	)
}
