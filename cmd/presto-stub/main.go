package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/polkiloo/presto/internal/config"
	"github.com/polkiloo/presto/internal/logger"
	"github.com/polkiloo/presto/internal/stub"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := fx.New(
		fx.NopLogger,
		config.StubModule,
		logger.NamedModule("presto-stub"),
		stub.Module,
	)

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start stub backend: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop stub backend: %v\n", err)
		os.Exit(1)
	}
}
