package stub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/presto/internal/config"
)

const stubShutdownTimeout = 5 * time.Second

// Module wires the stub backend server and its lifecycle.
var Module = fx.Options(
	fx.Provide(NewStore, NewServer, newHTTPServer),
	fx.Invoke(registerLifecycle),
)

func newHTTPServer(cfg config.StubConfig, srv *Server) *http.Server {
	return &http.Server{Addr: cfg.Address(), Handler: srv.Router()}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("Prestó Backend listening", slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("stub server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, stubShutdownTimeout)
			defer cancel()
			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	})
}
