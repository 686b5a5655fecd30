package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/presto/internal/adapter/events"
	"github.com/polkiloo/presto/internal/config"
	"github.com/polkiloo/presto/internal/metrics"
	"github.com/polkiloo/presto/internal/scheduler"
	"github.com/polkiloo/presto/internal/usecase"
	"github.com/polkiloo/presto/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		newScheduler,
		newFacade,
		newHTTPServer,
		newProgressSimulator,
	),
	fx.Invoke(registerLifecycle),
)

func newScheduler() *scheduler.Scheduler {
	return scheduler.New(nil)
}

// NewSessionConfig maps configuration onto per-session tunables.
func NewSessionConfig(cfg *config.Config) SessionConfig {
	return SessionConfig{
		StartingBalance: cfg.StartingBalance,
		Ledger: usecase.LedgerConfig{
			TopUpAmount:    cfg.TopUpAmount,
			WithdrawAmount: cfg.WithdrawAmount,
			MinLatency:     cfg.LedgerMinLatency,
			MaxLatency:     cfg.LedgerMaxLatency,
		},
		Chat: usecase.ChatConfig{
			GreetingDelay:     cfg.GreetingDelay,
			TypingDelay:       cfg.TypingDelay,
			SystemUpdateDelay: cfg.SystemUpdateDelay,
		},
	}
}

type facadeParams struct {
	fx.In

	Config    *config.Config
	Registry  *Registry
	Partners  usecase.PartnerSource
	Responder usecase.Responder
	Theme     *usecase.ThemeService
	Scheduler *scheduler.Scheduler
	Publisher events.Publisher
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

func newFacade(p facadeParams) *PrestoFacade {
	return NewPrestoFacade(FacadeDeps{
		Registry:  p.Registry,
		Partners:  p.Partners,
		Responder: p.Responder,
		Theme:     p.Theme,
		Scheduler: p.Scheduler,
		Publisher: p.Publisher,
		Recorder:  p.Metrics,
		Config:    NewSessionConfig(p.Config),
		Logger:    p.Logger,
	})
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type simulatorParams struct {
	fx.In

	Facade    *PrestoFacade
	Scheduler *scheduler.Scheduler
	Config    *config.Config
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

func newProgressSimulator(p simulatorParams) *worker.ProgressSimulator {
	return worker.NewProgressSimulator(
		p.Facade,
		p.Scheduler,
		p.Config.ProgressTickInterval,
		p.Config.ProgressMaxStep,
		nil,
		p.Metrics,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Simulator  *worker.ProgressSimulator
	Registry   *Registry
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting presto", slog.String("addr", p.Server.Addr))
			p.Simulator.Start()
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Simulator.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			err := p.Server.Shutdown(shutdownCtx)
			p.Registry.CloseAll()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("presto stopped")
			return nil
		},
	})
}
