package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/presto/internal/adapter/events"
	"github.com/polkiloo/presto/internal/adapter/partners"
	"github.com/polkiloo/presto/internal/adapter/responder"
	"github.com/polkiloo/presto/internal/app"
	"github.com/polkiloo/presto/internal/config"
	"github.com/polkiloo/presto/internal/logger"
	"github.com/polkiloo/presto/internal/metrics"
	"github.com/polkiloo/presto/internal/server/http/router"
	"github.com/polkiloo/presto/internal/storage"
	"github.com/polkiloo/presto/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		storage.Module,
		responder.Module,
		partners.Module,
		events.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
