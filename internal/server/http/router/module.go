package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/presto/internal/app"
	"github.com/polkiloo/presto/internal/metrics"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newRouter)

type routerParams struct {
	fx.In

	Facade  *app.PrestoFacade
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

func newRouter(p routerParams) *gin.Engine {
	return Setup(p.Facade, p.Metrics, p.Logger)
}
