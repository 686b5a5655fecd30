package responder

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/presto/internal/config"
	"github.com/polkiloo/presto/internal/usecase"
)

// Module exposes the chat responder client to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (usecase.Responder, error) {
	return NewHTTPClient(p.Config.ResponderAddress, p.Config.ResponderTimeout, p.Logger)
}
