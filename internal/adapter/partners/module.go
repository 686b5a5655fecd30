package partners

import (
	"go.uber.org/fx"

	"github.com/polkiloo/presto/internal/usecase"
)

// Module exposes the partner source to fx graph.
var Module = fx.Provide(
	fx.Annotate(NewStaticSource, fx.As(new(usecase.PartnerSource))),
)
