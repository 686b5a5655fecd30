package logger

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module provides the presto API logger.
var Module = fx.Provide(New)

// NamedModule provides a logger tagged with service, for the other binaries.
func NamedModule(service string) fx.Option {
	return fx.Provide(func() *slog.Logger { return NewNamed(service) })
}
