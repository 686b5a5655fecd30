package usecase

import "go.uber.org/fx"

// Module provides application-wide use cases to the fx container.
// Per-session components are built by the session registry.
var Module = fx.Provide(
	NewThemeService,
)
