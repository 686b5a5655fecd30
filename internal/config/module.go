package config

import "go.uber.org/fx"

// Module provides *Config for the presto API.
var Module = fx.Provide(Load)

// StubModule provides StubConfig for the stub backend.
var StubModule = fx.Provide(LoadStub)
