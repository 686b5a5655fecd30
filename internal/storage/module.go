package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/presto/internal/config"
	"github.com/polkiloo/presto/internal/domain/repository"
	"github.com/polkiloo/presto/internal/storage/memory"
	"github.com/polkiloo/presto/internal/storage/postgres"
	"github.com/polkiloo/presto/internal/storage/redis"
)

// Module provides the preference repository chosen by configuration:
// PostgreSQL when DATABASE_URI is set, else Redis when REDIS_ADDRESS is set, else memory.
var Module = fx.Provide(newPreferenceRepository)

type repositoryParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newPreferenceRepository(p repositoryParams) (repository.PreferenceRepository, error) {
	switch {
	case p.Config.DatabaseURI != "":
		st, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
		if err != nil {
			return nil, err
		}
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				st.Close()
				return nil
			},
		})
		p.Logger.Info("preferences backed by postgres")
		return st.Preferences(), nil
	case p.Config.RedisAddress != "":
		st, err := redis.Dial(p.Ctx, p.Config.RedisAddress)
		if err != nil {
			return nil, err
		}
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return st.Close()
			},
		})
		p.Logger.Info("preferences backed by redis", slog.String("addr", p.Config.RedisAddress))
		return st, nil
	default:
		p.Logger.Info("preferences kept in memory")
		return memory.New(), nil
	}
}
