package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/presto/internal/config"
)

// Module provides the event publisher selected by configuration.
var Module = fx.Provide(newPublisher)

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newPublisher(p publisherParams) (Publisher, error) {
	if len(p.Config.KafkaBrokers) == 0 {
		p.Logger.Info("kafka brokers not configured, domain events disabled")
		return NoopPublisher{}, nil
	}

	producer, err := DialKafka(p.Config.KafkaBrokers)
	if err != nil {
		return nil, err
	}
	pub := NewKafkaPublisher(producer, p.Config.KafkaTopic, p.Logger)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
