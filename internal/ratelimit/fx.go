package ratelimit

import (
	"context"

	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Module("ratelimit",
	fx.Provide(
		FromConfig,
		func(l *InMemoryLimiter) Limiter { return l },
	),
	fx.Invoke(startSweeper),
)

func startSweeper(lc fx.Lifecycle, l *InMemoryLimiter, log logger.Logger) {
	log = log.WithComponent("RateLimit")
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return l.Schedule(ctx, log)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
