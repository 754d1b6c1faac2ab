package hero

import (
	"context"

	"github.com/dharmayuga/dharmayuga/internal/loader"
	"github.com/dharmayuga/dharmayuga/internal/repositories/heropage"
	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/dharmayuga/dharmayuga/pkg/retry"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Clock  clockwork.Clock
	Repo   heropage.Repository
	Config *config.Config
	Logger logger.Logger
}

// NewFromFx starts the controller loop with the application and stops it on shutdown.
func NewFromFx(opts Opts) (*Controller, *Pages) {
	c := New(opts.Clock, FromConfig(opts.Config), opts.Logger)
	pages := NewPages(opts.Repo, c,
		loader.WithLogger(opts.Logger.WithComponent("HeroPages")),
		loader.WithRetry(retry.FromConfig(opts.Config)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go c.Run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return c, pages
}

var Module = fx.Module("hero",
	fx.Provide(NewFromFx),
)
