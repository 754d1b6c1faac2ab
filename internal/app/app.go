package app

import (
	"context"

	"github.com/dharmayuga/dharmayuga/internal/catalog"
	"github.com/dharmayuga/dharmayuga/internal/hero"
	"github.com/dharmayuga/dharmayuga/internal/httpapi"
	"github.com/dharmayuga/dharmayuga/internal/interaction"
	"github.com/dharmayuga/dharmayuga/internal/monitoring"
	"github.com/dharmayuga/dharmayuga/internal/pgx"
	"github.com/dharmayuga/dharmayuga/internal/ratelimit"
	"github.com/dharmayuga/dharmayuga/internal/reelfeed"
	"github.com/dharmayuga/dharmayuga/internal/refresh"
	repositories "github.com/dharmayuga/dharmayuga/internal/repositories/fx"
	"github.com/dharmayuga/dharmayuga/migrations"
	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		clockwork.NewRealClock,
		newRegistry,
	),
	ratelimit.Module,
	repositories.Module,
	fx.Provide(
		interaction.NewFactory,
	),
	catalog.Module,
	reelfeed.Module,
	hero.Module,
	fx.Provide(refresh.New),
	httpapi.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func newRegistry() (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := monitoring.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func migrate(c *config.Config, log logger.Logger) error {
	db, err := migrations.Open(c.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		return err
	}
	log.Info("Database migrations applied")
	return nil
}

func run(lc fx.Lifecycle, log logger.Logger, refresher *refresh.Refresher) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if failed := refresher.RunAll(ctx); failed > 0 {
					log.Warn("Initial load finished with failures", "failed", failed)
					return
				}
				log.Info("Initial load finished")
			}()

			if err := refresher.Schedule(ctx); err != nil {
				log.Error("Refresh schedule error", "error", err)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
