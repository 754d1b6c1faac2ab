package catalog

import (
	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/loader"
	catalogrepo "github.com/dharmayuga/dharmayuga/internal/repositories/catalog"
	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/dharmayuga/dharmayuga/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Deities    catalogrepo.Repository[domain.Deity]
	Scriptures catalogrepo.Repository[domain.Scripture]
	Config     *config.Config
	Logger     logger.Logger
}

func New(opts Opts) *Service {
	return NewService(opts.Deities, opts.Scriptures,
		loader.WithLogger(opts.Logger.WithComponent("Catalog")),
		loader.WithRetry(retry.FromConfig(opts.Config)),
	)
}

var Module = fx.Module("catalog",
	fx.Provide(New),
)
