package catalog

import (
	"go.uber.org/fx"
)

var Module = fx.Module("catalog_repository",
	fx.Provide(
		NewDeities,
		NewScriptures,
	),
)
