package reel

import (
	"go.uber.org/fx"
)

var Module = fx.Module("reel_repository",
	fx.Provide(
		fx.Annotate(
			NewPgx,
			fx.As(new(Repository)),
		),
	),
)
