package reellike

import (
	"go.uber.org/fx"
)

var Module = fx.Module("reel_like_repository",
	fx.Provide(
		fx.Annotate(
			NewPgx,
			fx.As(new(Repository)),
		),
	),
)
