package interaction

import (
	"github.com/dharmayuga/dharmayuga/internal/repositories/reel"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reelcomment"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reellike"
	"github.com/dharmayuga/dharmayuga/internal/session"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Reels    reel.Repository
	Likes    reellike.Repository
	Comments reelcomment.Repository
	Logger   logger.Logger
}

// Factory builds hooks sharing one set of repositories.
type Factory struct {
	Reels    reel.Repository
	Likes    reellike.Repository
	Comments reelcomment.Repository
	Logger   logger.Logger
}

func NewFactory(opts Opts) *Factory {
	return &Factory{
		Reels:    opts.Reels,
		Likes:    opts.Likes,
		Comments: opts.Comments,
		Logger:   opts.Logger.WithComponent("ReelInteractions"),
	}
}

// New returns an empty hook for reelID; call Refresh to load it.
func (f *Factory) New(reelID string, provider session.Provider) *Hook {
	return &Hook{
		reelID:   reelID,
		reels:    f.Reels,
		likes:    f.Likes,
		comments: f.Comments,
		session:  provider,
		logger:   f.Logger.With("reel_id", reelID),
	}
}
