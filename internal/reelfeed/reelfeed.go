// Package reelfeed holds the reel collection shown in the feed and the counter
// updates made from it.
package reelfeed

import (
	"context"

	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/loader"
	"github.com/dharmayuga/dharmayuga/internal/monitoring"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reel"
	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/dharmayuga/dharmayuga/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Reels  reel.Repository
	Config *config.Config
	Logger logger.Logger
}

type Feed struct {
	reels  reel.Repository
	logger logger.Logger

	Reels *loader.Resource[[]domain.Reel]
}

func New(opts Opts) *Feed {
	return NewFeed(opts.Reels, opts.Logger, loader.WithRetry(retry.FromConfig(opts.Config)))
}

func NewFeed(reels reel.Repository, log logger.Logger, opts ...loader.Option) *Feed {
	log = log.WithComponent("ReelFeed")
	opts = append([]loader.Option{loader.WithLogger(log)}, opts...)
	return &Feed{
		reels:  reels,
		logger: log,
		Reels:  loader.NewCollection[domain.Reel]("reels", reels.List, opts...),
	}
}

// Ensure loads the feed on first use and returns its state.
func (f *Feed) Ensure(ctx context.Context) loader.State[[]domain.Reel] {
	if !f.Reels.Loaded() {
		return f.Reels.Refetch(ctx)
	}
	return f.Reels.State()
}

// UpdateLikes moves likes_count of a loaded reel by one, never below zero.
func (f *Feed) UpdateLikes(ctx context.Context, id string, increment bool) (int, error) {
	return f.bump(ctx, id, domain.CounterLikes, func(current int) int {
		if increment {
			return current + 1
		}
		return max(0, current-1)
	})
}

// UpdateShares records one share of a loaded reel.
func (f *Feed) UpdateShares(ctx context.Context, id string) (int, error) {
	n, err := f.bump(ctx, id, domain.CounterShares, func(current int) int {
		return current + 1
	})
	if err == nil {
		monitoring.ReelInteractions.WithLabelValues("share").Inc()
	}
	return n, err
}

// bump writes the new counter value first and mirrors it locally only once
// the write succeeded.
func (f *Feed) bump(ctx context.Context, id string, counter domain.Counter, next func(int) int) (int, error) {
	current, ok := f.find(id)
	if !ok {
		return 0, reel.ErrNotFound
	}

	value := next(current.Get(counter))
	if err := f.reels.SetCounter(ctx, id, counter, value); err != nil {
		f.logger.Error("Failed to update counter", "reel_id", id, "counter", counter, "error", err)
		return 0, errors.Wrap(err, "failed to update "+string(counter))
	}

	f.Reels.Update(func(reels []domain.Reel) []domain.Reel {
		out := make([]domain.Reel, len(reels))
		copy(out, reels)
		for i := range out {
			if out[i].ID == id {
				out[i].Set(counter, value)
			}
		}
		return out
	})
	return value, nil
}

func (f *Feed) find(id string) (domain.Reel, bool) {
	for _, r := range f.Reels.State().Data {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Reel{}, false
}

var Module = fx.Module("reelfeed",
	fx.Provide(New),
)
