// Package refresh preloads the top level collections on start and refetches
// them on a schedule.
package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dharmayuga/dharmayuga/internal/catalog"
	"github.com/dharmayuga/dharmayuga/internal/hero"
	"github.com/dharmayuga/dharmayuga/internal/reelfeed"
	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

const poolSize = 4

// Task refetches one resource.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

type Opts struct {
	fx.In

	Catalog   *catalog.Service
	Feed      *reelfeed.Feed
	HeroPages *hero.Pages
	Config    *config.Config
	Logger    logger.Logger
}

type Refresher struct {
	tasks    []Task
	interval time.Duration
	logger   logger.Logger
}

func New(opts Opts) *Refresher {
	return NewRefresher(opts.Config.Refresh.Interval, opts.Logger, Tasks(opts.Catalog, opts.Feed, opts.HeroPages)...)
}

func NewRefresher(interval time.Duration, log logger.Logger, tasks ...Task) *Refresher {
	return &Refresher{
		tasks:    tasks,
		interval: interval,
		logger:   log.WithComponent("Refresher"),
	}
}

// Tasks lists the collections every visitor sees first.
func Tasks(cat *catalog.Service, feed *reelfeed.Feed, pages *hero.Pages) []Task {
	return []Task{
		{Name: "catalog", Run: cat.Refresh},
		{Name: "reels", Run: stateTask(func(ctx context.Context) string { return feed.Reels.Refetch(ctx).Err })},
		{Name: "hero_pages", Run: stateTask(func(ctx context.Context) string { return pages.Refresh(ctx).Err })},
	}
}

func stateTask(refetch func(ctx context.Context) string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if msg := refetch(ctx); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

// RunAll runs every task on a bounded worker pool and waits for them.
// It returns the number of failed tasks.
func (r *Refresher) RunAll(ctx context.Context) int {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)

	pool, err := ants.NewPool(poolSize, ants.WithPreAlloc(true))
	if err != nil {
		r.logger.Error("Failed to create worker pool", "error", err)
		return len(r.tasks)
	}
	defer pool.Release()

	for _, task := range r.tasks {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				r.logger.Info("Skipping refresh due to context cancellation", "resource", task.Name)
				return
			}
			if err := task.Run(ctx); err != nil {
				r.logger.Error("Refresh failed", "resource", task.Name, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
			}
		})
		if err != nil {
			wg.Done()
			r.logger.Error("Failed to submit refresh to pool", "resource", task.Name, "error", err)
			mu.Lock()
			failed++
			mu.Unlock()
		}
	}

	wg.Wait()
	return failed
}

// Schedule refetches everything every interval until ctx is done.
// A zero interval disables the schedule.
func (r *Refresher) Schedule(ctx context.Context) error {
	if r.interval <= 0 {
		r.logger.Info("Periodic refresh disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			taskCtx, cancel := context.WithTimeout(ctx, r.interval)
			defer cancel()

			if failed := r.RunAll(taskCtx); failed > 0 {
				r.logger.Warn("Scheduled refresh finished with failures", "failed", failed)
				return
			}
			r.logger.Debug("Scheduled refresh finished")
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		r.logger.Info("Stopping refresh scheduler")
		if err := scheduler.Shutdown(); err != nil {
			r.logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
