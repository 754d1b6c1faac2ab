package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// Limiter defines the interface for rate limiting
type Limiter interface {
	Allow(key string) bool
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// InMemoryLimiter keeps one token bucket per key (a session id) in memory
type InMemoryLimiter struct {
	keys  map[string]*bucket
	mu    sync.Mutex
	r     rate.Limit // Rate of adding tokens (e.g., 1 token every 6 seconds)
	b     int        // Bucket size (e.g., can post 5 mutations in a row)
	idle  time.Duration
	clock clockwork.Clock
}

type Option func(*InMemoryLimiter)

func WithClock(clock clockwork.Clock) Option {
	return func(l *InMemoryLimiter) { l.clock = clock }
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(10, time.Minute, 5) -> 10 mutations a minute, burst of 5
func NewInMemoryLimiter(requests int, per time.Duration, burst int, opts ...Option) *InMemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	if burst <= 0 {
		burst = 1
	}
	every := per / time.Duration(requests)
	l := &InMemoryLimiter{
		keys: make(map[string]*bucket),
		r:    rate.Every(every),
		b:    burst,
		// a bucket untouched this long is full again
		idle:  every * time.Duration(burst),
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FromConfig builds the mutation limiter from the RateLimit section.
func FromConfig(cfg *config.Config, clock clockwork.Clock) *InMemoryLimiter {
	return NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst, WithClock(clock))
}

// Allow checks if key is allowed to perform an action
func (l *InMemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	b, exists := l.keys[key]
	if !exists {
		b = &bucket{limiter: rate.NewLimiter(l.r, l.b)}
		l.keys[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// Sweep drops buckets idle long enough to have refilled completely and
// returns how many were dropped. A dropped key starts again from a full bucket.
func (l *InMemoryLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	evicted := 0
	for key, b := range l.keys {
		if now.Sub(b.lastSeen) >= l.idle {
			delete(l.keys, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of tracked keys.
func (l *InMemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}

// Schedule sweeps idle buckets periodically until ctx is done.
func (l *InMemoryLimiter) Schedule(ctx context.Context, log logger.Logger) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(max(l.idle, time.Minute)),
		gocron.NewTask(func() {
			if evicted := l.Sweep(); evicted > 0 {
				log.Debug("Evicted idle rate limit buckets", "evicted", evicted, "remaining", l.Len())
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule bucket sweep: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		if err := scheduler.Shutdown(); err != nil {
			log.Error("Failed to shut down sweep scheduler", "error", err)
		}
	}()

	return nil
}
