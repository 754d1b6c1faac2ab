package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
)

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      1.5,
	}
}

// FromConfig reads the retry policy of remote reads from the application config.
func FromConfig(cfg *config.Config) Config {
	c := DefaultConfig()
	c.MaxRetries = cfg.Retry.MaxRetries
	if cfg.Retry.InitialInterval > 0 {
		c.InitialInterval = cfg.Retry.InitialInterval
	}
	if cfg.Retry.MaxInterval > 0 {
		c.MaxInterval = cfg.Retry.MaxInterval
	}
	return c
}

// NoRetry runs the operation exactly once.
func NoRetry() Config {
	return Config{MaxRetries: 0, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1}
}

// Do runs operation until it succeeds, the retries are spent or ctx is done.
// Not-found and invalid-input errors are never retried.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.Multiplier = cfg.Multiplier
	bo.Reset()

	retryable := backoff.WithMaxRetries(bo, cfg.MaxRetries)
	retryableWithContext := backoff.WithContext(retryable, ctx)

	notify := func(err error, t time.Duration) {
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"error", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}

	wrapped := func() error {
		err := operation()
		if err != nil && (errors.IsNotFound(err) || errors.IsInvalidInput(err)) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.RetryNotify(wrapped, retryableWithContext, notify)
}
