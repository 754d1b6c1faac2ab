package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/dharmayuga/dharmayuga/pkg/logger"
)

func TestRunAllCountsFailures(t *testing.T) {
	var calls atomic.Int32
	ok := func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}
	fail := func(ctx context.Context) error {
		calls.Add(1)
		return errors.New("timeout")
	}

	r := NewRefresher(0, logger.Discard(),
		Task{Name: "a", Run: ok},
		Task{Name: "b", Run: fail},
		Task{Name: "c", Run: ok},
		Task{Name: "d", Run: ok},
		Task{Name: "e", Run: fail},
	)

	if failed := r.RunAll(context.Background()); failed != 2 {
		t.Fatalf("failed = %d, want 2", failed)
	}
	if calls.Load() != 5 {
		t.Fatalf("calls = %d, want 5", calls.Load())
	}
}

func TestRunAllSkipsAfterCancel(t *testing.T) {
	var calls atomic.Int32
	r := NewRefresher(0, logger.Discard(), Task{Name: "a", Run: func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.RunAll(ctx)
	if calls.Load() != 0 {
		t.Fatalf("calls = %d, want 0", calls.Load())
	}
}

func TestScheduleDisabled(t *testing.T) {
	r := NewRefresher(0, logger.Discard())
	if err := r.Schedule(context.Background()); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
}
