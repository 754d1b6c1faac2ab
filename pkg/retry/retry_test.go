package retry

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
)

func fastConfig(retries uint64) Config {
	return Config{
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		Multiplier:      1,
	}
}

func TestDoRetriesTransientFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.Discard(), "flaky", func() error {
		calls++
		if calls < 3 {
			return stderrors.New("connection reset")
		}
		return nil
	}, fastConfig(3))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDoGivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	boom := stderrors.New("boom")
	err := Do(context.Background(), logger.Discard(), "broken", func() error {
		calls++
		return boom
	}, fastConfig(2))

	if !stderrors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDoDoesNotRetryNotFound(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.Discard(), "lookup", func() error {
		calls++
		return errors.NotFound("content not found")
	}, fastConfig(5))

	if !errors.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
