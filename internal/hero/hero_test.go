package hero_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/hero"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/jonboulle/clockwork"
)

func pages(n int) []domain.HeroPage {
	out := make([]domain.HeroPage, n)
	for i := range out {
		out[i] = domain.HeroPage{ID: fmt.Sprintf("page-%d", i), Title: fmt.Sprintf("Page %d", i), DisplayOrder: i, IsActive: true}
	}
	return out
}

func start(t *testing.T, n int) (*hero.Controller, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClock()
	c := hero.New(clock, hero.DefaultConfig(), logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go c.Run(ctx)

	c.SetPages(pages(n))
	return c, clock
}

func assertIndex(t *testing.T, c *hero.Controller, want int) {
	t.Helper()
	if got := c.Snapshot().Index; got != want {
		t.Fatalf("index = %d, want %d", got, want)
	}
}

func assertStatus(t *testing.T, c *hero.Controller, want hero.Status) {
	t.Helper()
	if got := c.Snapshot().Status; got != want {
		t.Fatalf("status = %s, want %s", got, want)
	}
}

func TestRotatesOnInterval(t *testing.T) {
	c, clock := start(t, 3)
	assertStatus(t, c, hero.Rotating)

	clock.Advance(4 * time.Second)
	assertIndex(t, c, 0)

	clock.Advance(time.Second)
	assertIndex(t, c, 1)

	clock.Advance(5 * time.Second)
	assertIndex(t, c, 2)

	clock.Advance(5 * time.Second)
	assertIndex(t, c, 0)
}

func TestNavigationWrapsAround(t *testing.T) {
	c, _ := start(t, 3)

	c.Next()
	c.Next()
	c.Next()
	assertIndex(t, c, 0)

	c.Previous()
	assertIndex(t, c, 2)

	c.GoTo(4)
	assertIndex(t, c, 1)

	c.GoTo(-1)
	assertIndex(t, c, 2)
}

func TestTouchPausesRotation(t *testing.T) {
	c, clock := start(t, 3)

	c.TouchStart(100)
	assertStatus(t, c, hero.Paused)

	// The interval would have fired at 5s.
	clock.Advance(2 * time.Second)
	assertIndex(t, c, 0)
	assertStatus(t, c, hero.Paused)

	clock.Advance(time.Second)
	assertStatus(t, c, hero.Rotating)
	assertIndex(t, c, 0)

	clock.Advance(4 * time.Second)
	assertIndex(t, c, 0)

	clock.Advance(time.Second)
	assertIndex(t, c, 1)
}

func TestTouchAfterElapsedTimePausesFullCooldown(t *testing.T) {
	c, clock := start(t, 3)

	clock.Advance(4 * time.Second)
	c.TouchStart(100)

	clock.Advance(time.Second)
	assertIndex(t, c, 0)

	clock.Advance(time.Second)
	assertIndex(t, c, 0)
	assertStatus(t, c, hero.Paused)

	clock.Advance(time.Second)
	assertStatus(t, c, hero.Rotating)
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     int
	}{
		{name: "left drag shows next", from: 200, to: 100, want: 1},
		{name: "right drag shows previous", from: 100, to: 180, want: 2},
		{name: "short drag is ignored", from: 100, to: 140, want: 0},
		{name: "threshold is exclusive", from: 100, to: 50, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := start(t, 3)
			c.TouchStart(tt.from)
			c.TouchEnd(tt.to)
			assertIndex(t, c, tt.want)
		})
	}
}

func TestTouchEndWithoutStartIsIgnored(t *testing.T) {
	c, _ := start(t, 3)
	c.TouchEnd(0)
	assertIndex(t, c, 0)
	assertStatus(t, c, hero.Rotating)
}

func TestHoverHoldsUntilPointerLeaves(t *testing.T) {
	c, clock := start(t, 3)

	c.PointerEnter()
	assertStatus(t, c, hero.Paused)

	c.Next()
	clock.Advance(10 * time.Second)
	assertIndex(t, c, 1)
	assertStatus(t, c, hero.Paused)

	c.PointerLeave()
	assertStatus(t, c, hero.Rotating)

	clock.Advance(5 * time.Second)
	assertIndex(t, c, 2)
}

func TestSinglePageStaysIdle(t *testing.T) {
	c, clock := start(t, 1)
	assertStatus(t, c, hero.Idle)

	c.Next()
	c.Previous()
	c.TouchStart(300)
	c.TouchEnd(0)
	clock.Advance(20 * time.Second)

	assertIndex(t, c, 0)
	assertStatus(t, c, hero.Idle)
}

func TestSetPagesKeepsValidIndex(t *testing.T) {
	c, _ := start(t, 3)

	c.GoTo(2)
	c.SetPages(pages(4))
	assertIndex(t, c, 2)

	c.SetPages(pages(2))
	assertIndex(t, c, 0)

	c.SetPages(nil)
	snap := c.Snapshot()
	if snap.Status != hero.Idle {
		t.Fatalf("status = %s, want idle", snap.Status)
	}
	if len(snap.Pages) != 0 || snap.Index != 0 {
		t.Fatalf("expected no pages, got %+v", snap)
	}
}

func TestCommandsAfterStopReturn(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := hero.New(clock, hero.DefaultConfig(), logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()
	c.SetPages(pages(3))
	cancel()
	<-done

	c.Next()
	if snap := c.Snapshot(); snap.Pages != nil {
		t.Fatalf("expected zero snapshot after stop, got %+v", snap)
	}
}

type pageRepo struct {
	pages []domain.HeroPage
	err   error
}

func (r pageRepo) ListActive(ctx context.Context) ([]domain.HeroPage, error) {
	return r.pages, r.err
}

func TestPagesRefreshFeedsController(t *testing.T) {
	c, _ := start(t, 0)
	assertStatus(t, c, hero.Idle)

	p := hero.NewPages(pageRepo{pages: pages(2)}, c)
	if st := p.Refresh(context.Background()); st.Err != "" {
		t.Fatalf("refresh: %s", st.Err)
	}
	assertStatus(t, c, hero.Rotating)

	failing := hero.NewPages(pageRepo{err: errors.New("timeout")}, c)
	if st := failing.Refresh(context.Background()); st.Err == "" {
		t.Fatal("expected error state")
	}
	if got := len(c.Snapshot().Pages); got != 2 {
		t.Fatalf("pages = %d, want 2 kept", got)
	}
}

func TestRunIsSingleUse(t *testing.T) {
	c := hero.New(clockwork.NewFakeClock(), hero.DefaultConfig(), logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Run(ctx)
	c.Run(ctx)

	live, stop := context.WithCancel(context.Background())
	defer stop()
	returned := make(chan struct{})
	go func() {
		c.Run(live)
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("second Run kept running")
	}
}
