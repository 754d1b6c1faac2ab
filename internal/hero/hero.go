package hero

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/jonboulle/clockwork"
)

type Status int

const (
	Idle Status = iota
	Rotating
	Paused
)

func (s Status) String() string {
	switch s {
	case Rotating:
		return "rotating"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "rotating":
		*s = Rotating
	case "paused":
		*s = Paused
	default:
		*s = Idle
	}
	return nil
}

type Config struct {
	Interval       time.Duration
	Cooldown       time.Duration
	SwipeThreshold float64
}

func DefaultConfig() Config {
	return Config{
		Interval:       5 * time.Second,
		Cooldown:       3 * time.Second,
		SwipeThreshold: 50,
	}
}

func FromConfig(cfg *config.Config) Config {
	c := DefaultConfig()
	if cfg.Hero.RotationInterval > 0 {
		c.Interval = cfg.Hero.RotationInterval
	}
	if cfg.Hero.PauseCooldown > 0 {
		c.Cooldown = cfg.Hero.PauseCooldown
	}
	if cfg.Hero.SwipeThreshold > 0 {
		c.SwipeThreshold = cfg.Hero.SwipeThreshold
	}
	return c
}

type Snapshot struct {
	Pages  []domain.HeroPage `json:"pages"`
	Index  int               `json:"index"`
	Status Status            `json:"status"`
}

// Controller rotates through hero pages on a timer. All state lives on the
// goroutine started by Run; the exported methods hand it commands and wait.
type Controller struct {
	clock  clockwork.Clock
	cfg    Config
	logger logger.Logger

	cmds    chan command
	done    chan struct{}
	started atomic.Bool
}

type command struct {
	apply func(s *loop)
	done  chan struct{}
}

func New(clock clockwork.Clock, cfg Config, log logger.Logger) *Controller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Controller{
		clock:  clock,
		cfg:    cfg,
		logger: log.WithComponent("HeroRotation"),
		cmds:   make(chan command),
		done:   make(chan struct{}),
	}
}

// Run processes timers and commands until ctx is done. Timers are stopped on exit.
// A controller runs once; later calls return immediately.
func (c *Controller) Run(ctx context.Context) {
	if !c.started.CompareAndSwap(false, true) {
		c.logger.Warn("Rotation loop already started")
		return
	}

	s := &loop{cfg: c.cfg, clock: c.clock, logger: c.logger}
	defer close(c.done)
	defer s.disarmAll()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.intervalC():
			s.onInterval()
		case <-s.cooldownC():
			s.onCooldown()
		case cmd := <-c.cmds:
			s.drainTimers()
			cmd.apply(s)
			close(cmd.done)
		}
	}
}

func (c *Controller) do(fn func(s *loop)) bool {
	cmd := command{apply: fn, done: make(chan struct{})}
	select {
	case c.cmds <- cmd:
	case <-c.done:
		return false
	}
	select {
	case <-cmd.done:
		return true
	case <-c.done:
		return false
	}
}

// SetPages replaces the ordered page list. The index is kept when still valid.
func (c *Controller) SetPages(pages []domain.HeroPage) {
	cp := append([]domain.HeroPage(nil), pages...)
	c.do(func(s *loop) { s.setPages(cp) })
}

func (c *Controller) Next() {
	c.do(func(s *loop) { s.navigate(s.index + 1) })
}

func (c *Controller) Previous() {
	c.do(func(s *loop) { s.navigate(s.index - 1) })
}

func (c *Controller) GoTo(index int) {
	c.do(func(s *loop) { s.navigate(index) })
}

func (c *Controller) PointerEnter() {
	c.do(func(s *loop) { s.pointerEnter() })
}

func (c *Controller) PointerLeave() {
	c.do(func(s *loop) { s.pointerLeave() })
}

func (c *Controller) TouchStart(x float64) {
	c.do(func(s *loop) { s.touchStart(x) })
}

func (c *Controller) TouchEnd(x float64) {
	c.do(func(s *loop) { s.touchEnd(x) })
}

func (c *Controller) Snapshot() Snapshot {
	var snap Snapshot
	c.do(func(s *loop) {
		snap = Snapshot{
			Pages:  append([]domain.HeroPage(nil), s.pages...),
			Index:  s.index,
			Status: s.status,
		}
	})
	return snap
}
