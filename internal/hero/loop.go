package hero

import (
	"time"

	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/jonboulle/clockwork"
)

type loop struct {
	cfg    Config
	clock  clockwork.Clock
	logger logger.Logger

	pages  []domain.HeroPage
	index  int
	status Status

	hovered     bool
	touching    bool
	touchStartX float64

	interval clockwork.Timer
	cooldown clockwork.Timer
}

func (s *loop) rotatable() bool {
	return len(s.pages) > 1
}

func (s *loop) setPages(pages []domain.HeroPage) {
	s.pages = pages
	if s.index >= len(pages) {
		s.index = 0
	}

	if !s.rotatable() {
		s.index = 0
		s.status = Idle
		s.disarmAll()
		return
	}

	if s.status == Idle {
		s.resume()
	}
}

func (s *loop) navigate(index int) {
	if !s.rotatable() {
		return
	}
	n := len(s.pages)
	s.index = ((index % n) + n) % n
	s.pause()
	s.armCooldown()
}

func (s *loop) pointerEnter() {
	s.hovered = true
	if s.rotatable() {
		s.pause()
	}
}

func (s *loop) pointerLeave() {
	s.hovered = false
	if s.status == Paused {
		s.resume()
	}
}

func (s *loop) touchStart(x float64) {
	s.touching = true
	s.touchStartX = x
	if s.rotatable() {
		s.pause()
		s.armCooldown()
	}
}

// touchEnd resolves a horizontal swipe: dragging left shows the next page,
// dragging right the previous one. Short drags are ignored.
func (s *loop) touchEnd(x float64) {
	if !s.touching {
		return
	}
	s.touching = false

	dx := s.touchStartX - x
	switch {
	case dx > s.cfg.SwipeThreshold:
		s.navigate(s.index + 1)
	case dx < -s.cfg.SwipeThreshold:
		s.navigate(s.index - 1)
	}
}

func (s *loop) onInterval() {
	s.interval = nil
	if s.status != Rotating || !s.rotatable() {
		return
	}
	s.index = (s.index + 1) % len(s.pages)
	s.armInterval()
}

func (s *loop) onCooldown() {
	s.cooldown = nil
	if s.status != Paused || s.hovered {
		return
	}
	s.resume()
}

func (s *loop) pause() {
	if s.status != Paused {
		s.logger.Debug("Rotation paused", "index", s.index)
	}
	s.status = Paused
	s.disarm(&s.interval)
}

func (s *loop) resume() {
	s.status = Rotating
	s.disarm(&s.cooldown)
	s.armInterval()
}

func (s *loop) armInterval() {
	s.disarm(&s.interval)
	s.interval = s.clock.NewTimer(s.cfg.Interval)
}

func (s *loop) armCooldown() {
	s.disarm(&s.cooldown)
	s.cooldown = s.clock.NewTimer(s.cfg.Cooldown)
}

func (s *loop) disarm(t *clockwork.Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

func (s *loop) disarmAll() {
	s.disarm(&s.interval)
	s.disarm(&s.cooldown)
}

func (s *loop) intervalC() <-chan time.Time {
	if s.interval == nil {
		return nil
	}
	return s.interval.Chan()
}

func (s *loop) cooldownC() <-chan time.Time {
	if s.cooldown == nil {
		return nil
	}
	return s.cooldown.Chan()
}

// drainTimers handles timers that already fired so a command never observes
// state older than the clock.
func (s *loop) drainTimers() {
	for {
		select {
		case <-s.intervalC():
			s.onInterval()
		case <-s.cooldownC():
			s.onCooldown()
		default:
			return
		}
	}
}
