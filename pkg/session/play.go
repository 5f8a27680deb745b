package session

import (
	"context"
	"time"
)

// Clock creates the ticker that drives a headless animation.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock returns a Clock backed by time.Ticker.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

type systemTicker struct{ t *time.Ticker }

func (t systemTicker) C() <-chan time.Time { return t.t.C }
func (t systemTicker) Stop()               { t.t.Stop() }

// Play drives the current animation to completion with a single ticker
// from clock, one step per Interval.
//
// It returns nil when the run completes, or immediately if nothing is
// running. If ctx is done first the animation is canceled, keeping the
// highlights applied so far, and ctx.Err() is returned.
func (s *Session) Play(ctx context.Context, clock Clock) error {
	if !s.anim.Running() {
		return nil
	}
	run := s.anim.CurrentRun()

	ticker := clock.NewTicker(s.anim.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Cancel()
			return ctx.Err()
		case <-ticker.C():
			if !s.Tick(run) {
				return nil
			}
		}
	}
}
