// Package busy defers expensive recomputes so the caller can show a
// busy indicator first, and discards results that a newer request has
// superseded.
package busy

import (
	"sync"
	"time"
)

// DefaultDelay is how long the scheduler waits before running the
// compute, giving the indicator a chance to paint.
const DefaultDelay = 50 * time.Millisecond

// Scheduler serializes recomputes of a T. Each Schedule call bumps a
// generation counter; a compute whose generation is stale by delivery
// time is dropped without calling deliver.
type Scheduler[T any] struct {
	mu     sync.Mutex
	gen    uint64
	delay  time.Duration
	onBusy func()
}

// NewScheduler builds a scheduler. onBusy runs synchronously at the
// start of every Schedule call and may be nil.
func NewScheduler[T any](delay time.Duration, onBusy func()) *Scheduler[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Scheduler[T]{delay: delay, onBusy: onBusy}
}

// Schedule runs compute after the delay and hands the result to
// deliver, unless another Schedule call arrived in the meantime.
func (s *Scheduler[T]) Schedule(compute func() T, deliver func(T)) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	if s.onBusy != nil {
		s.onBusy()
	}

	go func() {
		time.Sleep(s.delay)

		s.mu.Lock()
		stale := gen != s.gen
		s.mu.Unlock()
		if stale {
			return
		}

		v := compute()

		s.mu.Lock()
		stale = gen != s.gen
		s.mu.Unlock()
		if stale {
			return
		}
		deliver(v)
	}()
}
