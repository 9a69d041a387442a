// Package sched provides the production Scheduler for the focus
// controller: recurring ticks delivered from one goroutine per
// subscription, with synchronous cancellation so teardown can rely on
// no callback firing after Cancel returns.
package sched

import (
	"sync"
	"time"

	"github.com/teslashibe/go-arfocus/pkg/focus"
)

// Ticker implements focus.Scheduler over time.Ticker.
type Ticker struct{}

// NewTicker creates a ticker-backed scheduler.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Every starts a goroutine invoking fn at the given interval. All
// invocations happen on that goroutine, satisfying the controller's
// single-context requirement.
func (t *Ticker) Every(interval time.Duration, fn func()) focus.Subscription {
	s := &subscription{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				// Re-check so a tick racing Cancel is dropped
				select {
				case <-s.stop:
					return
				default:
				}
				fn()
			}
		}
	}()

	return s
}

// subscription is one recurring tick loop.
type subscription struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Cancel stops the tick loop and blocks until it has exited. After
// Cancel returns the callback will not run again. Safe to call more
// than once.
func (s *subscription) Cancel() {
	s.once.Do(func() {
		close(s.stop)
	})
	<-s.done
}
