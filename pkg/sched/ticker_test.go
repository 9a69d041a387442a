package sched

import (
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTicker_DeliversTicks(t *testing.T) {
	var ticks atomic.Int64

	sub := NewTicker().Every(5*time.Millisecond, func() {
		ticks.Add(1)
	})
	defer sub.Cancel()

	time.Sleep(60 * time.Millisecond)

	if got := ticks.Load(); got < 3 {
		t.Errorf("Expected at least 3 ticks in 60ms, got %d", got)
	}
}

func TestTicker_CancelStopsSynchronously(t *testing.T) {
	var ticks atomic.Int64

	sub := NewTicker().Every(time.Millisecond, func() {
		ticks.Add(1)
	})

	time.Sleep(10 * time.Millisecond)
	sub.Cancel()
	after := ticks.Load()

	// No tick may fire once Cancel has returned
	time.Sleep(20 * time.Millisecond)
	if got := ticks.Load(); got != after {
		t.Errorf("Tick fired after Cancel: %d -> %d", after, got)
	}
}

func TestTicker_CancelIdempotent(t *testing.T) {
	sub := NewTicker().Every(time.Millisecond, func() {})

	sub.Cancel()
	sub.Cancel()
}

func TestTicker_IndependentSubscriptions(t *testing.T) {
	var a, b atomic.Int64

	ticker := NewTicker()
	subA := ticker.Every(2*time.Millisecond, func() { a.Add(1) })
	subB := ticker.Every(2*time.Millisecond, func() { b.Add(1) })

	time.Sleep(10 * time.Millisecond)
	subA.Cancel()
	stoppedA := a.Load()

	time.Sleep(10 * time.Millisecond)
	subB.Cancel()

	if a.Load() != stoppedA {
		t.Error("Cancelled subscription kept ticking")
	}
	if b.Load() <= stoppedA/2 {
		t.Errorf("Surviving subscription should keep ticking: a=%d b=%d", stoppedA, b.Load())
	}
}
