package core

import (
	"sync"
	"time"
)

// Clock arranges for f to run once after d has elapsed.
type Clock interface {
	AfterFunc(d time.Duration, f func())
}

// RealClock schedules callbacks with time.AfterFunc.
type RealClock struct{}

// AfterFunc implements Clock.
func (RealClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// ManualClock queues callbacks until Fire is called. It lets tests drive a
// Scheduler one wake at a time.
type ManualClock struct {
	mu      sync.Mutex
	pending []manualTimer
}

type manualTimer struct {
	delay time.Duration
	f     func()
}

// AfterFunc implements Clock.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) {
	c.mu.Lock()
	c.pending = append(c.pending, manualTimer{delay: d, f: f})
	c.mu.Unlock()
}

// Pending reports how many callbacks are waiting.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Delays returns the requested delay of each waiting callback, oldest first.
func (c *ManualClock) Delays() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.pending))
	for i, p := range c.pending {
		out[i] = p.delay
	}
	return out
}

// Fire runs the oldest waiting callback. It reports false when none is queued.
func (c *ManualClock) Fire() bool {
	c.mu.Lock()
	if len(c.pending) == 0 {
		c.mu.Unlock()
		return false
	}
	next := c.pending[0]
	c.pending = c.pending[1:]
	c.mu.Unlock()
	next.f()
	return true
}
