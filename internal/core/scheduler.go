package core

import (
	"sync"
	"time"
)

// Scheduler repeatedly invokes a tick function while running. Each tick
// re-arms a one-shot timer using the speed current at that moment, so speed
// changes apply from the following wake. Stop does not cancel the pending
// timer; the wake observes the idle state and does nothing.
type Scheduler struct {
	mu      sync.Mutex
	clock   Clock
	tick    func()
	speed   time.Duration
	running bool

	// epoch identifies the current run. Wakes armed by an earlier run are
	// dropped so a quick stop/start never leaves two loops alive.
	epoch uint64
	ticks uint64
}

// NewScheduler returns an idle scheduler. A nil clock uses RealClock.
func NewScheduler(clock Clock, speed time.Duration, tick func()) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &Scheduler{clock: clock, tick: tick, speed: speed}
}

// Start switches to running, ticks once synchronously and arms the next wake.
// It reports false and does nothing when already running.
func (s *Scheduler) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	s.epoch++
	s.tickLocked(s.epoch)
	return true
}

// Stop switches to idle. It reports false when already idle. Once Stop
// returns no further tick runs until the next Start.
func (s *Scheduler) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return false
	}
	s.running = false
	return true
}

// Running reports whether the scheduler is stepping.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SetSpeed changes the delay used when arming the next wake.
func (s *Scheduler) SetSpeed(d time.Duration) {
	s.mu.Lock()
	s.speed = d
	s.mu.Unlock()
}

// Speed returns the current delay between ticks.
func (s *Scheduler) Speed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// Ticks returns how many ticks have run in total.
func (s *Scheduler) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

func (s *Scheduler) wake(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || epoch != s.epoch {
		return
	}
	s.tickLocked(epoch)
}

func (s *Scheduler) tickLocked(epoch uint64) {
	if s.tick != nil {
		s.tick()
	}
	s.ticks++
	s.clock.AfterFunc(s.speed, func() { s.wake(epoch) })
}
