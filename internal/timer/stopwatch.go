// Package timer provides the stopwatch state machine and cancellable interval
// handles used by the interactive screen.
package timer

import "time"

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Stopwatch accumulates elapsed whole seconds across start/stop cycles.
// It is not safe for concurrent use; the interactive screen drives it from a
// single event loop.
type Stopwatch struct {
	clock     Clock
	running   bool
	startedAt time.Time
	elapsed   time.Duration
}

// NewStopwatch creates a stopped stopwatch at zero.
func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock}
}

// Start begins or resumes measuring. Starting a running stopwatch is a no-op.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.startedAt = s.clock.Now()
}

// Stop pauses measuring, retaining the accumulated time. Stopping a stopped
// stopwatch is a no-op.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed += s.clock.Now().Sub(s.startedAt)
	s.running = false
}

// Reset stops the stopwatch and clears the accumulated time.
func (s *Stopwatch) Reset() {
	s.running = false
	s.elapsed = 0
}

// Running reports whether the stopwatch is currently measuring.
func (s *Stopwatch) Running() bool {
	return s.running
}

// ElapsedSeconds returns the accumulated time in whole seconds, including the
// in-flight segment when running.
func (s *Stopwatch) ElapsedSeconds() int {
	elapsed := s.elapsed
	if s.running {
		elapsed += s.clock.Now().Sub(s.startedAt)
	}
	return int(elapsed / time.Second)
}
