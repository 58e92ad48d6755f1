package tetris

import (
	"fmt"
	"time"
)

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// Stopwatch accumulates play time. Stopping freezes the accumulated value;
// starting again continues from it.
type Stopwatch struct {
	clock   Clock
	base    time.Duration // Time accumulated before the current run
	started time.Time
	running bool
}

// NewStopwatch creates a stopped stopwatch reading zero.
func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock()
	}
	return &Stopwatch{clock: clock}
}

// Reset zeroes the stopwatch and stops it.
func (s *Stopwatch) Reset() {
	s.base = 0
	s.running = false
}

// Start begins or continues timing. No-op when already running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.started = s.clock.Now()
	s.running = true
}

// Stop freezes the elapsed value. No-op when already stopped.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.base += s.clock.Now().Sub(s.started)
	s.running = false
}

// Running reports whether time is currently accumulating.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the accumulated time, including the current run.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return s.base
	}
	return s.base + s.clock.Now().Sub(s.started)
}

// FormatElapsed renders a duration as mm:ss.
func FormatElapsed(d time.Duration) string {
	secs := max(int(d/time.Second), 0)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
