package tetris

import "time"

// Scheduler periodically triggers the engine's advance step.
// Arm cancels any running period and starts a new one that first fires
// one interval from now. Cancel stops it until the next Arm.
type Scheduler interface {
	Arm(interval time.Duration)
	Cancel()
}

type nopScheduler struct{}

func (nopScheduler) Arm(time.Duration) {}
func (nopScheduler) Cancel()           {}

// TickScheduler is a scheduler handle for event-loop drivers that deliver
// ticks as messages. Every Arm or Cancel bumps the generation, so a tick
// that was scheduled under an older generation can be recognised and
// dropped.
type TickScheduler struct {
	gen      uint64
	interval time.Duration
	armed    bool
}

// NewTickScheduler returns a disarmed scheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// Arm replaces the current period with a new one.
func (s *TickScheduler) Arm(interval time.Duration) {
	s.gen++
	s.interval = interval
	s.armed = true
}

// Cancel invalidates the current period.
func (s *TickScheduler) Cancel() {
	s.gen++
	s.armed = false
}

// Armed reports whether a period is active.
func (s *TickScheduler) Armed() bool {
	return s.armed
}

// Generation identifies the active period.
func (s *TickScheduler) Generation() uint64 {
	return s.gen
}

// Interval returns the period of the last Arm.
func (s *TickScheduler) Interval() time.Duration {
	return s.interval
}

// Current reports whether a tick from generation gen should still fire.
func (s *TickScheduler) Current(gen uint64) bool {
	return s.armed && gen == s.gen
}

// Ticker is the subset of time.Ticker the real-time scheduler needs.
type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

// NewTicker returns a stopped Ticker backed by time.Ticker.
func NewTicker() Ticker {
	t := time.NewTicker(time.Hour)
	t.Stop()
	return &wrappedTicker{ticker: t}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// TickerScheduler arms and cancels a Ticker.
type TickerScheduler struct {
	ticker Ticker
}

// NewTickerScheduler wraps a ticker.
func NewTickerScheduler(t Ticker) *TickerScheduler {
	return &TickerScheduler{ticker: t}
}

// Arm restarts the ticker at the new interval.
func (s *TickerScheduler) Arm(interval time.Duration) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	s.ticker.Reset(interval)
}

// Cancel stops the ticker.
func (s *TickerScheduler) Cancel() {
	s.ticker.Stop()
}
