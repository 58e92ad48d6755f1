package tetris

import (
	"sync"
	"time"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// scriptRand returns values from a fixed script, modulo n.
type scriptRand struct {
	values []int
	i      int
}

func (r *scriptRand) Intn(n int) int {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v % n
}

// recordingScheduler remembers every Arm and Cancel in order.
type recordingScheduler struct {
	ops   []string
	arms  []time.Duration
	armed bool
}

func (s *recordingScheduler) Arm(d time.Duration) {
	s.ops = append(s.ops, "arm")
	s.arms = append(s.arms, d)
	s.armed = true
}

func (s *recordingScheduler) Cancel() {
	s.ops = append(s.ops, "cancel")
	s.armed = false
}

func (s *recordingScheduler) lastArm() time.Duration {
	if len(s.arms) == 0 {
		return 0
	}
	return s.arms[len(s.arms)-1]
}

// mockTicker is a Ticker fed by hand.
type mockTicker struct {
	ch     chan time.Time
	mu     sync.Mutex
	resets []time.Duration
	stops  int
}

func newMockTicker() *mockTicker          { return &mockTicker{ch: make(chan time.Time)} }
func (m *mockTicker) C() <-chan time.Time { return m.ch }

func (m *mockTicker) Reset(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, d)
}

func (m *mockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops++
}

func (m *mockTicker) resetCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.resets)
}

func (m *mockTicker) stopCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}

// fillRow occupies every column of row y except those listed.
func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < b.Cols(); x++ {
		if !skip[x] {
			b.Set(x, y, DefaultPalette[0])
		}
	}
}

// newTestEngine returns a started engine with a fake clock and a
// recording scheduler.
func newTestEngine(opts ...Option) (*Engine, *fakeClock, *recordingScheduler) {
	clock := newFakeClock()
	sched := &recordingScheduler{}
	base := []Option{WithSeed(1), WithClock(clock), WithScheduler(sched)}
	e := New(DefaultRules(), append(base, opts...)...)
	e.NewGame()
	return e, clock, sched
}
