package tetris

import (
	"math/rand"
	"time"
)

// Status is the engine's state machine position.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// kicks are the horizontal offsets tried, in order, when rotating.
var kicks = []int{0, -1, 1, -2, 2}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the randomness source used for spawning.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed seeds a private math/rand source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScheduler sets the tick scheduler the engine arms and cancels.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		e.sched = s
	}
}

// WithClock sets the clock used for elapsed-time accounting.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithListener registers the event listener.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listener = l
	}
}

// Engine owns the complete state of one play session. It is not safe for
// concurrent use; drivers must serialize ticks and commands.
type Engine struct {
	rules    Rules
	rng      Rand
	sched    Scheduler
	clock    Clock
	watch    *Stopwatch
	listener Listener

	board    *Board
	current  Piece
	next     Piece
	score    int
	lines    int
	level    int
	interval time.Duration
	status   Status
}

// New creates an engine in the NotStarted state. Rules are normalized.
func New(rules Rules, opts ...Option) *Engine {
	rules = rules.Normalize()
	e := &Engine{
		rules: rules,
		sched: nopScheduler{},
		clock: SystemClock(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.sched == nil {
		e.sched = nopScheduler{}
	}
	e.watch = NewStopwatch(e.clock)
	e.board = NewBoard(rules.Cols, rules.Rows)
	e.level = 1
	e.interval = rules.DropInterval(1)
	return e
}

// NewGame cancels any pending tick and starts a fresh session.
func (e *Engine) NewGame() {
	e.sched.Cancel()

	e.board.Reset()
	e.score = 0
	e.lines = 0
	e.level = 1
	e.interval = e.rules.DropInterval(1)
	e.current = e.spawn()
	e.next = e.spawn()

	e.watch.Reset()
	e.watch.Start()
	e.status = StatusRunning
	e.sched.Arm(e.interval)
}

func (e *Engine) spawn() Piece {
	return Spawn(e.rng, e.rules.Cols, e.rules.Palette)
}

// AdvanceTick moves the current piece down one row, or locks it when it
// cannot descend. A piece that locks while its top is still above the
// board ends the game. No-op unless running.
func (e *Engine) AdvanceTick() {
	if e.status != StatusRunning {
		return
	}

	if !e.board.Collides(e.current, 0, 1) {
		e.current.Y++
		return
	}

	if e.current.Y < 0 {
		e.endGame()
		return
	}

	e.board.Merge(e.current)
	if cleared := e.board.ClearFullLines(); cleared > 0 {
		e.applyClear(cleared)
	}

	e.current = e.next
	e.next = e.spawn()
}

func (e *Engine) applyClear(n int) {
	e.score += e.rules.PointsFor(n)
	e.lines += n
	e.emit(LinesClearedEvent{Count: n})

	level := e.rules.LevelFor(e.lines)
	if level == e.level {
		return
	}
	e.level = level
	e.interval = e.rules.DropInterval(level)
	e.sched.Arm(e.interval)
	e.emit(LevelChangedEvent{Level: level, Interval: e.interval})
}

func (e *Engine) endGame() {
	e.status = StatusGameOver
	e.sched.Cancel()
	e.watch.Stop()
	e.emit(GameOverEvent{
		Score:   e.score,
		Lines:   e.lines,
		Level:   e.level,
		Elapsed: e.watch.Elapsed(),
	})
}

func (e *Engine) emit(ev Event) {
	if e.listener != nil {
		e.listener(ev)
	}
}

// RotateCurrent turns the current piece clockwise, trying the kick offsets
// in order. Returns false and leaves the piece unchanged if none fit.
func (e *Engine) RotateCurrent() bool {
	if e.status != StatusRunning {
		return false
	}
	rotated := e.current.Shape.Rotate()
	for _, k := range kicks {
		if !e.board.CollidesShape(e.current, k, 0, rotated) {
			e.current.Shape = rotated
			e.current.X += k
			return true
		}
	}
	return false
}

// MoveCurrent shifts the current piece by (dx, dy) if the target is free.
func (e *Engine) MoveCurrent(dx, dy int) bool {
	if e.status != StatusRunning {
		return false
	}
	if e.board.Collides(e.current, dx, dy) {
		return false
	}
	e.current.X += dx
	e.current.Y += dy
	return true
}

// Pause cancels the scheduler and freezes the stopwatch.
func (e *Engine) Pause() {
	if e.status != StatusRunning {
		return
	}
	e.status = StatusPaused
	e.sched.Cancel()
	e.watch.Stop()
}

// Resume re-arms the scheduler at the current interval and continues the
// stopwatch from its frozen value.
func (e *Engine) Resume() {
	if e.status != StatusPaused {
		return
	}
	e.status = StatusRunning
	e.watch.Start()
	e.sched.Arm(e.interval)
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() {
	switch e.status {
	case StatusRunning:
		e.Pause()
	case StatusPaused:
		e.Resume()
	}
}

// Rules returns the normalized rules in effect.
func (e *Engine) Rules() Rules { return e.rules }

// Board returns a copy of the grid, indexed [row][col].
func (e *Engine) Board() [][]Cell { return e.board.Cells() }

// Current returns the falling piece.
func (e *Engine) Current() Piece { return e.current }

// Next returns the preview piece.
func (e *Engine) Next() Piece { return e.next }

// Score returns the running score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total number of cleared lines.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Interval returns the current drop interval.
func (e *Engine) Interval() time.Duration { return e.interval }

// Status returns the state machine position.
func (e *Engine) Status() Status { return e.status }

// Running reports whether ticks are being applied.
func (e *Engine) Running() bool { return e.status == StatusRunning }

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool { return e.status == StatusPaused }

// GameOver reports whether the session has ended.
func (e *Engine) GameOver() bool { return e.status == StatusGameOver }

// Elapsed returns play time, excluding paused periods.
func (e *Engine) Elapsed() time.Duration { return e.watch.Elapsed() }
