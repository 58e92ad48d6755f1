package tetris

import "time"

// Event is emitted by the engine to its listener.
type Event interface {
	event()
}

// LinesClearedEvent is sent when a lock clears one or more rows.
type LinesClearedEvent struct {
	Count int
}

func (LinesClearedEvent) event() {}

// LevelChangedEvent is sent when the level, and with it the drop
// interval, changes.
type LevelChangedEvent struct {
	Level    int
	Interval time.Duration
}

func (LevelChangedEvent) event() {}

// GameOverEvent is sent once when a piece locks before fully entering
// the board.
type GameOverEvent struct {
	Score   int
	Lines   int
	Level   int
	Elapsed time.Duration
}

func (GameOverEvent) event() {}

// Listener receives engine events synchronously, on the caller's goroutine.
type Listener func(Event)
