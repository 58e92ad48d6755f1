package tetris

import "time"

// Snapshot is a read-only copy of the engine state, used by renderers and
// for determinism checks.
type Snapshot struct {
	Board    [][]Cell
	Current  Piece
	Next     Piece
	Score    int
	Lines    int
	Level    int
	Interval time.Duration
	Status   Status
	Elapsed  time.Duration
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:    e.board.Cells(),
		Current:  e.current,
		Next:     e.next,
		Score:    e.score,
		Lines:    e.lines,
		Level:    e.level,
		Interval: e.interval,
		Status:   e.status,
		Elapsed:  e.watch.Elapsed(),
	}
}
