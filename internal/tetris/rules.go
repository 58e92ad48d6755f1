package tetris

import (
	"time"

	"github.com/vovakirdan/puzzgame/internal/core"
)

// Default rule values.
const (
	DefaultCols          = 12
	DefaultRows          = 24
	DefaultDropMsStart   = 700
	DefaultLinesPerLevel = 10
	DefaultSpeedStepMs   = 70
	DefaultFloorMs       = 120
)

// Rules holds the tunable constants of a game.
type Rules struct {
	Cols          int
	Rows          int
	DropMsStart   int   // Drop interval at level 1
	SpeedStepMs   int   // Interval reduction per level
	FloorMs       int   // Fastest allowed interval
	LinesPerLevel int   // Lines needed to advance one level
	LinePoints    []int // Points for clearing 1, 2, 3, 4+ lines in one lock
	Palette       []core.Color
}

// DefaultRules returns the classic 12×24 rule set.
func DefaultRules() Rules {
	return Rules{
		Cols:          DefaultCols,
		Rows:          DefaultRows,
		DropMsStart:   DefaultDropMsStart,
		SpeedStepMs:   DefaultSpeedStepMs,
		FloorMs:       DefaultFloorMs,
		LinesPerLevel: DefaultLinesPerLevel,
		LinePoints:    []int{10, 20, 30, 40},
		Palette:       DefaultPalette,
	}
}

// Normalize clamps malformed values into a playable rule set.
func (r Rules) Normalize() Rules {
	d := DefaultRules()
	if r.Cols < 4 {
		r.Cols = d.Cols
	}
	if r.Rows < 4 {
		r.Rows = d.Rows
	}
	if r.DropMsStart <= 0 {
		r.DropMsStart = d.DropMsStart
	}
	if r.SpeedStepMs < 0 {
		r.SpeedStepMs = 0
	}
	if r.FloorMs < 1 {
		r.FloorMs = 1
	}
	if r.FloorMs > r.DropMsStart {
		r.FloorMs = r.DropMsStart
	}
	if r.LinesPerLevel <= 0 {
		r.LinesPerLevel = d.LinesPerLevel
	}
	if len(r.LinePoints) == 0 {
		r.LinePoints = d.LinePoints
	} else {
		points := make([]int, len(r.LinePoints))
		for i, p := range r.LinePoints {
			points[i] = max(p, 0)
		}
		r.LinePoints = points
	}
	if len(r.Palette) == 0 {
		r.Palette = d.Palette
	}
	return r
}

// LevelFor returns floor(lines/LinesPerLevel)+1. Negative counts are level 1.
func (r Rules) LevelFor(lines int) int {
	per := r.LinesPerLevel
	if per <= 0 {
		per = DefaultLinesPerLevel
	}
	if lines < 0 {
		lines = 0
	}
	return lines/per + 1
}

// DropInterval returns max(FloorMs, DropMsStart-(level-1)*SpeedStepMs).
func (r Rules) DropInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := max(r.FloorMs, r.DropMsStart-(level-1)*r.SpeedStepMs)
	return time.Duration(ms) * time.Millisecond
}

// PointsFor returns the score awarded for clearing n lines in one lock.
// Counts beyond the table use its last entry.
func (r Rules) PointsFor(n int) int {
	if n <= 0 || len(r.LinePoints) == 0 {
		return 0
	}
	return r.LinePoints[min(n, len(r.LinePoints))-1]
}
