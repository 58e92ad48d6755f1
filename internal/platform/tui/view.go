package tui

import (
	"fmt"

	"github.com/vovakirdan/puzzgame/internal/core"
	"github.com/vovakirdan/puzzgame/internal/storage"
	"github.com/vovakirdan/puzzgame/internal/tetris"
)

// Layout constants
const (
	cellWidth    = 2  // Screen columns per board cell
	sidebarWidth = 20 // Width of the HUD column
	sidebarGap   = 2
	previewCells = 4  // Widest tetromino
	sidebarRows  = 23 // Labels plus the next-piece box
)

const (
	blockRune = '█'
	emptyRune = '·'
)

// hud carries the values shown next to the board that the engine does
// not own.
type hud struct {
	player    string
	record    storage.Record
	newRecord bool
}

// gameSize returns the screen area needed to draw a board.
func gameSize(cols, rows int) (w, h int) {
	return cols*cellWidth + 2 + sidebarGap + sidebarWidth, max(rows+2, sidebarRows)
}

// drawGame renders the board, the falling piece, the HUD and any overlay.
func drawGame(s *core.Screen, snap tetris.Snapshot, h hud) {
	rows := len(snap.Board)
	cols := 0
	if rows > 0 {
		cols = len(snap.Board[0])
	}

	needW, needH := gameSize(cols, rows)
	if s.Width() < needW || s.Height() < needH {
		s.DrawTextCentered(s.Height()/2-1, "Terminal too small")
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, s.Width(), s.Height()))
		return
	}

	ox := (s.Width() - needW) / 2
	oy := (s.Height() - needH) / 2
	board := core.NewRect(ox, oy, cols*cellWidth+2, rows+2)

	drawBoard(s, board, snap)
	drawSidebar(s, board.Right()+sidebarGap, oy, snap, h)

	switch {
	case h.newRecord:
		drawOverlay(s, board, "NEW RECORD!", "enter your name")
	case snap.Status == tetris.StatusGameOver:
		drawOverlay(s, board, "GAME OVER", "time "+tetris.FormatElapsed(snap.Elapsed), "r to restart")
	case snap.Status == tetris.StatusPaused:
		drawOverlay(s, board, "PAUSED", "p to resume")
	}
}

func drawBoard(s *core.Screen, r core.Rect, snap tetris.Snapshot) {
	s.DrawBox(r, core.ColorGray)
	in := r.Inner()

	for y, row := range snap.Board {
		for x, c := range row {
			if c == tetris.Empty {
				s.SetColor(in.X+x*cellWidth, in.Y+y, emptyRune, core.ColorGray)
				s.Set(in.X+x*cellWidth+1, in.Y+y, ' ')
				continue
			}
			drawBlock(s, in.X+x*cellWidth, in.Y+y, c)
		}
	}

	if snap.Status == tetris.StatusNotStarted {
		return
	}
	for _, cell := range snap.Current.Cells() {
		if cell[1] < 0 {
			continue
		}
		drawBlock(s, in.X+cell[0]*cellWidth, in.Y+cell[1], snap.Current.Color)
	}
}

func drawBlock(s *core.Screen, x, y int, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		s.SetColor(x+i, y, blockRune, c)
	}
}

func drawSidebar(s *core.Screen, x, y int, snap tetris.Snapshot, h hud) {
	label := func(row int, name, value string) {
		s.DrawTextColor(x, y+row, name, core.ColorGray)
		s.DrawTextColor(x, y+row+1, value, core.ColorBrightWhite)
	}

	label(0, "SCORE", fmt.Sprintf("%d", snap.Score))
	label(3, "LINES", fmt.Sprintf("%d", snap.Lines))
	label(6, "LEVEL", fmt.Sprintf("%d", snap.Level))
	label(9, "TIME", tetris.FormatElapsed(snap.Elapsed))
	label(12, "RECORD", fmt.Sprintf("%d (%s)", h.record.Score, clip(h.record.Name, sidebarWidth-8)))
	label(15, "PLAYER", clip(h.player, sidebarWidth))

	s.DrawTextColor(x, y+18, "NEXT", core.ColorGray)
	preview := core.NewRect(x, y+19, previewCells*cellWidth+2, 4)
	s.DrawBox(preview, core.ColorGray)
	if snap.Status == tetris.StatusNotStarted {
		return
	}
	in := preview.Inner()
	next := snap.Next
	next.Shape.Each(func(cx, cy int) {
		drawBlock(s, in.X+cx*cellWidth, in.Y+cy, next.Color)
	})
}

// drawOverlay writes centered lines in the middle of the board.
func drawOverlay(s *core.Screen, board core.Rect, lines ...string) {
	top := board.Y + board.H/2 - len(lines)/2
	for i, line := range lines {
		s.DrawTextCenteredIn(board, top+i, " "+line+" ", core.ColorBrightYellow)
	}
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "."
}
