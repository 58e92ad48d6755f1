// Package tui provides the Bubble Tea integration for puzzgame.
// It handles the terminal UI loop, input mapping, rendering and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an engine advance step. Gen is the scheduler
// generation the tick was armed under; ticks from older generations are
// dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that delivers one tick for the
// given generation after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
