package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/puzzgame/internal/storage"
	"github.com/vovakirdan/puzzgame/internal/tetris"
)

func TestModelInitStartsGame(t *testing.T) {
	m := newTestModel(t, nil)

	assert.True(t, m.Engine().Running())
	assert.True(t, m.sched.Armed())
	assert.Equal(t, 700*time.Millisecond, m.sched.Interval())
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t, nil)
	y := m.Engine().Current().Y

	m, cmd := send(t, m, TickMsg{Gen: m.sched.Generation()})

	assert.Equal(t, y+1, m.Engine().Current().Y)
	assert.NotNil(t, cmd, "a current tick re-issues the stream")
}

func TestModelDropsStaleTick(t *testing.T) {
	m := newTestModel(t, nil)
	stale := m.sched.Generation()

	m, _ = send(t, m, runeKey('r'))
	require.NotEqual(t, stale, m.sched.Generation())
	y := m.Engine().Current().Y

	m, cmd := send(t, m, TickMsg{Gen: stale})

	assert.Equal(t, y, m.Engine().Current().Y)
	assert.Nil(t, cmd)
}

func TestModelPauseResume(t *testing.T) {
	m := newTestModel(t, nil)
	before := m.sched.Generation()

	m, cmd := send(t, m, runeKey('p'))
	assert.True(t, m.Engine().Paused())
	assert.False(t, m.sched.Armed())
	assert.Nil(t, cmd, "no ticks while paused")

	y := m.Engine().Current().Y
	m, _ = send(t, m, TickMsg{Gen: before})
	assert.Equal(t, y, m.Engine().Current().Y)

	m, cmd = send(t, m, runeKey('p'))
	assert.True(t, m.Engine().Running())
	assert.NotNil(t, cmd, "resume starts a new tick stream")
	assert.NotEqual(t, before, m.sched.Generation())
}

func TestModelMovesPiece(t *testing.T) {
	m := newTestModel(t, nil)
	x := m.Engine().Current().X

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, x-1, m.Engine().Current().X)
	assert.Nil(t, cmd, "moves do not restart the tick stream")

	m, _ = send(t, m, runeKey('d'))
	assert.Equal(t, x, m.Engine().Current().X)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(t, m, runeKey('q'))

	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelGameOverSavesScore(t *testing.T) {
	store := newFakeStore()
	m := newTestModel(t, store)

	for i := 0; i < 5000 && !m.Engine().GameOver(); i++ {
		m, _ = send(t, m, TickMsg{Gen: m.sched.Generation()})
	}
	require.True(t, m.Engine().GameOver())

	require.Len(t, store.saved, 1)
	saved := store.saved[0]
	assert.Equal(t, "ana", saved.Player)
	assert.Equal(t, m.Engine().Score(), saved.Score)
	assert.Equal(t, m.sessionID, saved.SessionID)
	assert.Equal(t, modePlaying, m.mode, "a zero score does not beat an empty record")
	assert.False(t, m.sched.Armed())
}

func TestModelNewRecordDialog(t *testing.T) {
	store := newFakeStore()
	store.record = storage.Record{Score: 20, Name: "bob"}
	m := newTestModel(t, store)
	require.Equal(t, 20, m.Record().Score)

	m.finishGame(tetris.GameOverEvent{Score: 50, Lines: 5, Level: 1})

	require.Equal(t, modeNewRecord, m.mode)
	assert.Equal(t, "ana", m.nameInput.Value())
	assert.Contains(t, m.View(), "NEW RECORD!")

	// Keys go to the name input, not the game.
	m, _ = send(t, m, runeKey('q'))
	assert.False(t, m.IsQuitting())
	assert.Equal(t, "anaq", m.nameInput.Value())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modePlaying, m.mode)
	require.Len(t, store.records, 1)
	assert.Equal(t, storage.Record{Score: 50, Name: "ana"}, store.records[0])
	assert.Equal(t, 50, m.Record().Score)
	assert.Equal(t, "ana", m.Record().Name)
}

func TestModelNewRecordBlankName(t *testing.T) {
	store := newFakeStore()
	m := newTestModel(t, store)
	m.finishGame(tetris.GameOverEvent{Score: 30})
	m.nameInput.SetValue("   ")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, store.records, 1)
	assert.Equal(t, "ana", store.records[0].Name)
}

func TestModelNewRecordSkipped(t *testing.T) {
	store := newFakeStore()
	m := newTestModel(t, store)
	m.finishGame(tetris.GameOverEvent{Score: 30})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modePlaying, m.mode)
	assert.Empty(t, store.records)
	assert.Equal(t, 0, m.Record().Score)
}

func TestModelRecordWithoutStore(t *testing.T) {
	m := newTestModel(t, nil)
	m.finishGame(tetris.GameOverEvent{Score: 10})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, storage.Record{Score: 10, Name: "ana"}, m.Record())
}

func TestModelStoreFailuresAreNotFatal(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	m := newTestModel(t, store)

	m.finishGame(tetris.GameOverEvent{Score: 10})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modePlaying, m.mode)
	assert.False(t, m.IsQuitting())
}

func TestModelScoreboard(t *testing.T) {
	store := newFakeStore()
	m := newTestModel(t, store)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, modeScoreboard, m.mode)
	assert.True(t, m.Engine().Paused())
	assert.Contains(t, m.View(), "HIGH SCORES")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, modePlaying, m.mode)
	assert.False(t, m.IsQuitting())
	assert.Nil(t, cmd)
	assert.True(t, m.Engine().Paused(), "the game stays paused until p")
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 40-footerLines, m.screen.Height())
}

func TestModelView(t *testing.T) {
	store := newFakeStore()
	store.record = storage.Record{Score: 120, Name: "bob"}
	m := newTestModel(t, store)

	view := m.View()

	assert.Contains(t, view, "SCORE")
	assert.Contains(t, view, "NEXT")
	assert.Contains(t, view, "120 (bob)")
	assert.Contains(t, view, "ana")
}

func TestAsStoreNil(t *testing.T) {
	var s *storage.Store
	assert.Nil(t, AsStore(s))
}

func TestModelSharedStoreRecordNotLowered(t *testing.T) {
	store := newFakeStore()
	a := newTestModel(t, store)
	b := newTestModel(t, store)

	a.finishGame(tetris.GameOverEvent{Score: 100})
	require.Equal(t, modeNewRecord, a.mode)
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 100, store.record.Score)
	require.Equal(t, 100, a.Record().Score)

	// b loaded the empty record before a saved.
	b.finishGame(tetris.GameOverEvent{Score: 40})

	assert.Equal(t, modePlaying, b.mode, "40 does not beat the shared record")
	assert.Equal(t, storage.Record{Score: 100, Name: "ana"}, b.Record())
	assert.Equal(t, 100, store.record.Score)
	assert.Len(t, store.saved, 2, "both games are still saved")
}

func TestModelLateRecordSaveKeepsHigher(t *testing.T) {
	store := newFakeStore()
	a := newTestModel(t, store)
	b := newTestModel(t, store)

	// b opens its dialog first, then a beats it before b confirms.
	b.finishGame(tetris.GameOverEvent{Score: 40})
	require.Equal(t, modeNewRecord, b.mode)
	a.finishGame(tetris.GameOverEvent{Score: 100})
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 100, a.Record().Score)

	b, _ = send(t, b, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 100, store.record.Score)
	assert.Equal(t, 100, b.Record().Score, "b shows the record that survived")
	assert.Equal(t, modePlaying, b.mode)
}
