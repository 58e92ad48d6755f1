package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/puzzgame/internal/storage"
	"github.com/vovakirdan/puzzgame/internal/tetris"
)

// fakeStore keeps everything in memory.
type fakeStore struct {
	record  storage.Record
	saved   []storage.GameResult
	records []storage.Record
	scores  []storage.ScoreEntry
	failAll bool
}

var errStoreDown = errors.New("store down")

func newFakeStore() *fakeStore {
	return &fakeStore{record: storage.Record{Name: storage.NoHolder}}
}

func (f *fakeStore) Record() (storage.Record, error) {
	if f.failAll {
		return storage.Record{}, errStoreDown
	}
	return f.record, nil
}

func (f *fakeStore) SetRecord(score int, name string) error {
	if f.failAll {
		return errStoreDown
	}
	if score <= f.record.Score && f.record.Name != storage.NoHolder {
		return nil
	}
	f.record = storage.Record{Score: score, Name: name}
	f.records = append(f.records, f.record)
	return nil
}

func (f *fakeStore) SaveScore(r storage.GameResult) (int64, error) {
	if f.failAll {
		return 0, errStoreDown
	}
	f.saved = append(f.saved, r)
	return int64(len(f.saved)), nil
}

func (f *fakeStore) TopScores(limit int) ([]storage.ScoreEntry, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	if len(f.scores) > limit {
		return f.scores[:limit], nil
	}
	return f.scores, nil
}

func (f *fakeStore) GetStats() (*storage.Stats, error) {
	if f.failAll {
		return nil, errStoreDown
	}
	return &storage.Stats{GamesCount: len(f.scores)}, nil
}

func newTestModel(t *testing.T, store Store) Model {
	t.Helper()
	m := NewModel(Options{
		Rules:  tetris.DefaultRules(),
		Seed:   7,
		Player: "ana",
		Store:  store,
		Width:  80,
		Height: 30,
	})
	cmd := m.Init()
	require.NotNil(t, cmd, "Init should start the tick stream")
	return m
}

// send feeds one message through Update and returns the new model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok, "Update returned %T", updated)
	return next, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
