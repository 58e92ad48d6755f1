package tui

import "github.com/vovakirdan/puzzgame/internal/storage"

// Store is the persistence the game screens use. *storage.Store
// implements it; a nil Store disables saving.
type Store interface {
	Record() (storage.Record, error)
	SetRecord(score int, name string) error
	SaveScore(r storage.GameResult) (int64, error)
	TopScores(limit int) ([]storage.ScoreEntry, error)
	GetStats() (*storage.Stats, error)
}

// AsStore converts a possibly nil *storage.Store into a Store without
// producing a non-nil interface around a nil pointer.
func AsStore(s *storage.Store) Store {
	if s == nil {
		return nil
	}
	return s
}
