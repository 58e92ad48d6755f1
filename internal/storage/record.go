package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// NoHolder is the holder name shown when no record exists.
const NoHolder = "-"

// Record is the best score ever achieved and who achieved it.
type Record struct {
	Score     int
	Name      string
	UpdatedAt time.Time
}

// Record returns the stored record. When none exists it returns
// Record{Score: 0, Name: NoHolder} and no error.
func (s *Store) Record() (Record, error) {
	var r Record
	var updatedAt any
	err := s.db.QueryRow(`SELECT score, name, updated_at FROM records WHERE id = 1`).
		Scan(&r.Score, &r.Name, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{Name: NoHolder}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("storage: cannot query record: %w", err)
	}
	r.UpdatedAt = parseTime(updatedAt)
	return r, nil
}

// SetRecord stores score as the record when it beats the current one.
// A lower or equal score leaves the record untouched, so sessions sharing
// a database cannot lower it. A blank name is stored as NoHolder.
func (s *Store) SetRecord(score int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = NoHolder
	}
	_, err := s.db.Exec(
		`INSERT INTO records (id, score, name, updated_at) VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, name = excluded.name, updated_at = excluded.updated_at
		 WHERE excluded.score > records.score`,
		score, name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save record: %w", err)
	}
	return nil
}

// ResetRecord deletes the record.
func (s *Store) ResetRecord() error {
	if _, err := s.db.Exec(`DELETE FROM records`); err != nil {
		return fmt.Errorf("storage: cannot reset record: %w", err)
	}
	return nil
}

const settingPlayerName = "player_name"

// Setting returns a stored setting, or "" when unset.
func (s *Store) Setting(key string) (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE name = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return v, nil
}

// SetSetting stores a setting, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}

// PlayerName returns the saved player name, or "" when none is saved.
func (s *Store) PlayerName() (string, error) {
	return s.Setting(settingPlayerName)
}

// SetPlayerName saves the player name.
func (s *Store) SetPlayerName(name string) error {
	return s.SetSetting(settingPlayerName, strings.TrimSpace(name))
}
