package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	petname "github.com/dustinkirkland/golang-petname"

	"github.com/vovakirdan/puzzgame/internal/config"
	"github.com/vovakirdan/puzzgame/internal/storage"
	"github.com/vovakirdan/puzzgame/internal/tetris"
)

// loadRules resolves the game rules from --config and --difficulty.
func loadRules() (tetris.Rules, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return tetris.Rules{}, err
	}
	return config.Load(flagConfig, preset)
}

// resolvePlayer returns the player name: --name if given (and saved),
// else the saved name, else a generated one that is saved for next time.
func resolvePlayer(store *storage.Store) string {
	name := strings.TrimSpace(flagName)
	if name == "" && store != nil {
		if saved, err := store.PlayerName(); err == nil {
			name = saved
		}
	}
	if name == "" {
		name = petname.Generate(2, "-")
	}
	if store != nil {
		//nolint:errcheck // Best-effort, the name is only a convenience
		store.SetPlayerName(name)
	}
	return name
}

// openFileLogger opens a logger writing to path. The returned close
// function must be called when done.
func openFileLogger(path string, level log.Level) (*log.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "puzzgame",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
