package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/puzzgame/internal/core"
	"github.com/vovakirdan/puzzgame/internal/platform/tui"
	"github.com/vovakirdan/puzzgame/internal/storage"
)

var (
	flagLogFile string
	flagVerbose bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Left/Right (A/D)  - Move
  Down (S)          - Soft drop one row
  Up/Space (W)      - Rotate
  P                 - Pause / resume
  R                 - Restart
  Tab               - Scoreboard
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower start, gentler speed-up
  normal - 700ms start, 70ms faster per level
  hard   - Faster start, steeper speed-up
  fixed  - No speed-up

Examples:
  puzzgame play
  puzzgame play --difficulty easy
  puzzgame play --name Ana
  puzzgame play --config ./my-puzzgame.yaml --log-file game.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
	playCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every line clear")
}

func runPlay(_ *cobra.Command, _ []string) {
	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var logger *log.Logger
	if flagLogFile != "" {
		level := log.InfoLevel
		if flagVerbose {
			level = log.DebugLevel
		}
		var closeLog func()
		logger, closeLog, err = openFileLogger(flagLogFile, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closeLog()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Rules:  rules,
		Seed:   flagSeed,
		Player: resolvePlayer(store),
		Store:  tui.AsStore(store),
		Logger: logger,
		Width:  width,
		Height: height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
