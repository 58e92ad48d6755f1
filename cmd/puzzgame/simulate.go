package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzgame/internal/storage"
	"github.com/vovakirdan/puzzgame/internal/tetris"
)

var (
	flagSimDuration time.Duration
	flagSimInput    time.Duration
	flagSimSave     bool
	flagSimVerbose  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by a random bot",
	Long: `Run a real-time game without a terminal UI. A bot presses random keys
while the engine drops pieces at the speed of the current level. Events are
logged to stderr and a summary is printed at the end.

Examples:
  puzzgame simulate
  puzzgame simulate --duration 2m --seed 42
  puzzgame simulate --difficulty hard --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagSimDuration, "duration", 30*time.Second, "Maximum run time")
	simulateCmd.Flags().DurationVar(&flagSimInput, "input-every", 150*time.Millisecond, "Delay between bot inputs")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the final score as player \"bot\"")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every line clear")
}

// botCommands are the inputs the bot picks from; moves are weighted so
// pieces spread across the board.
var botCommands = []tetris.Command{
	tetris.CmdLeft, tetris.CmdLeft,
	tetris.CmdRight, tetris.CmdRight,
	tetris.CmdRotate,
	tetris.CmdDown,
}

func runSimulate(_ *cobra.Command, _ []string) {
	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simulate",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var final tetris.GameOverEvent
	loop := tetris.NewLoop(rules, tetris.NewTicker(),
		tetris.WithSeed(seed),
		tetris.WithListener(func(ev tetris.Event) {
			switch e := ev.(type) {
			case tetris.LinesClearedEvent:
				logger.Debug("lines cleared", "count", e.Count)
			case tetris.LevelChangedEvent:
				logger.Info("level up", "level", e.Level, "interval", e.Interval)
			case tetris.GameOverEvent:
				final = e
				logger.Info("game over", "score", e.Score, "lines", e.Lines, "time", tetris.FormatElapsed(e.Elapsed))
			}
		}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), flagSimDuration)
	defer cancel()

	logger.Info("simulation started", "seed", seed, "duration", flagSimDuration)
	go runBot(ctx, loop, rand.New(rand.NewSource(seed)))

	err = loop.Run(ctx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Run has returned, so the engine is no longer touched by the loop.
	snap := loop.Engine().Snapshot()
	gameOver := snap.Status == tetris.StatusGameOver
	if !gameOver {
		final = tetris.GameOverEvent{
			Score:   snap.Score,
			Lines:   snap.Lines,
			Level:   snap.Level,
			Elapsed: snap.Elapsed,
		}
	}

	printSummary(final, gameOver)

	if flagSimSave {
		saveSimulation(final, logger)
	}
}

// runBot sends a random command every --input-every until ctx is done.
func runBot(ctx context.Context, loop *tetris.Loop, rng *rand.Rand) {
	t := time.NewTicker(flagSimInput)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			cmd := botCommands[rng.Intn(len(botCommands))]
			if err := loop.Send(ctx, cmd); err != nil {
				return
			}
		}
	}
}

func printSummary(e tetris.GameOverEvent, gameOver bool) {
	title := color.New(color.FgHiYellow, color.Bold)
	value := color.New(color.FgHiGreen)

	fmt.Println()
	if gameOver {
		title.Println("Simulation finished: game over")
	} else {
		title.Println("Simulation finished: time limit reached")
	}
	fmt.Printf("  Score: %s\n", value.Sprint(e.Score))
	fmt.Printf("  Lines: %s\n", value.Sprint(e.Lines))
	fmt.Printf("  Level: %s\n", value.Sprint(e.Level))
	fmt.Printf("  Time:  %s\n", value.Sprint(tetris.FormatElapsed(e.Elapsed)))
}

func saveSimulation(e tetris.GameOverEvent, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open scores database", "err", err)
		return
	}
	defer store.Close()

	id, err := store.SaveScore(storage.GameResult{
		Player:   "bot",
		Score:    e.Score,
		Lines:    e.Lines,
		Level:    e.Level,
		Duration: e.Elapsed,
	})
	if err != nil {
		logger.Error("cannot save score", "err", err)
		return
	}
	logger.Info("score saved", "id", id)
}
