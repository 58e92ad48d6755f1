package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/puzzgame/internal/platform/tui"
	"github.com/vovakirdan/puzzgame/internal/storage"
	"github.com/vovakirdan/puzzgame/internal/tetris"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top scores",
	Long: `Display the top scores, the record and overall statistics.

Examples:
  puzzgame scores
  puzzgame scores --limit 25
  puzzgame scores --player Ana
  puzzgame scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show scores of this player")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := color.New(color.FgHiYellow, color.Bold)
	header := color.New(color.FgHiBlack)
	first := color.New(color.FgHiYellow)

	if flagScoresPlayer != "" {
		title.Printf("High Scores - %s\n", flagScoresPlayer)
	} else {
		title.Println("High Scores")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'puzzgame play' to set the first high score!")
		return
	}

	header.Printf("  %-4s  %-16s  %8s  %5s  %3s  %5s  %s\n", "Rank", "Player", "Score", "Lines", "Lvl", "Time", "Date")
	header.Printf("  %-4s  %-16s  %8s  %5s  %3s  %5s  %s\n", "----", "------", "-----", "-----", "---", "----", "----")

	for i, e := range scores {
		line := fmt.Sprintf("  %-4d  %-16s  %8d  %5d  %3d  %5s  %s",
			i+1, e.Player, e.Score, e.Lines, e.Level,
			tetris.FormatElapsed(e.Duration), e.CreatedAt.Format("2006-01-02 15:04"))
		if i == 0 {
			first.Println(line)
		} else {
			fmt.Println(line)
		}
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %s\n", color.GreenString("%d", highScore))
	}
	if rec, err := store.Record(); err == nil {
		fmt.Printf("Record: %s (%s)\n", color.GreenString("%d", rec.Score), rec.Name)
	}
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Games: %d  Avg: %.0f  Lines: %d  Played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.TotalLines, tetris.FormatElapsed(stats.PlayTime))
	}
}
