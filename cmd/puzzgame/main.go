// puzzgame is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	puzzgame                 - Play (same as "puzzgame play")
//	puzzgame play            - Play a game
//	puzzgame scores          - Show the top scores
//	puzzgame record          - Show or reset the record
//	puzzgame serve           - Start SSH server for remote play
//	puzzgame simulate        - Run a headless game with a random bot
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.puzzgame/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--name <player>       - Set and remember the player name
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagName       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzgame",
	Short: "PuzzGame - a falling-block puzzle in your terminal",
	Long: `PuzzGame is a falling-block puzzle game for the terminal.
Clear full rows to score; every 10 lines the pieces fall faster.

Available commands:
  play      - Play a game (default)
  scores    - View the top scores
  record    - Show or reset the record
  serve     - Start SSH server for remote play
  simulate  - Run a headless game driven by a random bot

Examples:
  puzzgame
  puzzgame play --difficulty hard
  puzzgame scores
  puzzgame serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puzzgame/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Player name (remembered for next time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}
