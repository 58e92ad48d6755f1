package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzgame/internal/storage"
)

var flagRecordReset bool

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Show or reset the record",
	Long: `Print the record score and its holder.

Examples:
  puzzgame record
  puzzgame record --reset`,
	Args: cobra.NoArgs,
	Run:  runRecord,
}

func init() {
	recordCmd.Flags().BoolVar(&flagRecordReset, "reset", false, "Delete the record")
}

func runRecord(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecordReset {
		if err := store.ResetRecord(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		color.Yellow("Record reset.")
		return
	}

	rec, err := store.Record()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Record: %s (%s)\n", color.New(color.FgHiGreen, color.Bold).Sprint(rec.Score), rec.Name)
	if !rec.UpdatedAt.IsZero() {
		fmt.Printf("Set:    %s\n", rec.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
