package main

import (
	"fmt"

	"github.com/fentz26/gridplan/internal/store"
	"github.com/fentz26/gridplan/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [run-id]",
	Short: "Browse a persisted plan run interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	runID := ""
	if len(args) > 0 {
		run, err := resolveRun(s, args)
		if err != nil {
			return err
		}
		runID = run.ID
	}

	app := tui.New(s, runID)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
