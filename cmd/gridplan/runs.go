package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fentz26/gridplan/internal/models"
	"github.com/fentz26/gridplan/internal/store"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List persisted plan runs",
	RunE:  runRunsList,
}

var showCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show a persisted plan run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func runRunsList(cmd *cobra.Command, args []string) error {
	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs found. Use 'gridplan plan --save' to persist one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tCREW\tBUILDINGS\tSEGMENTS\tTOTAL COST\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.2f\t%s\n",
			truncateID(r.ID), r.SourcePath, r.CrewSize, r.BuildingCount, r.SegmentCount, r.TotalCost,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	w.Flush()
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	run, err := resolveRun(s, args)
	if err != nil {
		return err
	}

	entries, err := s.GetEntries(run.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Run:      %s\n", run.ID)
	fmt.Printf("Source:   %s\n", run.SourcePath)
	fmt.Printf("Crew:     %d per segment\n", run.CrewSize)
	fmt.Printf("Created:  %s\n\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))

	printPlan(entries)
	return nil
}

// resolveRun picks the run named by args, matching on id prefix, or falls
// back to the latest run.
func resolveRun(s *store.Store, args []string) (*models.PlanRun, error) {
	if len(args) == 0 {
		run, err := s.LatestRun()
		if err != nil {
			return nil, err
		}
		if run == nil {
			return nil, fmt.Errorf("no runs found")
		}
		return run, nil
	}

	runs, err := s.ListRuns()
	if err != nil {
		return nil, err
	}
	for _, r := range runs {
		if r.ID == args[0] || (len(args[0]) >= 8 && strings.HasPrefix(r.ID, args[0])) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("run %s not found", args[0])
}

func truncateID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
