package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fentz26/gridplan/internal/loader"
	"github.com/fentz26/gridplan/internal/models"
	"github.com/fentz26/gridplan/internal/planner"
	"github.com/fentz26/gridplan/internal/report"
	"github.com/fentz26/gridplan/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a phased repair plan from a network CSV",
	RunE:  runPlan,
}

var (
	planInput   string
	planOutput  string
	planSummary string
	planCrew    int
	planSave    bool
)

func init() {
	planCmd.Flags().StringVar(&planInput, "input", "", "Network CSV to plan from (required)")
	planCmd.Flags().StringVar(&planOutput, "output", "", "Write the plan CSV to this path")
	planCmd.Flags().StringVar(&planSummary, "summary", "", "Write the per-phase summary CSV to this path")
	planCmd.Flags().IntVar(&planCrew, "crew", 4, "Workers per segment (capped at 4)")
	planCmd.Flags().BoolVar(&planSave, "save", false, "Persist the run to the plan database")
	planCmd.MarkFlagRequired("input")
}

func runPlan(cmd *cobra.Command, args []string) error {
	data, err := loader.LoadFile(planInput)
	if err != nil {
		return err
	}

	builder := data.Build()
	buildings := builder.Buildings()

	cfg := planner.DefaultConfig()
	cfg.CrewSize = planCrew
	entries := planner.BuildPlan(buildings, cfg)

	if planOutput != "" {
		if err := report.WritePlanFile(planOutput, entries); err != nil {
			return err
		}
		fmt.Printf("Plan written: %s (%d rows)\n", planOutput, len(entries))
	} else {
		printPlan(entries)
	}

	if planSummary != "" {
		if err := report.WriteSummaryFile(planSummary, planner.Summarize(entries)); err != nil {
			return err
		}
		fmt.Printf("Summary written: %s\n", planSummary)
	}

	if n := len(data.Warnings) + len(builder.Warnings()); n > 0 {
		fmt.Fprintf(os.Stderr, "%d data-quality warnings (see log output)\n", n)
	}

	if planSave {
		s, err := store.New(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		run, err := s.SaveRun(planInput, cfg.EffectiveCrew(), entries)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Printf("Saved run: %s\n", run.ID)
	}

	return nil
}

func printPlan(entries []models.PlanEntry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BUILDING\tPHASE\tSEGMENTS\tWORKERS\tHOURS\tCOST\tHOUSES\tHOSPITAL OK")
	for _, e := range entries {
		safety := "-"
		if e.HospitalOK != nil {
			safety = fmt.Sprintf("%t", *e.HospitalOK)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.2f\t%.2f\t%d\t%s\n",
			e.BuildingID, e.Phase, e.SegmentCount, e.WorkersTotal, e.DurationH, e.CostEuros, e.MaxHouses, safety)
	}
	w.Flush()
}
