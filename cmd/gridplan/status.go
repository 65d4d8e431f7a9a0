package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/fentz26/gridplan/internal/loader"
	"github.com/fentz26/gridplan/internal/report"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the repair state of every building in a network CSV",
	RunE:  runStatus,
}

var (
	statusInput  string
	statusOutput string
)

func init() {
	statusCmd.Flags().StringVar(&statusInput, "input", "", "Network CSV to inspect (required)")
	statusCmd.Flags().StringVar(&statusOutput, "output", "", "Write the status CSV to this path")
	statusCmd.MarkFlagRequired("input")
}

func runStatus(cmd *cobra.Command, args []string) error {
	data, err := loader.LoadFile(statusInput)
	if err != nil {
		return err
	}

	if statusOutput != "" {
		if err := report.WriteStatusFile(statusOutput, data.Status); err != nil {
			return err
		}
		fmt.Printf("Status written: %s (%d buildings)\n", statusOutput, len(data.Status))
		return nil
	}

	ids := make([]string, 0, len(data.Status))
	for id := range data.Status {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BUILDING\tSTATE")
	for _, id := range ids {
		state := "intact"
		if data.Status[id] {
			state = "needs repair"
		}
		fmt.Fprintf(w, "%s\t%s\n", id, state)
	}
	w.Flush()
	return nil
}
