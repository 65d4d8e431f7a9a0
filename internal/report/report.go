// Package report serializes plan results to the tabular formats the
// downstream construction tooling consumes.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/fentz26/gridplan/internal/models"
)

// Plan CSV column contract, kept stable for the existing consumers of the
// French upstream pipeline.
var planHeader = []string{
	"id_batiments",
	"phase",
	"nb_infra",
	"nb_ouvriers",
	"duree_heures",
	"cout_euros",
	"nb_maisons",
	"hopital_ok_marge_20pct",
}

// WritePlan writes plan entries as CSV in repair order. The hospital
// safety column is empty for non-hospitals.
func WritePlan(w io.Writer, entries []models.PlanEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(planHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		safety := ""
		if e.HospitalOK != nil {
			safety = strconv.FormatBool(*e.HospitalOK)
		}
		row := []string{
			e.BuildingID,
			strconv.Itoa(e.Phase),
			strconv.Itoa(e.SegmentCount),
			strconv.Itoa(e.WorkersTotal),
			formatFloat(e.DurationH),
			formatFloat(e.CostEuros),
			strconv.Itoa(e.MaxHouses),
			safety,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", e.BuildingID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummary writes the per-phase aggregation as CSV.
func WriteSummary(w io.Writer, summaries []models.PhaseSummary) error {
	cw := csv.NewWriter(w)
	header := []string{"phase", "nb_batiments", "nb_infrastructures", "nb_maisons", "duree_heures", "cout_euros"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			strconv.Itoa(s.Phase),
			strconv.Itoa(s.BuildingCount),
			strconv.Itoa(s.SegmentCount),
			strconv.Itoa(s.HouseCount),
			formatFloat(s.MaxDurationH),
			formatFloat(s.CostEuros),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write phase %d: %w", s.Phase, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteStatus writes the per-building repair state as CSV, sorted by
// building id.
func WriteStatus(w io.Writer, status map[string]bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id_batiment", "state_batiment"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	ids := make([]string, 0, len(status))
	for id := range status {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		state := "intact"
		if status[id] {
			state = "a_reparer"
		}
		if err := cw.Write([]string{id, state}); err != nil {
			return fmt.Errorf("write building %s: %w", id, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePlanFile writes the plan CSV to a file path.
func WritePlanFile(path string, entries []models.PlanEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlan(f, entries)
}

// WriteSummaryFile writes the summary CSV to a file path.
func WriteSummaryFile(path string, summaries []models.PhaseSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSummary(f, summaries)
}

// WriteStatusFile writes the status CSV to a file path.
func WriteStatusFile(path string, status map[string]bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteStatus(f, status)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
