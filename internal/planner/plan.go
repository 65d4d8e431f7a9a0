package planner

import (
	"math"
	"sort"

	"github.com/fentz26/gridplan/internal/models"
	"github.com/fentz26/gridplan/internal/network"
)

// BuildPlan runs the scheduler and phase assignment over the buildings and
// returns the plan rows in repair order.
func BuildPlan(buildings []*models.Building, cfg *Config) []models.PlanEntry {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	sch := NewScheduler(cfg)
	res := sch.Run(buildings)
	phases := AssignPhases(res.Order, buildings, res.Difficulty, cfg)

	byID := make(map[string]*models.Building, len(buildings))
	for _, b := range buildings {
		byID[b.ID] = b
	}

	entries := make([]models.PlanEntry, 0, len(res.Order))
	for _, id := range res.Order {
		b := byID[id]
		m := res.Metrics[id]

		entry := models.PlanEntry{
			BuildingID:   id,
			Phase:        phases[id],
			SegmentCount: len(b.Segments),
			WorkersTotal: m.WorkersTotal,
			DurationH:    round2(m.DurationH),
			CostEuros:    round2(m.CostEuros),
			MaxHouses:    network.MaxHouses(b),
		}
		if b.Category == models.CategoryHospital {
			ok := m.DurationH <= cfg.SafetyCeilingH()
			entry.HospitalOK = &ok
		}
		entries = append(entries, entry)
	}
	return entries
}

// Summarize aggregates plan entries per phase, ordered by phase number.
func Summarize(entries []models.PlanEntry) []models.PhaseSummary {
	byPhase := make(map[int]*models.PhaseSummary)
	for _, e := range entries {
		s, ok := byPhase[e.Phase]
		if !ok {
			s = &models.PhaseSummary{Phase: e.Phase}
			byPhase[e.Phase] = s
		}
		s.BuildingCount++
		s.SegmentCount += e.SegmentCount
		s.HouseCount += e.MaxHouses
		if e.DurationH > s.MaxDurationH {
			s.MaxDurationH = e.DurationH
		}
		s.CostEuros += e.CostEuros
	}

	out := make([]models.PhaseSummary, 0, len(byPhase))
	for _, s := range byPhase {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Phase < out[j].Phase })
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
