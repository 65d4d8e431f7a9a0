package planner

import (
	"github.com/fentz26/gridplan/internal/models"
)

// AssignPhases buckets the scheduled order into construction phases 0-4.
//
// Hospitals take phase 0 unconditionally. The remaining buildings, kept in
// scheduling order, are cut by cumulative selection-time difficulty at
// 40/60/80 percent of the non-hospital total; a building is bucketed by
// the difficulty allocated strictly before it. The bucketing weight is the
// difficulty score, not the monetary cost (see DESIGN.md).
func AssignPhases(order []string, buildings []*models.Building, difficulty map[string]float64, cfg *Config) map[string]int {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	byID := make(map[string]*models.Building, len(buildings))
	for _, b := range buildings {
		byID[b.ID] = b
	}

	phases := make(map[string]int, len(order))

	var nonHospitals []string
	total := 0.0
	for _, id := range order {
		b, ok := byID[id]
		if ok && b.Category == models.CategoryHospital {
			if _, dup := phases[id]; !dup {
				phases[id] = 0
			}
			continue
		}
		nonHospitals = append(nonHospitals, id)
		total += difficulty[id]
	}

	t1 := cfg.Phase1Fraction * total
	t2 := t1 + cfg.Phase2Fraction*total
	t3 := t2 + cfg.Phase3Fraction*total

	cum := 0.0
	for _, id := range nonHospitals {
		if _, dup := phases[id]; !dup {
			switch {
			case cum < t1:
				phases[id] = 1
			case cum < t2:
				phases[id] = 2
			case cum < t3:
				phases[id] = 3
			default:
				phases[id] = 4
			}
		}
		cum += difficulty[id]
	}

	return phases
}
