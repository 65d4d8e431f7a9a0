package planner

import (
	"github.com/fentz26/gridplan/internal/models"
	"github.com/fentz26/gridplan/internal/rates"
)

// Metrics computes the full reconstruction cost, wall-clock duration and
// workforce for a building with the given crew size per segment.
//
// Cost covers every segment regardless of repair state: it is the total
// reconstruction bill, independent of scheduling history. Each segment
// gets its own crew and all crews work concurrently, so the wall-clock
// duration is the slowest segment's, not the sum.
func Metrics(b *models.Building, crewSize int) models.BuildingMetrics {
	crew := crewSize
	if crew < 1 {
		crew = 1
	}
	if crew > 4 {
		crew = 4
	}

	var m models.BuildingMetrics
	if len(b.Segments) == 0 {
		return m
	}

	for _, s := range b.Segments {
		m.CostEuros += s.Length * rates.PricePerMeter(s.Type)
		d := s.Length * rates.HoursPerMeter(s.Type) / float64(crew)
		if d > m.DurationH {
			m.DurationH = d
		}
	}
	m.WorkersTotal = crew * len(b.Segments)
	return m
}
