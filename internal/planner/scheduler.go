package planner

import (
	"log"
	"sort"

	"github.com/fentz26/gridplan/internal/models"
	"github.com/fentz26/gridplan/internal/network"
)

// Result is the output of one scheduling run: the full repair order plus
// the difficulty and metrics recorded for each building at the moment it
// was selected.
type Result struct {
	Order      []string
	Difficulty map[string]float64
	Metrics    map[string]models.BuildingMetrics
}

// Scheduler produces the repair order for a set of buildings. Hospitals
// are exhausted first, then schools, then everything else; within a tier
// the easiest building (lowest dynamic difficulty) goes next. Selecting a
// building claims all of its segments globally, so a segment shared with a
// later building stops counting toward that building's difficulty.
type Scheduler struct {
	config *Config
	state  *network.RepairState
}

// NewScheduler creates a scheduler with its own repair state.
func NewScheduler(cfg *Config) *Scheduler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Scheduler{
		config: cfg,
		state:  network.NewRepairState(),
	}
}

// Run schedules all buildings and returns the repair order. Buildings with
// no segments are excluded from the tiered pass and appended at the end
// with difficulty 0.
func (sch *Scheduler) Run(buildings []*models.Building) *Result {
	res := &Result{
		Difficulty: make(map[string]float64, len(buildings)),
		Metrics:    make(map[string]models.BuildingMetrics, len(buildings)),
	}

	byID := make(map[string]*models.Building, len(buildings))
	placed := make(map[string]bool, len(buildings))
	for _, b := range buildings {
		byID[b.ID] = b
	}

	tiers := [3][]string{}
	for _, b := range buildings {
		if len(b.Segments) == 0 {
			continue
		}
		switch b.Category {
		case models.CategoryHospital:
			tiers[0] = append(tiers[0], b.ID)
		case models.CategorySchool:
			tiers[1] = append(tiers[1], b.ID)
		default:
			tiers[2] = append(tiers[2], b.ID)
		}
	}

	for _, pool := range tiers {
		for len(pool) > 0 {
			idx := sch.nextPick(pool, byID)
			id := pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)

			b := byID[id]
			res.Difficulty[id] = network.BuildingDifficulty(b, sch.state.Repaired())
			res.Metrics[id] = Metrics(b, sch.config.EffectiveCrew())
			res.Order = append(res.Order, id)
			placed[id] = true

			network.Repair(b)
			for _, s := range b.Segments {
				sch.state.Mark(s.ID)
			}
		}
	}

	// Buildings never placed (no segments, or every segment claimed before
	// they entered the pool) close out the order with difficulty 0.
	var leftover []string
	for _, b := range buildings {
		if !placed[b.ID] {
			leftover = append(leftover, b.ID)
		}
	}
	sort.Strings(leftover)
	for _, id := range leftover {
		res.Difficulty[id] = 0
		res.Metrics[id] = Metrics(byID[id], sch.config.EffectiveCrew())
		res.Order = append(res.Order, id)
	}

	log.Printf("planner: scheduled %d buildings, %d segments repaired", len(res.Order), sch.state.Len())
	return res
}

// nextPick recomputes dynamic difficulty over the pool and returns the
// index of the minimum. Ties break on ascending building id so two runs
// over the same input produce the same order.
func (sch *Scheduler) nextPick(pool []string, byID map[string]*models.Building) int {
	best := 0
	bestDiff := network.BuildingDifficulty(byID[pool[0]], sch.state.Repaired())
	for i := 1; i < len(pool); i++ {
		d := network.BuildingDifficulty(byID[pool[i]], sch.state.Repaired())
		if d < bestDiff || (d == bestDiff && pool[i] < pool[best]) {
			best = i
			bestDiff = d
		}
	}
	return best
}
