// Package network assembles the damaged distribution network model from
// raw records and provides the dynamic difficulty math used by the planner.
package network

import (
	"fmt"
	"log"

	"github.com/fentz26/gridplan/internal/models"
	"github.com/fentz26/gridplan/internal/rates"
)

// Difficulty scores the repair burden of a single segment: per-meter hours
// times per-meter price over served households. A repaired segment
// contributes nothing. Segments with no recorded households count as
// serving a single nominal household to avoid a zero denominator.
func Difficulty(s *models.Segment) float64 {
	if s.State == models.SegmentRepaired {
		return 0
	}
	houses := s.HouseCount
	if houses < 1 {
		houses = 1
	}
	return s.Length * rates.HoursPerMeter(s.Type) * rates.PricePerMeter(s.Type) / float64(houses)
}

// BuildingDifficulty sums segment difficulties for a building, skipping any
// segment whose id is in excluded. It must be recomputed whenever the
// excluded set grows: a segment shared with a sibling building becomes free
// for this one once the sibling has claimed it.
func BuildingDifficulty(b *models.Building, excluded map[string]bool) float64 {
	total := 0.0
	for _, s := range b.Segments {
		if excluded[s.ID] {
			continue
		}
		total += Difficulty(s)
	}
	return total
}

// Repair marks every segment of the building as repaired. Repairing an
// already-repaired segment is a no-op.
func Repair(b *models.Building) {
	for _, s := range b.Segments {
		s.State = models.SegmentRepaired
	}
}

// MaxHouses returns the largest house count among the building's segments.
// The input repeats the downstream household figure on each row, so the
// per-building figure is the maximum, not the sum.
func MaxHouses(b *models.Building) int {
	maxH := 0
	for _, s := range b.Segments {
		if s.HouseCount > maxH {
			maxH = s.HouseCount
		}
	}
	return maxH
}

// RepairState tracks, across one scheduling run, which segment ids have
// already been claimed. It only grows and is discarded with the run.
type RepairState struct {
	repaired map[string]bool
}

// NewRepairState returns an empty repair state.
func NewRepairState() *RepairState {
	return &RepairState{repaired: make(map[string]bool)}
}

// Mark records a segment id as repaired.
func (r *RepairState) Mark(segmentID string) {
	r.repaired[segmentID] = true
}

// Repaired exposes the set for difficulty recomputation.
func (r *RepairState) Repaired() map[string]bool {
	return r.repaired
}

// Len returns the number of repaired segments.
func (r *RepairState) Len() int {
	return len(r.repaired)
}

// BuildingRecord is one building row from the loader.
type BuildingRecord struct {
	ID           string
	CategoryText string
}

// SegmentRecord is one needs-replacement segment row from the loader.
type SegmentRecord struct {
	ID         string
	BuildingID string
	Length     float64
	TypeText   string
	HouseCount int
}

// Builder assembles Building aggregates from raw records, enforcing the
// process-wide invariant that a segment id is counted in at most one
// building even when the raw input repeats it under several buildings.
type Builder struct {
	buildings map[string]*models.Building
	order     []string
	seen      map[string]bool
	warnings  []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		buildings: make(map[string]*models.Building),
		seen:      make(map[string]bool),
	}
}

// AddBuilding registers a building, normalizing its category text. Adding
// the same id twice keeps the first registration.
func (bl *Builder) AddBuilding(rec BuildingRecord) {
	if _, ok := bl.buildings[rec.ID]; ok {
		return
	}
	bl.buildings[rec.ID] = &models.Building{
		ID:       rec.ID,
		Category: rates.NormalizeCategory(rec.CategoryText),
	}
	bl.order = append(bl.order, rec.ID)
}

// AddSegment attaches a segment to its building. Duplicate segment ids
// across buildings are dropped (first occurrence wins), modeling a run
// physically shared by adjacent buildings. Segments with a blank technical
// type are skipped with a diagnostic; unrecognized types are kept with
// zero rates and a warning.
func (bl *Builder) AddSegment(rec SegmentRecord) {
	b, ok := bl.buildings[rec.BuildingID]
	if !ok {
		bl.warnf("segment %s references unknown building %s, skipped", rec.ID, rec.BuildingID)
		return
	}
	if bl.seen[rec.ID] {
		return
	}
	if rec.TypeText == "" {
		bl.warnf("segment %s has no technical type, skipped", rec.ID)
		return
	}
	t := rates.NormalizeTechType(rec.TypeText)
	if t == models.TechUnknown {
		bl.warnf("segment %s has unrecognized technical type %q, rates default to 0", rec.ID, rec.TypeText)
	}
	bl.seen[rec.ID] = true
	b.Segments = append(b.Segments, &models.Segment{
		ID:         rec.ID,
		Length:     rec.Length,
		Type:       t,
		HouseCount: rec.HouseCount,
		State:      models.SegmentNeedsRepair,
	})
}

// Buildings returns the assembled buildings in first-seen input order.
func (bl *Builder) Buildings() []*models.Building {
	out := make([]*models.Building, 0, len(bl.order))
	for _, id := range bl.order {
		out = append(out, bl.buildings[id])
	}
	return out
}

// SegmentCount returns the number of distinct segments assembled.
func (bl *Builder) SegmentCount() int {
	return len(bl.seen)
}

// Warnings returns the data-quality diagnostics collected while building.
func (bl *Builder) Warnings() []string {
	return bl.warnings
}

func (bl *Builder) warnf(format string, args ...interface{}) {
	log.Printf("network: "+format, args...)
	bl.warnings = append(bl.warnings, fmt.Sprintf(format, args...))
}
