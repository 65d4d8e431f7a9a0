// Package models defines the core domain types for gridplan.
package models

import "time"

// Category is the scheduling priority class of a building.
type Category string

const (
	CategoryHospital Category = "hospital"
	CategorySchool   Category = "school"
	CategoryOther    Category = "other"
)

// SegmentState tracks whether a segment still needs replacement.
type SegmentState string

const (
	SegmentNeedsRepair SegmentState = "needs_repair"
	SegmentRepaired    SegmentState = "repaired"
)

// TechType is the normalized technical type of a segment, driving its
// per-meter price and duration rates.
type TechType string

const (
	TechAerial     TechType = "aerial"
	TechSemiAerial TechType = "semi-aerial"
	TechConduit    TechType = "conduit"
	TechUnknown    TechType = "unknown"
)

// Segment represents one physical infrastructure run requiring replacement.
type Segment struct {
	ID         string       `json:"id"`
	Length     float64      `json:"length"`
	Type       TechType     `json:"type"`
	HouseCount int          `json:"house_count"`
	State      SegmentState `json:"state"`
}

// Building is a structure served by one or more segments.
type Building struct {
	ID       string     `json:"id"`
	Category Category   `json:"category"`
	Segments []*Segment `json:"segments"`
}

// BuildingMetrics holds the cost/duration/workforce figures computed for a
// building at selection time.
type BuildingMetrics struct {
	CostEuros    float64 `json:"cost_euros"`
	DurationH    float64 `json:"duration_h"`
	WorkersTotal int     `json:"workers_total"`
}

// PlanEntry is one row of the final repair plan.
type PlanEntry struct {
	BuildingID   string  `json:"building_id"`
	Phase        int     `json:"phase"`
	SegmentCount int     `json:"segment_count"`
	WorkersTotal int     `json:"workers_total"`
	DurationH    float64 `json:"duration_h"`
	CostEuros    float64 `json:"cost_euros"`
	MaxHouses    int     `json:"max_houses"`
	HospitalOK   *bool   `json:"hospital_ok,omitempty"` // nil for non-hospitals
}

// PhaseSummary aggregates a plan by construction phase.
type PhaseSummary struct {
	Phase         int     `json:"phase"`
	BuildingCount int     `json:"building_count"`
	SegmentCount  int     `json:"segment_count"`
	HouseCount    int     `json:"house_count"`
	MaxDurationH  float64 `json:"max_duration_h"`
	CostEuros     float64 `json:"cost_euros"`
}

// PlanRun is a persisted planning run.
type PlanRun struct {
	ID            string    `json:"id"`
	SourcePath    string    `json:"source_path"`
	CrewSize      int       `json:"crew_size"`
	BuildingCount int       `json:"building_count"`
	SegmentCount  int       `json:"segment_count"`
	TotalCost     float64   `json:"total_cost"`
	CreatedAt     time.Time `json:"created_at"`
}
