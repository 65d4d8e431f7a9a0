package planner

import (
	"testing"

	"github.com/fentz26/gridplan/internal/models"
)

func TestBuildPlanHospitalSafety(t *testing.T) {
	// 32m aerial with crew 4: 32*2/4 = 16h, right on the ceiling -> safe.
	safe := building("hsafe", models.CategoryHospital, seg("i1", 32, models.TechAerial, 1))
	// 40m aerial with crew 4: 20h > 16h -> flagged.
	unsafe := building("hslow", models.CategoryHospital, seg("i2", 40, models.TechAerial, 1))
	other := building("o1", models.CategoryOther, seg("i3", 10, models.TechAerial, 1))

	entries := BuildPlan([]*models.Building{safe, unsafe, other}, nil)

	byID := make(map[string]models.PlanEntry)
	for _, e := range entries {
		byID[e.BuildingID] = e
	}

	if byID["hsafe"].HospitalOK == nil || !*byID["hsafe"].HospitalOK {
		t.Error("hsafe should be flagged safe")
	}
	if byID["hslow"].HospitalOK == nil || *byID["hslow"].HospitalOK {
		t.Error("hslow should be flagged unsafe")
	}
	if byID["o1"].HospitalOK != nil {
		t.Error("non-hospital should carry no safety flag")
	}
}

func TestBuildPlanPhaseZeroExclusivity(t *testing.T) {
	buildings := []*models.Building{
		building("h1", models.CategoryHospital, seg("i1", 10, models.TechAerial, 1)),
		building("s1", models.CategorySchool, seg("i2", 10, models.TechAerial, 1)),
		building("o1", models.CategoryOther, seg("i3", 10, models.TechAerial, 1)),
	}

	entries := BuildPlan(buildings, nil)
	for _, e := range entries {
		isHospital := e.BuildingID == "h1"
		if (e.Phase == 0) != isHospital {
			t.Errorf("%s: phase %d violates phase-0 exclusivity", e.BuildingID, e.Phase)
		}
	}
}

func TestBuildPlanRounding(t *testing.T) {
	// 10m semi-aerial, crew 3: duration 40/3 = 13.333... -> 13.33
	cfg := DefaultConfig()
	cfg.CrewSize = 3
	b := building("b1", models.CategoryOther, seg("i1", 10, models.TechSemiAerial, 1))

	entries := BuildPlan([]*models.Building{b}, cfg)
	if entries[0].DurationH != 13.33 {
		t.Errorf("duration = %v, want 13.33", entries[0].DurationH)
	}
	if entries[0].WorkersTotal != 3 {
		t.Errorf("workforce = %d, want 3", entries[0].WorkersTotal)
	}
}

func TestBuildPlanDedupInvariant(t *testing.T) {
	// Sum of segment counts equals distinct segment ids when the input
	// went through the network builder's dedup.
	buildings := []*models.Building{
		building("b1", models.CategoryOther, seg("i1", 10, models.TechAerial, 1), seg("i2", 10, models.TechAerial, 1)),
		building("b2", models.CategoryOther, seg("i3", 10, models.TechAerial, 1)),
	}

	entries := BuildPlan(buildings, nil)
	total := 0
	for _, e := range entries {
		total += e.SegmentCount
	}
	if total != 3 {
		t.Errorf("segment count sum = %d, want 3", total)
	}
}

func TestSummarize(t *testing.T) {
	entries := []models.PlanEntry{
		{BuildingID: "h1", Phase: 0, SegmentCount: 3, DurationH: 9.35, CostEuros: 100, MaxHouses: 1},
		{BuildingID: "a", Phase: 1, SegmentCount: 2, DurationH: 21.0, CostEuros: 200, MaxHouses: 4},
		{BuildingID: "b", Phase: 1, SegmentCount: 1, DurationH: 10.0, CostEuros: 50, MaxHouses: 2},
		{BuildingID: "c", Phase: 4, SegmentCount: 1, DurationH: 43.0, CostEuros: 75, MaxHouses: 1},
	}

	sums := Summarize(entries)
	if len(sums) != 3 {
		t.Fatalf("summaries = %d, want 3", len(sums))
	}
	if sums[0].Phase != 0 || sums[1].Phase != 1 || sums[2].Phase != 4 {
		t.Errorf("phases not sorted: %+v", sums)
	}
	p1 := sums[1]
	if p1.BuildingCount != 2 || p1.SegmentCount != 3 || p1.HouseCount != 6 {
		t.Errorf("phase 1 counts = %+v", p1)
	}
	if p1.MaxDurationH != 21.0 || p1.CostEuros != 250 {
		t.Errorf("phase 1 duration/cost = %v/%v", p1.MaxDurationH, p1.CostEuros)
	}
}
