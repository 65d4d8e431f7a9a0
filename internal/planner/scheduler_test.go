package planner

import (
	"reflect"
	"testing"

	"github.com/fentz26/gridplan/internal/models"
	"github.com/fentz26/gridplan/internal/network"
)

func TestTierPrecedence(t *testing.T) {
	buildings := []*models.Building{
		building("house1", models.CategoryOther, seg("i1", 10, models.TechAerial, 1)),
		building("hospital1", models.CategoryHospital, seg("i2", 500, models.TechConduit, 1)),
		building("school1", models.CategorySchool, seg("i3", 100, models.TechSemiAerial, 1)),
	}

	res := NewScheduler(nil).Run(buildings)

	want := []string{"hospital1", "school1", "house1"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("order = %v, want %v", res.Order, want)
	}
}

func TestGreedyPicksEasiestFirst(t *testing.T) {
	buildings := []*models.Building{
		building("hard", models.CategoryOther, seg("i1", 100, models.TechConduit, 1)),
		building("easy", models.CategoryOther, seg("i2", 10, models.TechAerial, 10)),
	}

	res := NewScheduler(nil).Run(buildings)

	if res.Order[0] != "easy" {
		t.Errorf("order = %v, want easy first", res.Order)
	}
}

func TestSharedSegmentFreesSibling(t *testing.T) {
	// Two buildings share segment "shared". Whichever goes first claims it,
	// and the sibling's recorded difficulty must not count it again.
	shared := seg("shared", 10, models.TechAerial, 1) // difficulty 10000
	own := seg("own", 20, models.TechAerial, 1)       // difficulty 20000

	b1 := building("b1", models.CategoryOther, shared)
	b2 := building("b2", models.CategoryOther, &models.Segment{
		ID: "shared", Length: 10, Type: models.TechAerial, HouseCount: 1, State: models.SegmentNeedsRepair,
	}, own)

	before := network.BuildingDifficulty(b2, nil)
	if before != 30000 {
		t.Fatalf("b2 difficulty before = %v, want 30000", before)
	}

	res := NewScheduler(nil).Run([]*models.Building{b1, b2})

	if res.Order[0] != "b1" {
		t.Fatalf("order = %v, want b1 (easier) first", res.Order)
	}
	// Selection-time difficulty of b2 excludes the claimed shared segment.
	if res.Difficulty["b2"] != 20000 {
		t.Errorf("b2 selection difficulty = %v, want 20000", res.Difficulty["b2"])
	}
}

func TestTieBreakAscendingID(t *testing.T) {
	mk := func() []*models.Building {
		return []*models.Building{
			building("zeta", models.CategoryOther, seg("z1", 10, models.TechAerial, 1)),
			building("alpha", models.CategoryOther, seg("a1", 10, models.TechAerial, 1)),
			building("mid", models.CategoryOther, seg("m1", 10, models.TechAerial, 1)),
		}
	}

	res := NewScheduler(nil).Run(mk())
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("order = %v, want %v", res.Order, want)
	}

	// Same input, second run: identical order.
	res2 := NewScheduler(nil).Run(mk())
	if !reflect.DeepEqual(res.Order, res2.Order) {
		t.Errorf("runs differ: %v vs %v", res.Order, res2.Order)
	}
}

func TestZeroSegmentBuildingAppended(t *testing.T) {
	buildings := []*models.Building{
		building("connected", models.CategoryOther, seg("i1", 10, models.TechAerial, 1)),
		building("island", models.CategoryOther),
	}

	res := NewScheduler(nil).Run(buildings)

	want := []string{"connected", "island"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("order = %v, want %v", res.Order, want)
	}
	if res.Difficulty["island"] != 0 {
		t.Errorf("island difficulty = %v, want 0", res.Difficulty["island"])
	}
	if m := res.Metrics["island"]; m.WorkersTotal != 0 || m.CostEuros != 0 {
		t.Errorf("island metrics = %+v, want zeros", m)
	}
}

func TestSchedulerRecordsMetricsAtSelection(t *testing.T) {
	b := building("X", models.CategoryOther,
		seg("A", 100, models.TechAerial, 10),
		seg("B", 50, models.TechConduit, 5),
	)

	res := NewScheduler(nil).Run([]*models.Building{b})

	if res.Difficulty["X"] != 55000 {
		t.Errorf("difficulty = %v, want 55000", res.Difficulty["X"])
	}
	m := res.Metrics["X"]
	if m.CostEuros != 95000 || m.DurationH != 62.5 || m.WorkersTotal != 8 {
		t.Errorf("metrics = %+v, want 95000/62.5/8", m)
	}
}

func TestEverySegmentRepairedOnce(t *testing.T) {
	buildings := []*models.Building{
		building("b1", models.CategoryOther, seg("i1", 10, models.TechAerial, 1), seg("i2", 10, models.TechAerial, 1)),
		building("b2", models.CategorySchool, seg("i3", 10, models.TechSemiAerial, 2)),
	}

	NewScheduler(nil).Run(buildings)

	for _, b := range buildings {
		for _, s := range b.Segments {
			if s.State != models.SegmentRepaired {
				t.Errorf("segment %s left unrepaired", s.ID)
			}
		}
	}
}
