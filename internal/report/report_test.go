package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fentz26/gridplan/internal/models"
)

func TestWritePlan(t *testing.T) {
	ok := true
	entries := []models.PlanEntry{
		{BuildingID: "h1", Phase: 0, SegmentCount: 2, WorkersTotal: 8, DurationH: 9.35, CostEuros: 18483.26, MaxHouses: 1, HospitalOK: &ok},
		{BuildingID: "b1", Phase: 1, SegmentCount: 1, WorkersTotal: 4, DurationH: 50, CostEuros: 50000, MaxHouses: 10},
	}

	var buf bytes.Buffer
	if err := WritePlan(&buf, entries); err != nil {
		t.Fatalf("WritePlan failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[0] != "id_batiments,phase,nb_infra,nb_ouvriers,duree_heures,cout_euros,nb_maisons,hopital_ok_marge_20pct" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "h1,0,2,8,9.35,18483.26,1,true" {
		t.Errorf("hospital row = %q", lines[1])
	}
	// Safety cell is empty for non-hospitals.
	if lines[2] != "b1,1,1,4,50.00,50000.00,10," {
		t.Errorf("other row = %q", lines[2])
	}
}

func TestWriteSummary(t *testing.T) {
	sums := []models.PhaseSummary{
		{Phase: 0, BuildingCount: 1, SegmentCount: 3, HouseCount: 1, MaxDurationH: 9.35, CostEuros: 18483.26},
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, sums); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "phase,nb_batiments,nb_infrastructures,nb_maisons,duree_heures,cout_euros" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "0,1,3,1,9.35,18483.26" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteStatus(t *testing.T) {
	status := map[string]bool{"b2": false, "b1": true}

	var buf bytes.Buffer
	if err := WriteStatus(&buf, status); err != nil {
		t.Fatalf("WriteStatus failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[1] != "b1,a_reparer" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "b2,intact" {
		t.Errorf("row 2 = %q", lines[2])
	}
}
