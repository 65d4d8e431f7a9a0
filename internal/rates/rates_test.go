package rates

import (
	"testing"

	"github.com/fentz26/gridplan/internal/models"
)

func TestNormalizeTechType(t *testing.T) {
	cases := []struct {
		in   string
		want models.TechType
	}{
		{"aérien", models.TechAerial},
		{"Aerien", models.TechAerial},
		{"aerial", models.TechAerial},
		{"semi-aérien", models.TechSemiAerial},
		{"SEMI AERIEN", models.TechSemiAerial},
		{"semi_aerial", models.TechSemiAerial},
		{"fourreau", models.TechConduit},
		{"Conduit", models.TechConduit},
		{"souterrain", models.TechConduit},
		{"", models.TechUnknown},
		{"fibre", models.TechUnknown},
	}
	for _, c := range cases {
		if got := NormalizeTechType(c.in); got != c.want {
			t.Errorf("NormalizeTechType(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		in   string
		want models.Category
	}{
		{"hôpital", models.CategoryHospital},
		{"HOPITAL", models.CategoryHospital},
		{"centre hospitalier", models.CategoryHospital},
		{"école", models.CategorySchool},
		{"Ecole primaire", models.CategorySchool},
		{"habitation", models.CategoryOther},
		{"commerce", models.CategoryOther},
		{"", models.CategoryOther},
	}
	for _, c := range cases {
		if got := NormalizeCategory(c.in); got != c.want {
			t.Errorf("NormalizeCategory(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestRateTable(t *testing.T) {
	cases := []struct {
		tt    models.TechType
		price float64
		hours float64
	}{
		{models.TechAerial, 500, 2},
		{models.TechSemiAerial, 750, 4},
		{models.TechConduit, 900, 5},
		{models.TechUnknown, 0, 0},
	}
	for _, c := range cases {
		if got := PricePerMeter(c.tt); got != c.price {
			t.Errorf("PricePerMeter(%s) = %v, want %v", c.tt, got, c.price)
		}
		if got := HoursPerMeter(c.tt); got != c.hours {
			t.Errorf("HoursPerMeter(%s) = %v, want %v", c.tt, got, c.hours)
		}
	}
}

func TestNeedsReplacement(t *testing.T) {
	if !NeedsReplacement("a_remplacer") {
		t.Error("a_remplacer should need replacement")
	}
	if !NeedsReplacement("à remplacer") {
		t.Error("accented form should need replacement")
	}
	if NeedsReplacement("infra_intacte") {
		t.Error("intact segment should not need replacement")
	}
	if NeedsReplacement("") {
		t.Error("blank state should not need replacement")
	}
}
