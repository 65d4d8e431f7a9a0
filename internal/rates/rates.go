// Package rates holds the fixed per-meter rate table and the normalization
// of free-form input text onto the closed type and category sets.
package rates

import (
	"strings"

	"github.com/fentz26/gridplan/internal/models"
)

// Replacement rates by technical type, from the network operator's
// reference price list.
const (
	AerialPricePerMeter     = 500.0
	AerialHoursPerMeter     = 2.0
	SemiAerialPricePerMeter = 750.0
	SemiAerialHoursPerMeter = 4.0
	ConduitPricePerMeter    = 900.0
	ConduitHoursPerMeter    = 5.0
)

// PricePerMeter returns the replacement price in euros per meter for a
// technical type. Unknown types price at zero.
func PricePerMeter(t models.TechType) float64 {
	switch t {
	case models.TechAerial:
		return AerialPricePerMeter
	case models.TechSemiAerial:
		return SemiAerialPricePerMeter
	case models.TechConduit:
		return ConduitPricePerMeter
	default:
		return 0
	}
}

// HoursPerMeter returns the single-worker replacement duration in hours per
// meter for a technical type. Unknown types resolve to zero.
func HoursPerMeter(t models.TechType) float64 {
	switch t {
	case models.TechAerial:
		return AerialHoursPerMeter
	case models.TechSemiAerial:
		return SemiAerialHoursPerMeter
	case models.TechConduit:
		return ConduitHoursPerMeter
	default:
		return 0
	}
}

// accentFolder strips the accented characters seen in the French source
// spreadsheets before matching.
var accentFolder = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a",
	"ô", "o", "î", "i", "ï", "i",
	"û", "u", "ù", "u", "ç", "c",
)

// fold lowercases, strips accents and collapses separators so that
// "Semi-Aérien" and "semi aerien" compare equal.
func fold(s string) string {
	s = accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeTechType maps free-form technical type text onto the closed
// TechType set. Unrecognized text maps to TechUnknown, which carries
// zero rates.
func NormalizeTechType(text string) models.TechType {
	f := fold(text)
	switch {
	case f == "":
		return models.TechUnknown
	case strings.Contains(f, "semi"):
		return models.TechSemiAerial
	case strings.Contains(f, "aeri") || strings.Contains(f, "aerial"):
		return models.TechAerial
	case strings.Contains(f, "fourreau") || strings.Contains(f, "conduit") || strings.Contains(f, "souterrain"):
		return models.TechConduit
	default:
		return models.TechUnknown
	}
}

// NormalizeCategory maps free-form building type text onto the closed
// Category set. Matching is accent/case/space-insensitive and substring
// based; anything that is neither a hospital nor a school, including
// explicit "habitation", collapses to CategoryOther.
func NormalizeCategory(text string) models.Category {
	f := fold(text)
	switch {
	case strings.Contains(f, "hopital") || strings.Contains(f, "hospital"):
		return models.CategoryHospital
	case strings.Contains(f, "ecole") || strings.Contains(f, "school"):
		return models.CategorySchool
	default:
		return models.CategoryOther
	}
}

// NeedsReplacement reports whether raw state text marks a segment as
// requiring replacement. Intact segments never enter the difficulty model.
func NeedsReplacement(text string) bool {
	f := fold(text)
	return strings.Contains(f, "remplac") || strings.Contains(f, "repar") || strings.Contains(f, "replace")
}
