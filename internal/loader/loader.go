// Package loader reads the network CSV and produces the raw records the
// network builder consumes.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fentz26/gridplan/internal/network"
	"github.com/fentz26/gridplan/internal/rates"
)

// Canonical column names. French spreadsheet exports are accepted through
// the alias table below, mirroring the conventions of the upstream data.
const (
	colSegmentID    = "infra_id"
	colBuildingID   = "building_id"
	colLength       = "length"
	colTechType     = "infra_type"
	colHouses       = "nb_houses"
	colState        = "state"
	colBuildingType = "building_type"
)

var headerAliases = map[string]string{
	"id_batiment":   colBuildingID,
	"longueur":      colLength,
	"nb_maisons":    colHouses,
	"etat":          colState,
	"type_batiment": colBuildingType,
}

var requiredColumns = []string{
	colSegmentID, colBuildingID, colLength, colTechType, colHouses, colState, colBuildingType,
}

// Data is the parsed input: per-building records, the needs-replacement
// segment rows, and the repair status of every building in the file.
type Data struct {
	Buildings []network.BuildingRecord
	Segments  []network.SegmentRecord
	// Status maps building id to true when at least one of its segments
	// needs replacement.
	Status map[string]bool
	// Warnings are non-fatal row-level diagnostics.
	Warnings []string
}

// LoadFile opens and parses a network CSV.
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open network file: %w", err)
	}
	defer f.Close()

	data, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return data, nil
}

// Load parses a network CSV from a reader. The first row is the header;
// missing required columns are fatal and reported together.
func Load(r io.Reader) (*Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := headerAliases[name]; ok {
			name = canonical
		}
		cols[name] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	data := &Data{Status: make(map[string]bool)}
	seenBuilding := make(map[string]bool)
	line := 1

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		buildingID := strings.TrimSpace(row[cols[colBuildingID]])
		if buildingID == "" {
			data.warnf("line %d: blank building id, row skipped", line)
			continue
		}
		if !seenBuilding[buildingID] {
			seenBuilding[buildingID] = true
			data.Buildings = append(data.Buildings, network.BuildingRecord{
				ID:           buildingID,
				CategoryText: strings.TrimSpace(row[cols[colBuildingType]]),
			})
			data.Status[buildingID] = false
		}

		// Intact segments only inform the building status; they never
		// enter the difficulty model.
		if !rates.NeedsReplacement(row[cols[colState]]) {
			continue
		}
		data.Status[buildingID] = true

		length, err := strconv.ParseFloat(strings.TrimSpace(row[cols[colLength]]), 64)
		if err != nil {
			data.warnf("line %d: bad length %q, row skipped", line, row[cols[colLength]])
			continue
		}
		houses, err := strconv.Atoi(strings.TrimSpace(row[cols[colHouses]]))
		if err != nil {
			data.warnf("line %d: bad house count %q, row skipped", line, row[cols[colHouses]])
			continue
		}

		data.Segments = append(data.Segments, network.SegmentRecord{
			ID:         strings.TrimSpace(row[cols[colSegmentID]]),
			BuildingID: buildingID,
			Length:     length,
			TypeText:   strings.TrimSpace(row[cols[colTechType]]),
			HouseCount: houses,
		})
	}

	return data, nil
}

// Build runs the loaded records through the network builder and returns
// the assembled buildings plus the combined diagnostics.
func (d *Data) Build() *network.Builder {
	bl := network.NewBuilder()
	for _, b := range d.Buildings {
		bl.AddBuilding(b)
	}
	for _, s := range d.Segments {
		bl.AddSegment(s)
	}
	return bl
}

func (d *Data) warnf(format string, args ...interface{}) {
	log.Printf("loader: "+format, args...)
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}
