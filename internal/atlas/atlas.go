// Package atlas loads the embedded geographic dataset: region boundaries as
// GeoJSON and settlements as plain JSON. The quiz core only reads entity
// properties; geometry is carried for the map layer and otherwise ignored.
package atlas

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

//go:embed data/*.json
var dataFS embed.FS

// territoryIDs identifies which region codes are territories rather than
// provinces when the dataset carries no explicit kind.
var territoryIDs = map[string]bool{"NT": true, "NU": true, "YT": true}

type feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type settlementRecord struct {
	Name     string  `json:"name"`
	RegionID string  `json:"regionId"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Capital  string  `json:"capital"`
}

// Load builds the entity catalog from the embedded dataset.
func Load() (*geoquiz.Catalog, error) {
	regionsRaw, err := dataFS.ReadFile("data/regions.geo.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded regions: %w", err)
	}
	regions, err := ParseRegions(regionsRaw)
	if err != nil {
		return nil, err
	}

	settlementsRaw, err := dataFS.ReadFile("data/settlements.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded settlements: %w", err)
	}
	settlements, err := ParseSettlements(settlementsRaw)
	if err != nil {
		return nil, err
	}

	return &geoquiz.Catalog{Regions: regions, Settlements: settlements}, nil
}

// ParseRegions extracts region entities from a GeoJSON FeatureCollection.
// Boundary datasets are inconsistent: "name"/"id" may instead appear as the
// census export's "PRENAME"/"PRUID", and single malformed features get
// placeholder values rather than failing the whole load. Duplicate display
// names keep their first occurrence so catalog names stay unique.
func ParseRegions(data []byte) ([]geoquiz.Region, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing region boundaries: %w", err)
	}

	regions := make([]geoquiz.Region, 0, len(fc.Features))
	seen := make(map[string]bool, len(fc.Features))
	for i, f := range fc.Features {
		name := stringProp(f.Properties, "name", "PRENAME")
		id := stringProp(f.Properties, "id", "PRUID")
		switch {
		case name == "" && id == "":
			name = fmt.Sprintf("Region %d", i+1)
			id = name
		case name == "":
			name = id
		case id == "":
			id = name
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		kind := geoquiz.KindProvince
		if k := stringProp(f.Properties, "kind"); k != "" {
			if strings.EqualFold(k, string(geoquiz.KindTerritory)) {
				kind = geoquiz.KindTerritory
			}
		} else if territoryIDs[id] {
			kind = geoquiz.KindTerritory
		}

		regions = append(regions, geoquiz.Region{ID: id, Name: name, Kind: kind})
	}
	return regions, nil
}

// ParseSettlements decodes the settlement list. Nameless records get a
// placeholder name; duplicates keep their first occurrence.
func ParseSettlements(data []byte) ([]geoquiz.Settlement, error) {
	var records []settlementRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing settlements: %w", err)
	}

	settlements := make([]geoquiz.Settlement, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		name := rec.Name
		if name == "" {
			name = fmt.Sprintf("Settlement %d", i+1)
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		settlements = append(settlements, geoquiz.Settlement{
			Name:     name,
			RegionID: rec.RegionID,
			Lat:      rec.Lat,
			Lng:      rec.Lng,
			Capital:  geoquiz.CapitalRank(strings.ToLower(rec.Capital)),
		})
	}
	return settlements, nil
}

// stringProp returns the first non-empty string value among keys.
func stringProp(props map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := props[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
