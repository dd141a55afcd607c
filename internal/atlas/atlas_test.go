package atlas

import (
	"testing"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("loading embedded dataset: %v", err)
	}

	if len(cat.Regions) != 13 {
		t.Errorf("expected 13 regions, got %d", len(cat.Regions))
	}
	if len(cat.Settlements) == 0 {
		t.Fatal("expected settlements")
	}

	// Display names must be unique within each variant.
	names := make(map[string]bool)
	for _, r := range cat.Regions {
		if names[r.Name] {
			t.Errorf("duplicate region name %q", r.Name)
		}
		names[r.Name] = true
		if r.ID == "" {
			t.Errorf("region %q has empty id", r.Name)
		}
	}
	names = make(map[string]bool)
	for _, s := range cat.Settlements {
		if names[s.Name] {
			t.Errorf("duplicate settlement name %q", s.Name)
		}
		names[s.Name] = true
	}

	territories := 0
	for _, r := range cat.Regions {
		if r.Kind == geoquiz.KindTerritory {
			territories++
		}
	}
	if territories != 3 {
		t.Errorf("expected 3 territories, got %d", territories)
	}

	if _, ok := cat.SettlementByName("St. John's"); !ok {
		t.Error("expected St. John's in the settlement catalog")
	}
	if r, ok := cat.RegionByID("ON"); !ok || r.Name != "Ontario" {
		t.Errorf("RegionByID(ON) = %+v, %v", r, ok)
	}
}

func TestParseRegionsFallbacks(t *testing.T) {
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {"name": "Ontario", "id": "ON"}},
			{"type": "Feature", "properties": {"PRENAME": "Quebec", "PRUID": "24"}},
			{"type": "Feature", "properties": {"name": "Yukon"}},
			{"type": "Feature", "properties": {"id": "NU", "kind": "territory"}},
			{"type": "Feature", "properties": {}}
		]
	}`)

	regions, err := ParseRegions(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regions) != 5 {
		t.Fatalf("expected 5 regions, got %d: %+v", len(regions), regions)
	}

	tests := []struct {
		i    int
		id   string
		name string
		kind geoquiz.Kind
	}{
		{0, "ON", "Ontario", geoquiz.KindProvince},
		{1, "24", "Quebec", geoquiz.KindProvince},   // census export property names
		{2, "Yukon", "Yukon", geoquiz.KindProvince}, // id falls back to name
		{3, "NU", "NU", geoquiz.KindTerritory},      // name falls back to id
		{4, "Region 5", "Region 5", geoquiz.KindProvince},
	}
	for _, tt := range tests {
		r := regions[tt.i]
		if r.ID != tt.id || r.Name != tt.name || r.Kind != tt.kind {
			t.Errorf("region %d = %+v, want id=%q name=%q kind=%q", tt.i, r, tt.id, tt.name, tt.kind)
		}
	}
}

func TestParseRegionsDeduplicates(t *testing.T) {
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {"name": "Ontario", "id": "ON"}},
			{"type": "Feature", "properties": {"name": "Ontario", "id": "35"}}
		]
	}`)

	regions, err := ParseRegions(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regions) != 1 || regions[0].ID != "ON" {
		t.Errorf("expected single Ontario with id ON, got %+v", regions)
	}
}

func TestParseRegionsRejectsGarbage(t *testing.T) {
	if _, err := ParseRegions([]byte("not json")); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestParseSettlements(t *testing.T) {
	data := []byte(`[
		{"name": "Ottawa", "regionId": "ON", "lat": 45.4, "lng": -75.7, "capital": "FEDERAL"},
		{"regionId": "QC", "lat": 46.8, "lng": -71.2},
		{"name": "Ottawa", "regionId": "ON"}
	]`)

	settlements, err := ParseSettlements(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(settlements) != 2 {
		t.Fatalf("expected 2 settlements after dedupe, got %+v", settlements)
	}
	if settlements[0].Capital != geoquiz.CapitalFederal {
		t.Errorf("capital rank should be lowercased, got %q", settlements[0].Capital)
	}
	if settlements[1].Name != "Settlement 2" {
		t.Errorf("nameless record should get a placeholder, got %q", settlements[1].Name)
	}
}
