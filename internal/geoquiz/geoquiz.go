// Package geoquiz defines the core domain types for the geography quiz.
package geoquiz

// Variant distinguishes the two entity families on the map.
type Variant string

const (
	VariantRegion     Variant = "region"
	VariantSettlement Variant = "settlement"
)

// Kind classifies a region.
type Kind string

const (
	KindProvince  Kind = "province"
	KindTerritory Kind = "territory"
)

// CapitalRank marks a settlement's capital status. Empty means not a capital.
type CapitalRank string

const (
	CapitalFederal     CapitalRank = "federal"
	CapitalProvincial  CapitalRank = "provincial"
	CapitalTerritorial CapitalRank = "territorial"
)

// Region is a province or territory. ID is a stable short code ("ON", "YT").
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Settlement is a city. Its display name doubles as its identifier.
type Settlement struct {
	Name     string      `json:"name"`
	RegionID string      `json:"regionId"`
	Lat      float64     `json:"lat"`
	Lng      float64     `json:"lng"`
	Capital  CapitalRank `json:"capital,omitempty"`
}

// Entity is the sealed union of Region and Settlement. Dispatch with a type
// switch; no other types implement it.
type Entity interface {
	EntityVariant() Variant
	// Key is the identifier used in questions: region ID or settlement name.
	Key() string
	DisplayName() string
}

func (r Region) EntityVariant() Variant { return VariantRegion }
func (r Region) Key() string            { return r.ID }
func (r Region) DisplayName() string    { return r.Name }

func (s Settlement) EntityVariant() Variant { return VariantSettlement }
func (s Settlement) Key() string            { return s.Name }
func (s Settlement) DisplayName() string    { return s.Name }

// Mode is one of the three play modes.
type Mode string

const (
	ModeIdentify Mode = "identify" // multiple choice against a highlighted target
	ModeRecall   Mode = "recall"   // tap a target, type its name
	ModeLocate   Mode = "locate"   // given a name, click the target
)

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeIdentify, ModeRecall, ModeLocate:
		return true
	}
	return false
}

// Status is the answer lifecycle within a session.
type Status string

const (
	StatusPlaying   Status = "playing"
	StatusCorrect   Status = "correct"
	StatusIncorrect Status = "incorrect"
	StatusFinished  Status = "finished"
)

// Question asks the player to resolve one entity. Options is empty for
// locate and recall; for identify it holds the shuffled choice labels,
// always including TargetName.
type Question struct {
	Variant    Variant  `json:"variant"`
	TargetID   string   `json:"targetId"`
	TargetName string   `json:"targetName"`
	Options    []string `json:"options,omitempty"`
}

// Catalog is the read-only entity catalog, loaded once and shared.
type Catalog struct {
	Regions     []Region
	Settlements []Settlement
}

// RegionNames returns the distinct region display names in catalog order.
func (c *Catalog) RegionNames() []string {
	names := make([]string, 0, len(c.Regions))
	seen := make(map[string]bool, len(c.Regions))
	for _, r := range c.Regions {
		if !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
	}
	return names
}

// SettlementNames returns the distinct settlement display names in catalog order.
func (c *Catalog) SettlementNames() []string {
	names := make([]string, 0, len(c.Settlements))
	seen := make(map[string]bool, len(c.Settlements))
	for _, s := range c.Settlements {
		if !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
	}
	return names
}

// RegionByID looks a region up by its short code.
func (c *Catalog) RegionByID(id string) (Region, bool) {
	for _, r := range c.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// RegionByName looks a region up by display name.
func (c *Catalog) RegionByName(name string) (Region, bool) {
	for _, r := range c.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// SettlementByName looks a settlement up by its display name.
func (c *Catalog) SettlementByName(name string) (Settlement, bool) {
	for _, s := range c.Settlements {
		if s.Name == name {
			return s, true
		}
	}
	return Settlement{}, false
}

// Len is the total number of entities across both variants.
func (c *Catalog) Len() int {
	return len(c.Regions) + len(c.Settlements)
}
