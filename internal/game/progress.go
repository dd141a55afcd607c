package game

import (
	"sort"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

// Progress tracks the found-set and score for one mode session. Entities are
// never un-found and the score never decreases.
type Progress struct {
	found map[string]struct{}
	score int
}

func NewProgress() *Progress {
	return &Progress{found: make(map[string]struct{})}
}

// RecordCorrect marks name as found and awards one point. Recording a name
// twice is harmless: the set insert is idempotent but the caller guards
// against it anyway, since the generator never re-asks a found entity.
func (p *Progress) RecordCorrect(name string) {
	p.found[name] = struct{}{}
	p.score++
}

func (p *Progress) Score() int { return p.score }

// Has reports whether name has already been found.
func (p *Progress) Has(name string) bool {
	_, ok := p.found[name]
	return ok
}

// Found exposes the found-set for the generator's exclusion rule. Callers
// must not mutate it.
func (p *Progress) Found() map[string]struct{} {
	return p.found
}

// FoundNames returns the found display names sorted for stable output.
func (p *Progress) FoundNames() []string {
	names := make([]string, 0, len(p.found))
	for n := range p.found {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Complete reports whether every entity display name in the catalog, across
// both variants, has been found.
func (p *Progress) Complete(cat *geoquiz.Catalog) bool {
	for _, n := range cat.RegionNames() {
		if !p.Has(n) {
			return false
		}
	}
	for _, n := range cat.SettlementNames() {
		if !p.Has(n) {
			return false
		}
	}
	return true
}
