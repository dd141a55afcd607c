package game

import (
	"errors"
	"math/rand"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

// ErrExhausted is returned by Generator.Next when every entity in the
// catalog has already been found. It marks the end of a session, not a
// failure.
var ErrExhausted = errors.New("no entities left to ask")

// DefaultOptionCount is the identify-mode choice count when none is configured.
const DefaultOptionCount = 4

// Generator produces questions from a catalog, excluding found entities.
// It owns its randomness source so tests can seed it deterministically.
// Not safe for concurrent use; sessions serialize access.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator driven by rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Next picks the next question. The candidate pool is every entity of both
// variants whose display name is not in found. When both variants still have
// candidates the variant is chosen uniformly at random; when only one does,
// that variant is forced so the generator never starves.
func (g *Generator) Next(cat *geoquiz.Catalog, found map[string]struct{}, mode geoquiz.Mode, optionCount int) (geoquiz.Question, error) {
	if optionCount <= 0 {
		optionCount = DefaultOptionCount
	}

	regions := eligibleRegions(cat, found)
	settlements := eligibleSettlements(cat, found)
	if len(regions) == 0 && len(settlements) == 0 {
		return geoquiz.Question{}, ErrExhausted
	}

	pickRegion := len(settlements) == 0 || (len(regions) > 0 && g.rng.Intn(2) == 0)

	var q geoquiz.Question
	if pickRegion {
		target := regions[g.rng.Intn(len(regions))]
		q = geoquiz.Question{
			Variant:    geoquiz.VariantRegion,
			TargetID:   target.ID,
			TargetName: target.Name,
		}
		if mode == geoquiz.ModeIdentify {
			q.Options = g.buildOptions(target.Name, cat.RegionNames(), optionCount)
		}
	} else {
		target := settlements[g.rng.Intn(len(settlements))]
		q = geoquiz.Question{
			Variant:    geoquiz.VariantSettlement,
			TargetID:   target.Name,
			TargetName: target.Name,
		}
		if mode == geoquiz.ModeIdentify {
			q.Options = g.buildOptions(target.Name, cat.SettlementNames(), optionCount)
		}
	}
	return q, nil
}

// buildOptions assembles the identify-mode choices: the target plus up to
// optionCount-1 distractors sampled without replacement from the variant's
// full name list. Found entities stay valid distractors; only the target is
// excluded from the draw. The result is shuffled.
func (g *Generator) buildOptions(target string, allNames []string, optionCount int) []string {
	pool := make([]string, 0, len(allNames))
	for _, n := range allNames {
		if n != target {
			pool = append(pool, n)
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	n := optionCount - 1
	if n > len(pool) {
		n = len(pool)
	}
	options := append([]string{target}, pool[:n]...)
	g.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}

func eligibleRegions(cat *geoquiz.Catalog, found map[string]struct{}) []geoquiz.Region {
	var out []geoquiz.Region
	for _, r := range cat.Regions {
		if _, ok := found[r.Name]; !ok {
			out = append(out, r)
		}
	}
	return out
}

func eligibleSettlements(cat *geoquiz.Catalog, found map[string]struct{}) []geoquiz.Settlement {
	var out []geoquiz.Settlement
	for _, s := range cat.Settlements {
		if _, ok := found[s.Name]; !ok {
			out = append(out, s)
		}
	}
	return out
}
