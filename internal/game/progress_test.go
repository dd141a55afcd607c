package game

import (
	"testing"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

func TestProgressRecordCorrect(t *testing.T) {
	p := NewProgress()

	p.RecordCorrect("Ontario")
	p.RecordCorrect("Ottawa")

	if p.Score() != 2 {
		t.Errorf("score = %d, want 2", p.Score())
	}
	if !p.Has("Ontario") || !p.Has("Ottawa") {
		t.Error("recorded names should be found")
	}
	if p.Has("Quebec") {
		t.Error("unrecorded name should not be found")
	}

	names := p.FoundNames()
	if len(names) != 2 || names[0] != "Ontario" || names[1] != "Ottawa" {
		t.Errorf("FoundNames() = %v, want sorted [Ontario Ottawa]", names)
	}
}

func TestProgressComplete(t *testing.T) {
	cat := &geoquiz.Catalog{
		Regions: []geoquiz.Region{
			{ID: "ON", Name: "Ontario", Kind: geoquiz.KindProvince},
			{ID: "QC", Name: "Quebec", Kind: geoquiz.KindProvince},
		},
		Settlements: []geoquiz.Settlement{
			{Name: "Ottawa", RegionID: "ON"},
		},
	}

	p := NewProgress()
	if p.Complete(cat) {
		t.Fatal("empty progress should not be complete")
	}

	p.RecordCorrect("Ontario")
	p.RecordCorrect("Ottawa")
	if p.Complete(cat) {
		t.Fatal("progress missing Quebec should not be complete")
	}

	p.RecordCorrect("Quebec")
	if !p.Complete(cat) {
		t.Fatal("all names found, progress should be complete")
	}
}
