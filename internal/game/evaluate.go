package game

import (
	"github.com/agnivade/levenshtein"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

// Click is a map click delivered by the UI in locate mode. ID may be absent
// or cased differently depending on which boundary dataset produced the
// feature, so evaluation falls back to the display name.
type Click struct {
	Variant geoquiz.Variant `json:"variant"`
	ID      string          `json:"id"`
	Name    string          `json:"name"`
}

// EvaluateIdentify judges a multiple-choice selection. Option labels are the
// canonical display strings by construction, so this is an exact match.
func EvaluateIdentify(q geoquiz.Question, option string) bool {
	return option == q.TargetName
}

// EvaluateLocate judges a map click against the question. The clicked
// entity must be the question's variant, and either its identifier or its
// display name must match. Boundary-data ids are not always present or
// consistent, so the name is the reliable fallback.
func EvaluateLocate(q geoquiz.Question, c Click) bool {
	if c.Variant != q.Variant {
		return false
	}
	if c.ID != "" && c.ID == q.TargetID {
		return true
	}
	return c.Name == q.TargetName
}

// EvaluateRecall judges typed input against the target's display name after
// canonicalizing both sides.
func EvaluateRecall(targetName, typed string) bool {
	return Normalize(typed) == Normalize(targetName)
}

// recallNearThreshold is the maximum edit distance still reported as a
// near miss.
const recallNearThreshold = 2

// RecallNear reports whether a wrong recall answer was close to the target
// (edit distance on normalized strings). Purely advisory: it feeds an
// "almost!" hint and never touches score or progress.
func RecallNear(targetName, typed string) bool {
	target := Normalize(targetName)
	guess := Normalize(typed)
	if guess == "" || guess == target {
		return false
	}
	return levenshtein.ComputeDistance(guess, target) <= recallNearThreshold
}
