package server

import (
	"log/slog"
	"net/http"

	"github.com/maplequiz/geoquiz/internal/game"
	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

type RecallTargetRequest struct {
	Variant string `json:"variant"`
	Name    string `json:"name"`
}

type RecallTargetResponse struct {
	Selected bool       `json:"selected"`
	State    game.State `json:"state"`
}

// handleRecallTarget selects the entity the player wants to name. The
// catalog resolves the reference so the session always sees a real entity.
func handleRecallTarget(catalog *geoquiz.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecallTargetRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var entity geoquiz.Entity
		switch geoquiz.Variant(req.Variant) {
		case geoquiz.VariantRegion:
			region, ok := catalog.RegionByName(req.Name)
			if !ok {
				writeError(w, http.StatusNotFound, "unknown region")
				return
			}
			entity = region
		case geoquiz.VariantSettlement:
			settlement, ok := catalog.SettlementByName(req.Name)
			if !ok {
				writeError(w, http.StatusNotFound, "unknown settlement")
				return
			}
			entity = settlement
		default:
			writeError(w, http.StatusBadRequest, "variant must be region or settlement")
			return
		}

		sess := gameFrom(r)
		selected := sess.SelectRecallTarget(entity)
		writeJSON(w, http.StatusOK, RecallTargetResponse{
			Selected: selected,
			State:    sess.Snapshot(),
		})
	}
}

type RecallAnswerRequest struct {
	Text string `json:"text"`
}

func handleRecallAnswer(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecallAnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := gameFrom(r)
		before := sess.Snapshot()
		correct, near := sess.SubmitRecall(req.Text)
		after := sess.Snapshot()

		if before.RecallTarget != nil && before.Status == geoquiz.StatusPlaying {
			logAnswer(r, logger, store, AnswerRecord{
				GameID:  sess.ID(),
				Mode:    before.Mode,
				Variant: before.RecallTarget.Variant,
				Target:  before.RecallTarget.Name,
				Given:   req.Text,
				Correct: correct,
			})
		}

		writeJSON(w, http.StatusOK, AnswerResponse{Correct: correct, Near: near, State: after})
	}
}

func handleRecallCancel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := gameFrom(r)
		sess.CancelRecall()
		writeJSON(w, http.StatusOK, GameResponse{
			ID:    sess.ID(),
			State: sess.Snapshot(),
		})
	}
}
