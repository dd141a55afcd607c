package server

import (
	"log/slog"
	"net/http"

	"github.com/maplequiz/geoquiz/internal/game"
	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

type AnswerRequest struct {
	Option string `json:"option"`
}

type AnswerResponse struct {
	Correct bool       `json:"correct"`
	Near    bool       `json:"near,omitempty"`
	State   game.State `json:"state"`
}

// handleAnswer accepts an identify-mode selection. Out-of-turn submissions
// (feedback still showing, finished session, wrong mode) are not errors:
// the session ignores them and the fresh snapshot tells the client why.
func handleAnswer(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Option == "" {
			writeError(w, http.StatusBadRequest, "option is required")
			return
		}

		sess := gameFrom(r)
		before := sess.Snapshot()
		sess.SubmitAnswer(req.Option)
		after := sess.Snapshot()

		evaluated := before.Status == geoquiz.StatusPlaying && before.Question != nil &&
			before.Mode == geoquiz.ModeIdentify
		correct := after.Status == geoquiz.StatusCorrect

		if evaluated {
			logAnswer(r, logger, store, AnswerRecord{
				GameID:  sess.ID(),
				Mode:    before.Mode,
				Variant: before.Question.Variant,
				Target:  before.Question.TargetName,
				Given:   req.Option,
				Correct: correct,
			})
		}

		writeJSON(w, http.StatusOK, AnswerResponse{Correct: correct, State: after})
	}
}

type ClickRequest struct {
	Variant string `json:"variant"`
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
}

// handleClick accepts a locate-mode map click.
func handleClick(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClickRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ID == "" && req.Name == "" {
			writeError(w, http.StatusBadRequest, "id or name is required")
			return
		}
		variant := geoquiz.Variant(req.Variant)
		if variant != geoquiz.VariantRegion && variant != geoquiz.VariantSettlement {
			writeError(w, http.StatusBadRequest, "variant must be region or settlement")
			return
		}

		sess := gameFrom(r)
		before := sess.Snapshot()
		sess.SubmitClick(game.Click{Variant: variant, ID: req.ID, Name: req.Name})
		after := sess.Snapshot()

		// Clicks on found entities are ignored by the session; only a status
		// change means an answer was actually evaluated.
		evaluated := before.Status == geoquiz.StatusPlaying && after.Status != geoquiz.StatusPlaying
		correct := after.Status == geoquiz.StatusCorrect

		if evaluated {
			logAnswer(r, logger, store, AnswerRecord{
				GameID:  sess.ID(),
				Mode:    before.Mode,
				Variant: before.Question.Variant,
				Target:  before.Question.TargetName,
				Given:   req.Name,
				Correct: correct,
			})
		}

		writeJSON(w, http.StatusOK, AnswerResponse{Correct: correct, State: after})
	}
}

// logAnswer appends to the answer log. The log is advisory: a write failure
// must not fail the answer itself.
func logAnswer(r *http.Request, logger *slog.Logger, store Store, rec AnswerRecord) {
	if err := store.RecordAnswer(r.Context(), rec); err != nil {
		logger.Error("recording answer", "game_id", rec.GameID, "error", err)
	}
}
