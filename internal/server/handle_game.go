package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maplequiz/geoquiz/internal/game"
	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

type CreateGameRequest struct {
	Mode        string `json:"mode"`
	OptionCount int    `json:"optionCount,omitempty"`
}

type GameResponse struct {
	ID    string     `json:"id"`
	State game.State `json:"state"`
}

func handleCreateGame(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		mode := geoquiz.Mode(req.Mode)
		if !mode.Valid() {
			writeError(w, http.StatusBadRequest, "mode must be identify, recall, or locate")
			return
		}
		if req.OptionCount < 0 {
			writeError(w, http.StatusBadRequest, "optionCount must be positive")
			return
		}

		sess := reg.Create(mode, req.OptionCount)
		writeJSON(w, http.StatusCreated, GameResponse{
			ID:    sess.ID(),
			State: sess.Snapshot(),
		})
	}
}

func handleGameState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := gameFrom(r)
		writeJSON(w, http.StatusOK, GameResponse{
			ID:    sess.ID(),
			State: sess.Snapshot(),
		})
	}
}

type ModeRequest struct {
	Mode string `json:"mode"`
}

func handleSelectMode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ModeRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		mode := geoquiz.Mode(req.Mode)
		if !mode.Valid() {
			writeError(w, http.StatusBadRequest, "mode must be identify, recall, or locate")
			return
		}

		sess := gameFrom(r)
		sess.SelectMode(mode)
		writeJSON(w, http.StatusOK, GameResponse{
			ID:    sess.ID(),
			State: sess.Snapshot(),
		})
	}
}

func handleDeleteGame(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg.Delete(chi.URLParam(r, "gameID"))
		w.WriteHeader(http.StatusNoContent)
	}
}
