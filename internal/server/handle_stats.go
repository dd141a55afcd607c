package server

import "net/http"

type StatsResponse struct {
	Modes []ModeStats `json:"modes"`
}

// handleStats aggregates the persisted answer log per mode.
func handleStats(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := store.Stats(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if stats == nil {
			stats = []ModeStats{}
		}
		writeJSON(w, http.StatusOK, StatsResponse{Modes: stats})
	}
}
