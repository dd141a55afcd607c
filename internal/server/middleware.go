package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maplequiz/geoquiz/internal/game"
)

type ctxKey int

const ctxKeyGame ctxKey = iota

// gameMiddleware resolves {gameID} to a live session and stashes it in the
// request context.
func gameMiddleware(reg *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "gameID")
			if id == "" {
				writeError(w, http.StatusNotFound, "game not found")
				return
			}

			sess, err := reg.Get(id)
			if err != nil {
				writeError(w, http.StatusNotFound, "game not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyGame, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func gameFrom(r *http.Request) *game.Session {
	return r.Context().Value(ctxKeyGame).(*game.Session)
}
