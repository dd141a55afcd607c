package server

import (
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, deps Deps) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("GeoQuiz API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(deps.Logger, deps.DB))

	r.Get("/api/catalog", handleCatalog(deps.Catalog))
	r.Get("/api/stats", handleStats(deps.Store))

	r.Post("/api/games", handleCreateGame(deps.Registry))

	// Per-game routes; gameMiddleware resolves {gameID}.
	r.Route("/api/games/{gameID}", func(r chi.Router) {
		r.Use(gameMiddleware(deps.Registry))
		r.Get("/", handleGameState())
		r.Delete("/", handleDeleteGame(deps.Registry))
		r.Post("/mode", handleSelectMode())
		r.Post("/answer", handleAnswer(deps.Logger, deps.Store))
		r.Post("/click", handleClick(deps.Logger, deps.Store))
		r.Post("/recall/target", handleRecallTarget(deps.Catalog))
		r.Post("/recall/answer", handleRecallAnswer(deps.Logger, deps.Store))
		r.Post("/recall/cancel", handleRecallCancel())
		r.Get("/events", handleEvents(deps.Broker))
	})

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			deps.Logger.Info("serving SPA", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}
