package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "GeoQuiz API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the map-based geography quiz.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/catalog
	getCatalog, _ := r.NewOperationContext(http.MethodGet, "/api/catalog")
	getCatalog.SetSummary("Entity catalog")
	getCatalog.SetDescription("Returns every region and settlement for the map layer.")
	getCatalog.AddRespStructure(CatalogResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCatalog)

	// GET /api/stats
	getStats, _ := r.NewOperationContext(http.MethodGet, "/api/stats")
	getStats.SetSummary("Answer statistics")
	getStats.SetDescription("Aggregates the persisted answer log per play mode.")
	getStats.AddRespStructure(StatsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getStats)

	// POST /api/games
	postGames, _ := r.NewOperationContext(http.MethodPost, "/api/games")
	postGames.SetSummary("Create game")
	postGames.SetDescription("Starts a new game session in the given mode and returns its first question.")
	postGames.AddReqStructure(CreateGameRequest{})
	postGames.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postGames.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postGames)

	// GET /api/games/{gameID}
	getGame, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}")
	getGame.SetSummary("Game state")
	getGame.SetDescription("Returns a snapshot of the session: score, status, question, found entities.")
	getGame.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getGame)

	// DELETE /api/games/{gameID}
	deleteGame, _ := r.NewOperationContext(http.MethodDelete, "/api/games/{gameID}")
	deleteGame.SetSummary("Delete game")
	deleteGame.SetDescription("Discards the session and cancels any pending question advance.")
	deleteGame.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(deleteGame)

	// POST /api/games/{gameID}/mode
	postMode, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/mode")
	postMode.SetSummary("Switch mode")
	postMode.SetDescription("Switches the play mode. Progress resets and the pending question advance is cancelled.")
	postMode.AddReqStructure(ModeRequest{})
	postMode.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postMode.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postMode.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postMode)

	// POST /api/games/{gameID}/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/answer")
	postAnswer.SetSummary("Submit identify answer")
	postAnswer.SetDescription("Submits a multiple-choice selection for the current question.")
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(AnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postAnswer)

	// POST /api/games/{gameID}/click
	postClick, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/click")
	postClick.SetSummary("Submit locate click")
	postClick.SetDescription("Submits a map click for the current locate question. Clicks on found entities are ignored.")
	postClick.AddReqStructure(ClickRequest{})
	postClick.AddRespStructure(AnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postClick.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postClick)

	// POST /api/games/{gameID}/recall/target
	postTarget, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/recall/target")
	postTarget.SetSummary("Select recall target")
	postTarget.SetDescription("Selects the entity the player wants to name. Rejected for found entities.")
	postTarget.AddReqStructure(RecallTargetRequest{})
	postTarget.AddRespStructure(RecallTargetResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postTarget.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postTarget)

	// POST /api/games/{gameID}/recall/answer
	postRecall, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/recall/answer")
	postRecall.SetSummary("Submit recall answer")
	postRecall.SetDescription("Evaluates typed input against the active recall target and clears it.")
	postRecall.AddReqStructure(RecallAnswerRequest{})
	postRecall.AddRespStructure(AnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postRecall.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postRecall)

	// POST /api/games/{gameID}/recall/cancel
	postCancel, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/recall/cancel")
	postCancel.SetSummary("Cancel recall")
	postCancel.SetDescription("Clears the active recall target without evaluating.")
	postCancel.AddRespStructure(GameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postCancel)

	// GET /api/games/{gameID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}/events")
	getEvents.SetSummary("Feedback event stream")
	getEvents.SetDescription("Server-Sent Events stream of correct/incorrect/finished feedback signals.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
