package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

func TestRecallFlow(t *testing.T) {
	r := testRouter(t)
	g := createGame(t, r, "recall")

	// Select a settlement to name.
	w := doJSON(t, r, http.MethodPost, "/api/games/"+g.ID+"/recall/target",
		RecallTargetRequest{Variant: "settlement", Name: "St. John's"})
	if w.Code != http.StatusOK {
		t.Fatalf("target: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var targetResp RecallTargetResponse
	json.NewDecoder(w.Body).Decode(&targetResp)
	if !targetResp.Selected {
		t.Fatal("expected target selection to succeed")
	}
	if targetResp.State.RecallTarget == nil || targetResp.State.RecallTarget.Name != "St. John's" {
		t.Fatalf("recallTarget = %+v", targetResp.State.RecallTarget)
	}

	// Smart-quote spelling still evaluates correct.
	w = doJSON(t, r, http.MethodPost, "/api/games/"+g.ID+"/recall/answer",
		RecallAnswerRequest{Text: "st. john’s"})
	if w.Code != http.StatusOK {
		t.Fatalf("answer: expected 200, got %d", w.Code)
	}
	var resp AnswerResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp.Correct {
		t.Error("smart-quote spelling should be correct")
	}
	if resp.State.Score != 1 {
		t.Errorf("score = %d, want 1", resp.State.Score)
	}
	if resp.State.RecallTarget != nil {
		t.Error("recall target should clear on submit")
	}
}

func TestRecallNearMiss(t *testing.T) {
	r := testRouter(t)
	g := createGame(t, r, "recall")

	doJSON(t, r, http.MethodPost, "/api/games/"+g.ID+"/recall/target",
		RecallTargetRequest{Variant: "settlement", Name: "Winnipeg"})

	w := doJSON(t, r, http.MethodPost, "/api/games/"+g.ID+"/recall/answer",
		RecallAnswerRequest{Text: "Winipeg"})
	var resp AnswerResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.Correct {
		t.Fatal("misspelling should be incorrect")
	}
	if !resp.Near {
		t.Error("one letter off should report near")
	}
	if resp.State.Score != 0 {
		t.Errorf("score = %d, want 0", resp.State.Score)
	}
}

func TestRecallUnknownTarget(t *testing.T) {
	r := testRouter(t)
	g := createGame(t, r, "recall")

	w := doJSON(t, r, http.MethodPost, "/api/games/"+g.ID+"/recall/target",
		RecallTargetRequest{Variant: "settlement", Name: "Atlantis"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown settlement, got %d", w.Code)
	}
}

func TestRecallCancel(t *testing.T) {
	r := testRouter(t)
	g := createGame(t, r, "recall")

	doJSON(t, r, http.MethodPost, "/api/games/"+g.ID+"/recall/target",
		RecallTargetRequest{Variant: "region", Name: "Yukon"})

	w := doJSON(t, r, http.MethodPost, "/api/games/"+g.ID+"/recall/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d", w.Code)
	}
	var resp GameResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.State.RecallTarget != nil {
		t.Error("cancel should clear the recall target")
	}

	// Submitting after cancel is a no-op, not an evaluation.
	w = doJSON(t, r, http.MethodPost, "/api/games/"+g.ID+"/recall/answer",
		RecallAnswerRequest{Text: "Yukon"})
	var ans AnswerResponse
	json.NewDecoder(w.Body).Decode(&ans)
	if ans.Correct || ans.State.Score != 0 {
		t.Errorf("submit after cancel should not score: %+v", ans)
	}
}

func TestRecallTargetOutsideRecallMode(t *testing.T) {
	r := testRouter(t)
	g := createGame(t, r, "identify")

	w := doJSON(t, r, http.MethodPost, "/api/games/"+g.ID+"/recall/target",
		RecallTargetRequest{Variant: "region", Name: "Ontario"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp RecallTargetResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Selected {
		t.Error("target selection outside recall mode should be rejected")
	}
	if resp.State.Mode != geoquiz.ModeIdentify {
		t.Errorf("mode = %s, want identify", resp.State.Mode)
	}
}
