package handlers

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleGetGame(t *testing.T) {
	h := newTestHandler()
	game := h.Engine.CreateGame(context.Background(), []string{"A"})

	req := httptest.NewRequest("GET", "/api/games/"+game.ID, nil)
	w := httptest.NewRecorder()
	h.HandleGame(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["game"].(map[string]any)["id"] != game.ID {
		t.Fatalf("wrong game returned")
	}
}

func TestHandleGetGameNotFound(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest("GET", "/api/games/nope", nil)
	w := httptest.NewRecorder()
	h.HandleGame(w, req)

	if w.Code != 404 {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["ok"].(bool) {
		t.Fatalf("expected ok false for missing game")
	}
}

func TestHandleAddRound(t *testing.T) {
	h := newTestHandler()
	game := h.Engine.CreateGame(context.Background(), []string{"A", "B"})

	body := fmt.Sprintf(`{"scores":[{"playerId":%q,"score":10}]}`, game.Players[0].ID)
	req := httptest.NewRequest("POST", "/api/games/"+game.ID+"/rounds", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleGame(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeBody(t, w)
	g := resp["game"].(map[string]any)
	if g["currentTurn"].(float64) != 2 {
		t.Fatalf("expected turn 2 after round")
	}
	players := g["players"].([]any)
	if players[0].(map[string]any)["totalScore"].(float64) != 10 {
		t.Fatalf("score not accumulated")
	}
}

func TestHandleAddRoundMissingGame(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest("POST", "/api/games/nope/rounds", strings.NewReader(`{"scores":[]}`))
	w := httptest.NewRecorder()
	h.HandleGame(w, req)

	if w.Code != 404 {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandleUndo(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()
	game := h.Engine.CreateGame(ctx, []string{"A"})
	h.Engine.AddRound(ctx, game.ID, nil)

	req := httptest.NewRequest("POST", "/api/games/"+game.ID+"/undo", nil)
	w := httptest.NewRecorder()
	h.HandleGame(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["game"].(map[string]any)["currentTurn"].(float64) != 1 {
		t.Fatalf("undo did not rewind the turn")
	}
}

func TestHandleEndGame(t *testing.T) {
	h := newTestHandler()
	game := h.Engine.CreateGame(context.Background(), []string{"A"})

	req := httptest.NewRequest("POST", "/api/games/"+game.ID+"/end", nil)
	w := httptest.NewRecorder()
	h.HandleGame(w, req)

	resp := decodeBody(t, w)
	if resp["game"].(map[string]any)["isActive"].(bool) {
		t.Fatalf("expected game to be inactive")
	}
}

func TestHandleDeleteGame(t *testing.T) {
	h := newTestHandler()
	game := h.Engine.CreateGame(context.Background(), []string{"A"})

	req := httptest.NewRequest("DELETE", "/api/games/"+game.ID, nil)
	w := httptest.NewRecorder()
	h.HandleGame(w, req)

	resp := decodeBody(t, w)
	if !resp["deleted"].(bool) {
		t.Fatalf("expected deleted true")
	}

	req = httptest.NewRequest("DELETE", "/api/games/"+game.ID, nil)
	w = httptest.NewRecorder()
	h.HandleGame(w, req)

	resp = decodeBody(t, w)
	if resp["deleted"].(bool) {
		t.Fatalf("expected deleted false the second time")
	}
}

func TestHandleAddPlayer(t *testing.T) {
	h := newTestHandler()
	game := h.Engine.CreateGame(context.Background(), []string{"A"})

	req := httptest.NewRequest("POST", "/api/games/"+game.ID+"/players",
		strings.NewReader(`{"name":"B","initialScore":5}`))
	w := httptest.NewRecorder()
	h.HandleGame(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeBody(t, w)
	players := resp["game"].(map[string]any)["players"].([]any)
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
}

func TestHandleAddPlayerMissingName(t *testing.T) {
	h := newTestHandler()
	game := h.Engine.CreateGame(context.Background(), []string{"A"})

	req := httptest.NewRequest("POST", "/api/games/"+game.ID+"/players",
		strings.NewReader(`{"name":"  "}`))
	w := httptest.NewRecorder()
	h.HandleGame(w, req)

	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleGameUnknownAction(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest("POST", "/api/games/g1/shuffle", nil)
	w := httptest.NewRecorder()
	h.HandleGame(w, req)

	if w.Code != 405 {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
