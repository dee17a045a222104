package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"unoscore/internal/engine"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	Engine *engine.Engine
	Log    zerolog.Logger
}

// NewHandler creates a new handler instance
func NewHandler(eng *engine.Engine, log zerolog.Logger) *Handler {
	return &Handler{Engine: eng, Log: log}
}

// CreateGameRequest is the payload for creating a game.
type CreateGameRequest struct {
	PlayerNames []string `json:"playerNames"`
}

// AddRoundRequest is the payload for recording a round.
type AddRoundRequest struct {
	Scores []engine.ScoreEntry `json:"scores"`
}

// AddPlayerRequest is the payload for adding a player mid-game.
type AddPlayerRequest struct {
	Name         string  `json:"name"`
	InitialScore float64 `json:"initialScore"`
}

// HandleGames serves the collection: GET lists all games, POST creates
// one.
func (h *Handler) HandleGames(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		games := h.Engine.ListGames(r.Context())
		WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "games": games})
	case http.MethodPost:
		var req CreateGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "bad json"})
			return
		}
		names := make([]string, 0, len(req.PlayerNames))
		for _, n := range req.PlayerNames {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		game := h.Engine.CreateGame(r.Context(), names)
		h.Log.Debug().Str("gameId", game.ID).Int("players", len(game.Players)).Msg("game created")
		WriteJSON(w, http.StatusCreated, map[string]any{"ok": true, "game": game})
	default:
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]any{"ok": false, "error": "method not allowed"})
	}
}

// HandleGame serves a single game: GET fetches, DELETE removes, and POST
// with a trailing action segment mutates (rounds, undo, end, players).
func (h *Handler) HandleGame(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/games/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		WriteJSON(w, http.StatusNotFound, map[string]any{"ok": false, "error": "missing game id"})
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		h.writeGame(w, h.Engine.GetGame(r.Context(), id))
	case action == "" && r.Method == http.MethodDelete:
		deleted := h.Engine.DeleteGame(r.Context(), id)
		WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
	case action == "rounds" && r.Method == http.MethodPost:
		h.handleAddRound(w, r, id)
	case action == "undo" && r.Method == http.MethodPost:
		h.writeGame(w, h.Engine.UndoLastRound(r.Context(), id))
	case action == "end" && r.Method == http.MethodPost:
		h.writeGame(w, h.Engine.EndGame(r.Context(), id))
	case action == "players" && r.Method == http.MethodPost:
		h.handleAddPlayer(w, r, id)
	default:
		WriteJSON(w, http.StatusMethodNotAllowed, map[string]any{"ok": false, "error": "method not allowed"})
	}
}

func (h *Handler) handleAddRound(w http.ResponseWriter, r *http.Request, id string) {
	var req AddRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "bad json"})
		return
	}
	h.writeGame(w, h.Engine.AddRound(r.Context(), id, req.Scores))
}

func (h *Handler) handleAddPlayer(w http.ResponseWriter, r *http.Request, id string) {
	var req AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "bad json"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "missing player name"})
		return
	}
	h.writeGame(w, h.Engine.AddPlayer(r.Context(), id, req.Name, req.InitialScore))
}

// writeGame renders an engine result: nil means the game does not exist,
// which is a normal outcome, not a server fault.
func (h *Handler) writeGame(w http.ResponseWriter, game *engine.Game) {
	if game == nil {
		WriteJSON(w, http.StatusNotFound, map[string]any{"ok": false, "error": "game not found"})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "game": game})
}
