package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"unoscore/internal/storage"
	"unoscore/pkg/utils"
)

// Engine is the game-state machine. Every operation reads the whole
// collection from the backing store, computes the next collection, and
// writes it back as one blob. Operations never fail loudly: a missing
// game reads as nil, and store trouble surfaces only through the
// diagnostic logger while the caller keeps the computed in-memory result.
type Engine struct {
	store storage.Store
	key   string
	log   zerolog.Logger

	now        func() time.Time
	newID      func() string
	pickDealer func(n int) int
}

// Option adjusts an Engine. Tests use these to pin the clock, the id
// source and the dealer choice.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDSource replaces the identifier generator.
func WithIDSource(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithDealerPicker replaces the random pick of the initial dealer. pick
// receives the player count and returns an index into the player list.
func WithDealerPicker(pick func(n int) int) Option {
	return func(e *Engine) { e.pickDealer = pick }
}

// New creates an Engine persisting into the given slot key of store.
// log is the diagnostic sink for swallowed storage failures.
func New(store storage.Store, key string, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		key:        key,
		log:        log,
		now:        time.Now,
		newID:      utils.NewID,
		pickDealer: rand.Intn,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// GenerateID returns a fresh opaque identifier.
func (e *Engine) GenerateID() string {
	return e.newID()
}

// ListGames returns every stored game. An absent or unparseable payload
// yields an empty collection; the failure is logged, never raised.
func (e *Engine) ListGames(ctx context.Context) []Game {
	payload, ok, err := e.store.Read(ctx, e.key)
	if err != nil {
		e.log.Error().Err(err).Msg("read games")
		return []Game{}
	}
	if !ok || payload == "" {
		return []Game{}
	}
	games, err := decodeGames(payload)
	if err != nil {
		e.log.Error().Err(err).Msg("decode games")
		return []Game{}
	}
	return games
}

// PersistGames writes the whole collection back to the backing store.
// Write failures are logged and swallowed; the caller's in-memory state
// stands regardless.
func (e *Engine) PersistGames(ctx context.Context, games []Game) {
	payload, err := encodeGames(games)
	if err != nil {
		e.log.Error().Err(err).Msg("encode games")
		return
	}
	if err := e.store.Write(ctx, e.key, payload); err != nil {
		e.log.Error().Err(err).Msg("persist games")
	}
}

// CreateGame builds a game for the given player names, picks a dealer at
// random among them, and appends it to the store. Name validation is the
// caller's concern.
func (e *Engine) CreateGame(ctx context.Context, playerNames []string) Game {
	games := e.ListGames(ctx)
	now := e.now()

	players := make([]Player, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, Player{ID: e.newID(), Name: name})
	}
	dealer := ""
	if len(players) > 0 {
		dealer = players[e.pickDealer(len(players))].ID
	}

	game := Game{
		ID:          e.newID(),
		Players:     players,
		CurrentTurn: 1,
		DealerID:    dealer,
		Rounds:      []Round{},
		CreatedAt:   now,
		UpdatedAt:   now,
		IsActive:    true,
	}
	games = append(games, game)
	e.PersistGames(ctx, games)
	return game
}

// GetGame looks a game up by id; nil when absent.
func (e *Engine) GetGame(ctx context.Context, id string) *Game {
	games := e.ListGames(ctx)
	if i := findGame(games, id); i >= 0 {
		g := games[i]
		return &g
	}
	return nil
}

// AddRound records one scored turn: the round is appended, totals
// accumulate, the turn counter bumps and the deal passes to the next
// player in seating order. Entries for unknown player ids contribute
// nothing; players without an entry score zero. Returns nil when the
// game does not exist.
func (e *Engine) AddRound(ctx context.Context, gameID string, scores []ScoreEntry) *Game {
	games := e.ListGames(ctx)
	idx := findGame(games, gameID)
	if idx < 0 {
		return nil
	}
	game := &games[idx]
	now := e.now()

	round := Round{
		TurnNumber: game.CurrentTurn,
		Scores:     scores,
		Timestamp:  now,
	}
	for i := range game.Players {
		game.Players[i].TotalScore += scoreFor(scores, game.Players[i].ID)
	}
	game.Rounds = append(game.Rounds, round)
	game.CurrentTurn++
	game.DealerID = rotateDealer(game.Players, game.DealerID, 1)
	game.UpdatedAt = now

	e.PersistGames(ctx, games)
	g := *game
	return &g
}

// UndoLastRound reverts the most recent AddRound exactly: the round is
// removed, its contributions subtracted, the turn counter decremented
// and the deal handed back to the previous player. A game with no rounds
// is returned unchanged. Returns nil when the game does not exist.
func (e *Engine) UndoLastRound(ctx context.Context, gameID string) *Game {
	games := e.ListGames(ctx)
	idx := findGame(games, gameID)
	if idx < 0 {
		return nil
	}
	game := &games[idx]
	if len(game.Rounds) == 0 {
		g := *game
		return &g
	}

	last := game.Rounds[len(game.Rounds)-1]
	game.Rounds = game.Rounds[:len(game.Rounds)-1]
	for i := range game.Players {
		game.Players[i].TotalScore -= scoreFor(last.Scores, game.Players[i].ID)
	}
	game.CurrentTurn--
	game.DealerID = rotateDealer(game.Players, game.DealerID, -1)
	game.UpdatedAt = e.now()

	e.PersistGames(ctx, games)
	g := *game
	return &g
}

// EndGame marks a game inactive. Calling it again is harmless.
func (e *Engine) EndGame(ctx context.Context, gameID string) *Game {
	games := e.ListGames(ctx)
	idx := findGame(games, gameID)
	if idx < 0 {
		return nil
	}
	games[idx].IsActive = false
	games[idx].UpdatedAt = e.now()

	e.PersistGames(ctx, games)
	g := games[idx]
	return &g
}

// DeleteGame removes a game from the collection and reports whether
// anything was removed.
func (e *Engine) DeleteGame(ctx context.Context, gameID string) bool {
	games := e.ListGames(ctx)
	filtered := make([]Game, 0, len(games))
	for _, g := range games {
		if g.ID != gameID {
			filtered = append(filtered, g)
		}
	}
	if len(filtered) == len(games) {
		return false
	}
	e.PersistGames(ctx, filtered)
	return true
}

// AddPlayer appends a newcomer to a running game. Historical rounds, the
// turn counter and the dealer are untouched; the new player simply has
// no entries in earlier rounds. Returns nil when the game does not
// exist.
func (e *Engine) AddPlayer(ctx context.Context, gameID, name string, initialScore float64) *Game {
	games := e.ListGames(ctx)
	idx := findGame(games, gameID)
	if idx < 0 {
		return nil
	}
	games[idx].Players = append(games[idx].Players, Player{
		ID:         e.newID(),
		Name:       name,
		TotalScore: initialScore,
	})
	games[idx].UpdatedAt = e.now()

	e.PersistGames(ctx, games)
	g := games[idx]
	return &g
}

func findGame(games []Game, id string) int {
	for i := range games {
		if games[i].ID == id {
			return i
		}
	}
	return -1
}

// scoreFor returns the score recorded for playerID, zero when absent.
func scoreFor(scores []ScoreEntry, playerID string) float64 {
	for _, s := range scores {
		if s.PlayerID == playerID {
			return s.Score
		}
	}
	return 0
}

// rotateDealer moves the deal step seats through the players, wrapping
// at either end. A dealer id that matches no player is preserved
// untouched, so add and undo stay exact inverses even with a dangling
// reference; an empty id stays empty.
func rotateDealer(players []Player, dealerID string, step int) string {
	if dealerID == "" || len(players) == 0 {
		return dealerID
	}
	for i := range players {
		if players[i].ID == dealerID {
			n := len(players)
			return players[((i+step)%n+n)%n].ID
		}
	}
	return dealerID
}
