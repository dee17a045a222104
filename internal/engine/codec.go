package engine

import (
	"encoding/json"
	"time"
)

// storedGame mirrors Game on the wire but keeps the dealer as a pointer
// so a missing field can be told apart from an empty one. Records written
// before dealer tracking existed lack the field entirely.
type storedGame struct {
	ID          string    `json:"id"`
	Players     []Player  `json:"players"`
	CurrentTurn int       `json:"currentTurn"`
	DealerID    *string   `json:"dealerId"`
	Rounds      []Round   `json:"rounds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsActive    bool      `json:"isActive"`
}

func decodeGames(payload string) ([]Game, error) {
	var stored []storedGame
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, err
	}
	games := make([]Game, 0, len(stored))
	for _, s := range stored {
		games = append(games, s.game())
	}
	return games, nil
}

// game converts the stored shape into a Game, defaulting the dealer for
// legacy records to the first player (or "" with no players). The heal
// applies to the returned value only; stored bytes are never rewritten.
func (s storedGame) game() Game {
	dealer := ""
	switch {
	case s.DealerID != nil:
		dealer = *s.DealerID
	case len(s.Players) > 0:
		dealer = s.Players[0].ID
	}
	players := s.Players
	if players == nil {
		players = []Player{}
	}
	rounds := s.Rounds
	if rounds == nil {
		rounds = []Round{}
	}
	return Game{
		ID:          s.ID,
		Players:     players,
		CurrentTurn: s.CurrentTurn,
		DealerID:    dealer,
		Rounds:      rounds,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		IsActive:    s.IsActive,
	}
}

func encodeGames(games []Game) (string, error) {
	b, err := json.Marshal(games)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
