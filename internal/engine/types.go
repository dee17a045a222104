package engine

import "time"

// Player is one participant in a game. Totals only ever change through
// AddRound and UndoLastRound.
type Player struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	TotalScore float64 `json:"totalScore"`
}

// ScoreEntry records one player's score for a single round. A round need
// not carry an entry for every player.
type ScoreEntry struct {
	PlayerID string  `json:"playerId"`
	Score    float64 `json:"score"`
}

// Round is one scored turn. TurnNumber matches the game's currentTurn at
// the moment the round was recorded.
type Round struct {
	TurnNumber int          `json:"turnNumber"`
	Scores     []ScoreEntry `json:"scores"`
	Timestamp  time.Time    `json:"timestamp"`
}

// Game is one scored UNO session. Player order is seating order: it
// drives dealer rotation and display.
type Game struct {
	ID          string    `json:"id"`
	Players     []Player  `json:"players"`
	CurrentTurn int       `json:"currentTurn"`
	DealerID    string    `json:"dealerId"`
	Rounds      []Round   `json:"rounds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsActive    bool      `json:"isActive"`
}
