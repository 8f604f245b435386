package engine

import (
	"azul/game"
	"azul/strategy"
)

// MaxRounds caps a single match; the rule engine always terminates well
// under this, so hitting it means a bug.
const MaxRounds = 100

// Config describes one match.
type Config struct {
	Mode       game.Mode
	Seed       uint64
	Strategies []string // one name per seat
	Verbose    bool
}

// Engine drives a single game: it owns the authoritative GameState and
// asks each seat's strategy for a move in turn.
type Engine struct {
	State   *game.GameState
	Seats   []strategy.Strategy
	verbose bool
}

// MatchResult is the outcome handed to rating and persistence
// collaborators once a game is over.
type MatchResult struct {
	Participants []string
	Scores       []int
	Ranking      []int
	Rounds       int
	Winner       string
}
