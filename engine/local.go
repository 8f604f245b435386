package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"azul/game"
	"azul/strategy"
)

// New validates the config, builds the strategies and the initial state.
func New(cfg Config) (*Engine, error) {
	if len(cfg.Strategies) < 2 || len(cfg.Strategies) > 5 {
		return nil, fmt.Errorf("%w: %d seats", game.ErrConfig, len(cfg.Strategies))
	}

	seats := make([]strategy.Strategy, len(cfg.Strategies))
	for i, name := range cfg.Strategies {
		s, err := strategy.New(name)
		if err != nil {
			return nil, err
		}
		seats[i] = s
	}
	// Minmax seats predict each opponent with that opponent's own policy.
	for _, s := range seats {
		if mm, ok := s.(*strategy.Minmax); ok {
			strategy.WithModels(seats)(mm)
		}
	}

	state, err := game.NewGame(game.Config{
		Players: len(cfg.Strategies),
		Mode:    cfg.Mode,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return nil, err
	}
	for i, b := range state.Boards {
		b.Name = seatName(seats, i)
	}

	return &Engine{State: state, Seats: seats, verbose: cfg.Verbose}, nil
}

// Run plays the game to the end and reports the result. A strategy
// returning an illegal move is a bug in that strategy; the engine refuses
// to repair it and aborts the match loudly.
func (e *Engine) Run() MatchResult {
	for !e.State.Over() {
		if e.State.Round > MaxRounds {
			panic(fmt.Sprintf("game did not terminate within %d rounds", MaxRounds))
		}
		seat := e.State.Current
		moves := e.State.LegalMoves()
		if len(moves) == 0 {
			panic("draft phase with no legal moves")
		}
		round := e.State.Round
		mv := e.Seats[seat].SelectMove(e.State, moves)
		if err := e.State.Apply(mv); err != nil {
			panic(fmt.Sprintf("seat %d (%s) produced an illegal move %+v: %v",
				seat, e.Seats[seat].Name(), mv, err))
		}
		if e.verbose && e.State.Round != round {
			log.Info().Msgf("round %d complete, first player next round: %s",
				round, e.State.Boards[e.State.FirstNext].Name)
		}
	}

	result := e.result()
	if e.verbose {
		log.Info().Msgf("game over after %d rounds, winner: %s", result.Rounds, result.Winner)
	}
	return result
}

// seatName is the strategy name, suffixed with the seat number when the
// same strategy occupies more than one seat.
func seatName(seats []strategy.Strategy, i int) string {
	name := seats[i].Name()
	dup := false
	for j, s := range seats {
		if j != i && s.Name() == name {
			dup = true
			break
		}
	}
	if dup {
		return fmt.Sprintf("%s-%d", name, i+1)
	}
	return name
}

func (e *Engine) result() MatchResult {
	result := MatchResult{
		Ranking: e.State.Rankings(),
		Rounds:  e.State.Round,
		Winner:  e.State.Winner(),
	}
	for _, b := range e.State.Boards {
		result.Participants = append(result.Participants, b.Name)
		result.Scores = append(result.Scores, b.Score)
	}
	return result
}
