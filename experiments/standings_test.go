package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"azul/engine"
)

func tournamentOf(results ...engine.MatchResult) *TournamentResult {
	r := &TournamentResult{}
	for i, res := range results {
		r.Matches = append(r.Matches, Match{Index: i, Result: res})
	}
	return r
}

func TestStandings(t *testing.T) {
	r := tournamentOf(
		engine.MatchResult{
			Participants: []string{"dummy", "greedy"},
			Scores:       []int{30, 50},
			Ranking:      []int{2, 1},
			Winner:       "greedy",
		},
		engine.MatchResult{
			Participants: []string{"greedy", "dummy"},
			Scores:       []int{40, 40},
			Ranking:      []int{1, 1},
			Winner:       "greedy",
		},
	)

	standings := r.Standings()
	require.Equal(t, []Standing{
		{Strategy: "greedy", Wins: 1, Draws: 1, Losses: 0, AvgScore: 45},
		{Strategy: "dummy", Wins: 0, Draws: 1, Losses: 1, AvgScore: 35},
	}, standings)
}

func TestMatchups(t *testing.T) {
	r := tournamentOf(
		engine.MatchResult{
			Participants: []string{"dummy", "greedy"},
			Ranking:      []int{2, 1},
		},
		engine.MatchResult{
			Participants: []string{"greedy", "dummy"},
			Ranking:      []int{1, 2},
		},
		engine.MatchResult{
			Participants: []string{"smart", "dummy"},
			Ranking:      []int{1, 1},
		},
	)

	require.Equal(t, []Matchup{
		{A: "dummy", B: "greedy", AWins: 0, Draws: 0, BWins: 2},
		{A: "dummy", B: "smart", AWins: 0, Draws: 1, BWins: 0},
	}, r.Matchups())
}
