package experiments

import (
	"fmt"
	"sort"
	"strings"
)

// Standing aggregates one strategy's tournament record.
type Standing struct {
	Strategy string
	Wins     int
	Draws    int
	Losses   int
	AvgScore float64
}

// Matchup is a head-to-head tally between two strategies, counted from
// A's side.
type Matchup struct {
	A, B  string
	AWins int
	Draws int
	BWins int
}

// Standings tallies pairwise wins, draws and losses plus each strategy's
// average match score.
func (r *TournamentResult) Standings() []Standing {
	byName := map[string]*Standing{}
	games := map[string]int{}
	get := func(name string) *Standing {
		s, ok := byName[name]
		if !ok {
			s = &Standing{Strategy: name}
			byName[name] = s
		}
		return s
	}

	for _, m := range r.Matches {
		for i, name := range m.Result.Participants {
			get(name).AvgScore += float64(m.Result.Scores[i])
			games[name]++
			for j, other := range m.Result.Participants {
				if j <= i {
					continue
				}
				switch {
				case m.Result.Ranking[i] < m.Result.Ranking[j]:
					get(name).Wins++
					get(other).Losses++
				case m.Result.Ranking[i] > m.Result.Ranking[j]:
					get(name).Losses++
					get(other).Wins++
				default:
					get(name).Draws++
					get(other).Draws++
				}
			}
		}
	}

	standings := make([]Standing, 0, len(byName))
	for name, s := range byName {
		if n := games[name]; n > 0 {
			s.AvgScore /= float64(n)
		}
		standings = append(standings, *s)
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Strategy < standings[j].Strategy
	})
	return standings
}

// Matchups tallies every head-to-head pairing, ordered by the pair names.
func (r *TournamentResult) Matchups() []Matchup {
	type key struct{ a, b string }
	byPair := map[key]*Matchup{}

	for _, m := range r.Matches {
		ps := m.Result.Participants
		for i := range ps {
			for j := i + 1; j < len(ps); j++ {
				a, b, ri, rj := ps[i], ps[j], m.Result.Ranking[i], m.Result.Ranking[j]
				if a > b {
					a, b, ri, rj = b, a, rj, ri
				}
				k := key{a, b}
				mu, ok := byPair[k]
				if !ok {
					mu = &Matchup{A: a, B: b}
					byPair[k] = mu
				}
				switch {
				case ri < rj:
					mu.AWins++
				case ri > rj:
					mu.BWins++
				default:
					mu.Draws++
				}
			}
		}
	}

	matchups := make([]Matchup, 0, len(byPair))
	for _, mu := range byPair {
		matchups = append(matchups, *mu)
	}
	sort.Slice(matchups, func(i, j int) bool {
		if matchups[i].A != matchups[j].A {
			return matchups[i].A < matchups[j].A
		}
		return matchups[i].B < matchups[j].B
	})
	return matchups
}

// Summary formats standings and matchups for terminal output.
func (r *TournamentResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %5s %5s %5s %9s\n", "strategy", "won", "drew", "lost", "avg score")
	for _, s := range r.Standings() {
		fmt.Fprintf(&b, "%-12s %5d %5d %5d %9.1f\n", s.Strategy, s.Wins, s.Draws, s.Losses, s.AvgScore)
	}
	b.WriteString("\n")
	for _, mu := range r.Matchups() {
		fmt.Fprintf(&b, "%s vs %s: %d-%d-%d\n", mu.A, mu.B, mu.AWins, mu.Draws, mu.BWins)
	}
	return b.String()
}
