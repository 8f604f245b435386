// Package ratings scores strategies against each other from match
// outcomes. All three systems consume the same pairwise stream: every
// match is decomposed into head-to-head results and fed to each system
// in order, so ratings stay deterministic for a given match sequence.
package ratings

import (
	"fmt"
	"sort"
	"strings"
)

// Outcome is a pairwise result from the first player's perspective.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

// Score is the conventional numeric value of an outcome: 1, 0.5, 0.
func (o Outcome) Score() float64 {
	switch o {
	case Win:
		return 1
	case Draw:
		return 0.5
	}
	return 0
}

func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Loss
	case Loss:
		return Win
	}
	return Draw
}

// Standing is one row of a rating table.
type Standing struct {
	Player string
	Rating float64
	Games  int
}

// System turns a stream of pairwise outcomes into a rating per player.
// Record must be called once per ordered pair per match.
type System interface {
	Name() string
	Record(a, b string, outcome Outcome)
	Table() []Standing
}

// Systems builds one instance of every rating system.
func Systems() []System {
	return []System{NewElo(), NewGlicko2(), NewTrueSkill()}
}

// RecordMatch decomposes a full match into ordered pairs and feeds them
// to the system. Rankings are 1-based and aligned with participants.
func RecordMatch(s System, participants []string, ranking []int) {
	for i := range participants {
		for j := i + 1; j < len(participants); j++ {
			outcome := Draw
			switch {
			case ranking[i] < ranking[j]:
				outcome = Win
			case ranking[i] > ranking[j]:
				outcome = Loss
			}
			s.Record(participants[i], participants[j], outcome)
		}
	}
}

// sortStandings orders a table by rating descending, name as tie-break.
func sortStandings(table []Standing) []Standing {
	sort.Slice(table, func(i, j int) bool {
		if table[i].Rating != table[j].Rating {
			return table[i].Rating > table[j].Rating
		}
		return table[i].Player < table[j].Player
	})
	return table
}

// Render formats a system's table for terminal output.
func Render(s System) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", strings.ToUpper(s.Name()))
	fmt.Fprintf(&b, "%-12s %10s %7s\n", "player", "rating", "games")
	for _, row := range s.Table() {
		fmt.Fprintf(&b, "%-12s %10.1f %7d\n", row.Player, row.Rating, row.Games)
	}
	return b.String()
}
