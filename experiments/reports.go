package experiments

import (
	"azul/experiments/metrics"
)

func writeReports(dir string, result *TournamentResult) error {
	rows := make([]metrics.MatchRow, len(result.Matches))
	for i, m := range result.Matches {
		rows[i] = metrics.MatchRow{
			Index:        m.Index,
			Seed:         m.Seed,
			Participants: m.Result.Participants,
			Scores:       m.Result.Scores,
			Rounds:       m.Result.Rounds,
			Winner:       m.Result.Winner,
		}
	}
	if err := metrics.WriteMatches(dir, rows); err != nil {
		return err
	}
	var summary []metrics.SummaryRow
	for _, s := range result.Standings() {
		summary = append(summary, metrics.SummaryRow{
			Strategy: s.Strategy,
			Wins:     s.Wins,
			Draws:    s.Draws,
			Losses:   s.Losses,
			AvgScore: s.AvgScore,
		})
	}
	if err := metrics.WriteSummary(dir, summary); err != nil {
		return err
	}
	for _, sys := range result.Systems {
		if err := metrics.WriteStandings(dir, sys.Name(), sys.Table()); err != nil {
			return err
		}
	}
	return nil
}
