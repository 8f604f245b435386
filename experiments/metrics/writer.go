// Package metrics writes tournament reports as CSV files.
package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"azul/ratings"
)

// MatchRow is one match flattened for CSV output.
type MatchRow struct {
	Index        int
	Seed         uint64
	Participants []string
	Scores       []int
	Rounds       int
	Winner       string
}

// WriteMatches writes one row per match to dir/matches.csv.
func WriteMatches(dir string, rows []MatchRow) error {
	f, err := create(dir, "matches.csv")
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"match", "seed", "participants", "scores", "rounds", "winner"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		scores := make([]string, len(row.Scores))
		for i, s := range row.Scores {
			scores[i] = strconv.Itoa(s)
		}
		record := []string{
			strconv.Itoa(row.Index),
			strconv.FormatUint(row.Seed, 10),
			strings.Join(row.Participants, "|"),
			strings.Join(scores, "|"),
			strconv.Itoa(row.Rounds),
			row.Winner,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing match row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteStandings writes a rating system's table to dir/<system>.csv.
func WriteStandings(dir, system string, table []ratings.Standing) error {
	f, err := create(dir, system+".csv")
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"player", "rating", "games"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range table {
		record := []string{
			row.Player,
			strconv.FormatFloat(row.Rating, 'f', 2, 64),
			strconv.Itoa(row.Games),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing standing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// SummaryRow is one strategy's aggregated tournament record.
type SummaryRow struct {
	Strategy string
	Wins     int
	Draws    int
	Losses   int
	AvgScore float64
}

// WriteSummary writes the win/draw/loss table to dir/summary.csv.
func WriteSummary(dir string, rows []SummaryRow) error {
	f, err := create(dir, "summary.csv")
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"strategy", "wins", "draws", "losses", "avg_score"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Strategy,
			strconv.Itoa(row.Wins),
			strconv.Itoa(row.Draws),
			strconv.Itoa(row.Losses),
			strconv.FormatFloat(row.AvgScore, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func create(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return f, nil
}
