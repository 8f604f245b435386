// Package experiments runs round-robin tournaments between strategies
// and turns the outcomes into rating tables and CSV reports.
package experiments

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"azul/engine"
	"azul/game"
	"azul/ratings"
	"azul/store"
)

// TournamentConfig describes one tournament run.
type TournamentConfig struct {
	Strategies []string // distinct strategy names, each pair plays
	Games      int      // matches per ordered pairing
	Mode       game.Mode
	Seed       uint64
	Workers    int          // 0 means GOMAXPROCS
	OutDir     string       // CSV reports, empty to skip
	Store      *store.Store // optional persistence
}

// Match is one finished tournament game plus its scheduling index.
type Match struct {
	Index  int
	Seed   uint64
	Result engine.MatchResult
}

// TournamentResult is everything a run produced.
type TournamentResult struct {
	Matches []Match
	Systems []ratings.System
	Elapsed time.Duration
}

type job struct {
	index      int
	seed       uint64
	strategies []string
}

// Run plays every pairing of the configured strategies the configured
// number of times. Matches run in parallel; rating updates are applied
// serially in scheduling order so a given seed always produces the same
// tables regardless of worker count.
func Run(ctx context.Context, cfg TournamentConfig) (*TournamentResult, error) {
	if len(cfg.Strategies) < 2 {
		return nil, fmt.Errorf("%w: tournament needs at least 2 strategies", game.ErrConfig)
	}
	if cfg.Games < 1 {
		return nil, fmt.Errorf("%w: games per pairing must be positive", game.ErrConfig)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	jobs := schedule(cfg)
	log.Info().Msgf("tournament: %d strategies, %d matches, %d workers",
		len(cfg.Strategies), len(jobs), workers)

	start := time.Now()
	matches, err := play(ctx, jobs, cfg, workers)
	if err != nil {
		return nil, err
	}

	result := &TournamentResult{
		Matches: matches,
		Systems: ratings.Systems(),
		Elapsed: time.Since(start),
	}
	for _, m := range result.Matches {
		for _, sys := range result.Systems {
			ratings.RecordMatch(sys, m.Result.Participants, m.Result.Ranking)
		}
	}

	if cfg.Store != nil {
		if err := persist(ctx, cfg, result); err != nil {
			return nil, err
		}
	}
	if cfg.OutDir != "" {
		if err := writeReports(cfg.OutDir, result); err != nil {
			return nil, err
		}
	}

	log.Info().Msgf("tournament finished in %s", result.Elapsed)
	return result, nil
}

// schedule lays out every pairing in both seat orders, Games times each,
// with a distinct derived seed per match.
func schedule(cfg TournamentConfig) []job {
	var jobs []job
	names := cfg.Strategies
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			for g := 0; g < cfg.Games; g++ {
				lineup := []string{names[i], names[j]}
				if g%2 == 1 {
					lineup = []string{names[j], names[i]}
				}
				jobs = append(jobs, job{
					index:      len(jobs),
					seed:       cfg.Seed + uint64(len(jobs)),
					strategies: lineup,
				})
			}
		}
	}
	return jobs
}

func play(ctx context.Context, jobs []job, cfg TournamentConfig, workers int) ([]Match, error) {
	jobCh := make(chan job)
	resultCh := make(chan Match)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				e, err := engine.New(engine.Config{
					Mode:       cfg.Mode,
					Seed:       j.seed,
					Strategies: j.strategies,
				})
				if err != nil {
					panic(fmt.Sprintf("scheduling produced a bad lineup: %v", err))
				}
				resultCh <- Match{Index: j.index, Seed: j.seed, Result: e.Run()}
			}
		}()
	}

	go func() {
		defer close(jobCh)
		for _, j := range jobs {
			select {
			case jobCh <- j:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	matches := make([]Match, 0, len(jobs))
	for m := range resultCh {
		matches = append(matches, m)
		if len(matches)%50 == 0 {
			log.Info().Msgf("played %d/%d matches", len(matches), len(jobs))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Index < matches[j].Index })
	return matches, nil
}

func persist(ctx context.Context, cfg TournamentConfig, result *TournamentResult) error {
	for _, m := range result.Matches {
		rec := store.MatchRecord{
			Mode:   cfg.Mode.String(),
			Rounds: m.Result.Rounds,
			Winner: m.Result.Winner,
		}
		for seat, name := range m.Result.Participants {
			rec.Players = append(rec.Players, store.PlayerRecord{
				Seat:     seat,
				Strategy: name,
				Score:    m.Result.Scores[seat],
				Rank:     m.Result.Ranking[seat],
			})
		}
		if _, err := cfg.Store.SaveMatch(ctx, rec); err != nil {
			return err
		}
	}
	for _, sys := range result.Systems {
		if err := cfg.Store.SaveRatings(ctx, sys.Name(), sys.Table()); err != nil {
			return err
		}
	}
	return nil
}
