package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"azul/engine"
	"azul/experiments"
	"azul/game"
	"azul/ratings"
	"azul/store"
	"azul/tui"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "play":
		err = runPlay(os.Args[2:])
	case "simulate":
		err = runSimulate(os.Args[2:])
	case "ratings":
		err = runRatings(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: azul <command> [flags]

commands:
  play      play an interactive game against computer opponents
  simulate  run a strategy tournament
  ratings   print stored rating tables
`)
}

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	mode := fs.String("mode", "pattern", "wall layout: pattern or free")
	seed := fs.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	name := fs.String("name", "you", "your player name")
	opponents := fs.String("opponents", "strategic", "comma-separated opponent strategies")
	fs.Parse(args)

	m, err := game.ParseMode(*mode)
	if err != nil {
		return err
	}
	return tui.Play(tui.Config{
		Mode:      m,
		Seed:      *seed,
		Human:     *name,
		Opponents: splitNames(*opponents),
	})
}

func runSimulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	mode := fs.String("mode", "pattern", "wall layout: pattern or free")
	seed := fs.Uint64("seed", 1, "base random seed")
	names := fs.String("strategies", strings.Join(strategyDefaults, ","), "comma-separated strategies")
	games := fs.Int("games", 20, "games per pairing")
	workers := fs.Int("workers", 0, "parallel matches, 0 for all cores")
	out := fs.String("out", "", "directory for CSV reports")
	dbPath := fs.String("db", "", "sqlite database for results, empty to skip")
	single := fs.Bool("single", false, "play one verbose game instead of a tournament")
	fs.Parse(args)

	m, err := game.ParseMode(*mode)
	if err != nil {
		return err
	}
	lineup := splitNames(*names)

	if *single {
		e, err := engine.New(engine.Config{
			Mode: m, Seed: *seed, Strategies: lineup, Verbose: true,
		})
		if err != nil {
			return err
		}
		result := e.Run()
		for i, p := range result.Participants {
			fmt.Printf("%-12s %4d pts (rank %d)\n", p, result.Scores[i], result.Ranking[i])
		}
		return nil
	}

	cfg := experiments.TournamentConfig{
		Strategies: lineup,
		Games:      *games,
		Mode:       m,
		Seed:       *seed,
		Workers:    *workers,
		OutDir:     *out,
	}
	if *dbPath != "" {
		db, err := store.Open(*dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		cfg.Store = db
	}

	result, err := experiments.Run(context.Background(), cfg)
	if err != nil {
		return err
	}
	fmt.Println(result.Summary())
	for _, sys := range result.Systems {
		fmt.Println(ratings.Render(sys))
	}
	return nil
}

func runRatings(args []string) error {
	fs := flag.NewFlagSet("ratings", flag.ExitOnError)
	dbPath := fs.String("db", "azul.db", "sqlite database with stored results")
	fs.Parse(args)

	db, err := store.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	for _, sys := range ratings.Systems() {
		table, err := db.Ratings(ctx, sys.Name())
		if err != nil {
			return err
		}
		if len(table) == 0 {
			continue
		}
		fmt.Printf("%s\n%-12s %10s %7s\n", strings.ToUpper(sys.Name()), "player", "rating", "games")
		for _, row := range table {
			fmt.Printf("%-12s %10.1f %7d\n", row.Player, row.Rating, row.Games)
		}
		fmt.Println()
	}
	return nil
}

var strategyDefaults = []string{"dummy", "greedy", "smart", "strategic", "minmax"}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
