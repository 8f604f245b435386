// Package store persists match results and rating tables in a local
// sqlite database so tournament runs accumulate across invocations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"azul/ratings"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id         TEXT PRIMARY KEY,
	played_at  TIMESTAMP NOT NULL,
	mode       TEXT NOT NULL,
	rounds     INTEGER NOT NULL,
	winner     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS match_players (
	match_id  TEXT NOT NULL REFERENCES matches(id),
	seat      INTEGER NOT NULL,
	strategy  TEXT NOT NULL,
	score     INTEGER NOT NULL,
	rank      INTEGER NOT NULL,
	PRIMARY KEY (match_id, seat)
);

CREATE TABLE IF NOT EXISTS player_ratings (
	system     TEXT NOT NULL,
	player     TEXT NOT NULL,
	rating     REAL NOT NULL,
	games      INTEGER NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (system, player)
);
`

// MatchRecord is one finished game.
type MatchRecord struct {
	ID       string
	PlayedAt time.Time
	Mode     string
	Rounds   int
	Winner   string
	Players  []PlayerRecord
}

// PlayerRecord is one seat's outcome within a match.
type PlayerRecord struct {
	Seat     int
	Strategy string
	Score    int
	Rank     int
}

// Store wraps the sqlite connection.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and runs the
// schema migration. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// modernc sqlite connections do not share in-memory state.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveMatch inserts a match and its per-seat rows in one transaction.
// A missing ID or timestamp is filled in.
func (s *Store) SaveMatch(ctx context.Context, rec MatchRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO matches (id, played_at, mode, rounds, winner) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.PlayedAt, rec.Mode, rec.Rounds, rec.Winner)
	if err != nil {
		return "", fmt.Errorf("inserting match: %w", err)
	}
	for _, p := range rec.Players {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO match_players (match_id, seat, strategy, score, rank) VALUES (?, ?, ?, ?, ?)`,
			rec.ID, p.Seat, p.Strategy, p.Score, p.Rank)
		if err != nil {
			return "", fmt.Errorf("inserting match player: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing match: %w", err)
	}
	return rec.ID, nil
}

// SaveRatings upserts a system's full rating table.
func (s *Store) SaveRatings(ctx context.Context, system string, table []ratings.Standing) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, row := range table {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO player_ratings (system, player, rating, games, updated_at)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (system, player) DO UPDATE SET
			   rating = excluded.rating, games = excluded.games, updated_at = excluded.updated_at`,
			system, row.Player, row.Rating, row.Games, now)
		if err != nil {
			return fmt.Errorf("upserting rating for %s/%s: %w", system, row.Player, err)
		}
	}
	return tx.Commit()
}

// Ratings loads a system's stored table, best rating first.
func (s *Store) Ratings(ctx context.Context, system string) ([]ratings.Standing, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player, rating, games FROM player_ratings
		 WHERE system = ? ORDER BY rating DESC, player`, system)
	if err != nil {
		return nil, fmt.Errorf("querying ratings: %w", err)
	}
	defer rows.Close()

	var table []ratings.Standing
	for rows.Next() {
		var row ratings.Standing
		if err := rows.Scan(&row.Player, &row.Rating, &row.Games); err != nil {
			return nil, fmt.Errorf("scanning rating row: %w", err)
		}
		table = append(table, row)
	}
	return table, rows.Err()
}

// Matches loads the most recent matches, newest first.
func (s *Store) Matches(ctx context.Context, limit int) ([]MatchRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, played_at, mode, rounds, winner FROM matches
		 ORDER BY played_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	var recs []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		if err := rows.Scan(&rec.ID, &rec.PlayedAt, &rec.Mode, &rec.Rounds, &rec.Winner); err != nil {
			return nil, fmt.Errorf("scanning match row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range recs {
		if err := s.loadPlayers(ctx, &recs[i]); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func (s *Store) loadPlayers(ctx context.Context, rec *MatchRecord) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seat, strategy, score, rank FROM match_players
		 WHERE match_id = ? ORDER BY seat`, rec.ID)
	if err != nil {
		return fmt.Errorf("querying match players: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p PlayerRecord
		if err := rows.Scan(&p.Seat, &p.Strategy, &p.Score, &p.Rank); err != nil {
			return fmt.Errorf("scanning player row: %w", err)
		}
		rec.Players = append(rec.Players, p)
	}
	return rows.Err()
}
