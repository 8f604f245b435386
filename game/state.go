package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/rand"
)

type Mode int

const (
	ModePattern Mode = iota
	ModeFree
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case "pattern":
		return ModePattern, nil
	case "free":
		return ModeFree, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrConfig, s)
}

func (m Mode) String() string {
	if m == ModeFree {
		return "free"
	}
	return "pattern"
}

type Phase int

const (
	PhaseDraft Phase = iota
	PhaseWallTiling
	PhaseFinalScoring
	PhaseGameOver
)

// Config is everything needed to build a game.
type Config struct {
	Players int
	Mode    Mode
	Seed    uint64
}

// GameState owns the bag, discard, sources and boards of one match. It is
// the single source of truth; strategies simulate on copies only.
type GameState struct {
	Mode     Mode
	Bag      []Color
	Discard  []Color
	Displays [][]Color
	Pool     []Color
	Boards   []*Board

	Round        int
	Current      int
	FirstNext    int // marker holder, first player of the next round
	MarkerInPool bool
	Phase        Phase

	rng *rand.Rand
}

// NewGame validates the config, fills the bag, and deals the first round.
func NewGame(cfg Config) (*GameState, error) {
	if cfg.Players < 2 || cfg.Players > 5 {
		return nil, fmt.Errorf("%w: player count %d not in 2..5", ErrConfig, cfg.Players)
	}

	g := &GameState{
		Mode:     cfg.Mode,
		Displays: make([][]Color, 2*cfg.Players+1),
		Round:    1,
		Phase:    PhaseDraft,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
	}
	for i := 0; i < cfg.Players; i++ {
		g.Boards = append(g.Boards, NewBoard(fmt.Sprintf("Player %d", i+1)))
	}
	for _, c := range Colors() {
		for i := 0; i < TilesPerColor; i++ {
			g.Bag = append(g.Bag, c)
		}
	}
	g.shuffleBag()
	g.refillDisplays()
	g.checkConservation()
	return g, nil
}

// Copy deep-copies the state for simulation. The clone gets its own random
// source seeded from the state hash, so search branches never drain the
// live game's randomness and a given position always simulates the same.
func (g *GameState) Copy() *GameState {
	ng := &GameState{
		Mode:         g.Mode,
		Bag:          append([]Color(nil), g.Bag...),
		Discard:      append([]Color(nil), g.Discard...),
		Displays:     make([][]Color, len(g.Displays)),
		Pool:         append([]Color(nil), g.Pool...),
		Boards:       make([]*Board, len(g.Boards)),
		Round:        g.Round,
		Current:      g.Current,
		FirstNext:    g.FirstNext,
		MarkerInPool: g.MarkerInPool,
		Phase:        g.Phase,
	}
	for i, d := range g.Displays {
		ng.Displays[i] = append([]Color(nil), d...)
	}
	for i, b := range g.Boards {
		ng.Boards[i] = b.Copy()
	}
	ng.rng = rand.New(rand.NewSource(uint64(g.Hash())))
	return ng
}

// Apply executes one draft move for the current player and advances the
// turn. When the draft phase is exhausted it runs wall tiling, scoring and
// either the next round's deal or final scoring. An illegal move returns
// ErrInvalidMove and leaves the state untouched.
func (g *GameState) Apply(mv Move) error {
	if g.Phase != PhaseDraft {
		return fmt.Errorf("%w: no drafting in phase %d", ErrInvalidMove, g.Phase)
	}
	if !g.Legal(mv) {
		return fmt.Errorf("%w: source %d color %s line %d", ErrInvalidMove, mv.Source, mv.Color, mv.Line)
	}

	board := g.Boards[g.Current]
	taken, marker, err := g.draft(mv.Source, mv.Color)
	if err != nil {
		return err
	}
	if marker {
		g.FirstNext = g.Current
		board.addToFloor(Marker, 1, &g.Discard)
	}
	board.placeTiles(mv.Line, mv.Color, taken, &g.Discard)

	g.Current = (g.Current + 1) % len(g.Boards)
	if g.draftDone() {
		g.finishRound()
	}
	return nil
}

// draftDone reports whether no draftable tiles remain anywhere. A pool
// holding only the marker does not keep the phase alive.
func (g *GameState) draftDone() bool {
	for _, d := range g.Displays {
		if len(d) > 0 {
			return false
		}
	}
	for _, c := range g.Pool {
		if c != Marker {
			return false
		}
	}
	return true
}

// finishRound runs the wall-tiling phase, applies floor penalties, and
// transitions to final scoring or the next round.
func (g *GameState) finishRound() {
	g.Phase = PhaseWallTiling
	for _, b := range g.Boards {
		g.tileWall(b)
		b.Score -= FloorPenalty(len(b.Floor))
		if b.Score < 0 {
			b.Score = 0
		}
		for _, c := range b.Floor {
			if c != Marker {
				g.Discard = append(g.Discard, c)
			}
		}
		b.Floor = b.Floor[:0]
	}
	// Leftover marker in the pool goes back to the neutral holder too.
	if g.MarkerInPool {
		g.Pool = g.Pool[:0]
		g.MarkerInPool = false
	}
	g.checkConservation()

	for _, b := range g.Boards {
		if b.CompletedRows() > 0 {
			g.finalScore()
			return
		}
	}

	g.Round++
	g.Current = g.FirstNext
	g.refillDisplays()
	g.Phase = PhaseDraft
	g.checkConservation()
	if g.draftDone() {
		// Bag and discard are both exhausted; nothing is left to draft,
		// so the match ends on the current standings.
		g.finalScore()
	}
}

func (g *GameState) finalScore() {
	g.Phase = PhaseFinalScoring
	for _, b := range g.Boards {
		b.Score += b.EndGameBonus()
	}
	g.Phase = PhaseGameOver
}

// tileWall moves one tile from each complete pattern line to the wall and
// scores the placement; the rest of the line is discarded. In free mode a
// line with no legal column dumps onto the floor instead.
func (g *GameState) tileWall(b *Board) {
	for line := 0; line < WallSize; line++ {
		if len(b.Lines[line]) != LineCapacity(line) {
			continue
		}
		c := b.Lines[line][0]

		col := PatternColumn(line, c)
		if g.Mode == ModeFree {
			col = b.freeColumn(line, c)
			if col < 0 {
				for range b.Lines[line] {
					b.addToFloor(c, 1, &g.Discard)
				}
				b.Lines[line] = b.Lines[line][:0]
				continue
			}
		}
		if b.Wall[line][col] != NoColor {
			panic(fmt.Sprintf("wall cell (%d,%d) already tiled", line, col))
		}

		b.Wall[line][col] = c
		b.Score += b.PlacementScore(line, col)
		for i := 1; i < len(b.Lines[line]); i++ {
			g.Discard = append(g.Discard, c)
		}
		b.Lines[line] = b.Lines[line][:0]
	}
}

// Census counts tiles of each color across bag, discard, sources and
// boards. Every entry equals TilesPerColor for the whole match.
func (g *GameState) Census() [NumColors]int {
	var census [NumColors]int
	add := func(tiles []Color) {
		for _, c := range tiles {
			if c != Marker {
				census[c]++
			}
		}
	}
	add(g.Bag)
	add(g.Discard)
	add(g.Pool)
	for _, d := range g.Displays {
		add(d)
	}
	for _, b := range g.Boards {
		for _, line := range b.Lines {
			add(line)
		}
		add(b.Floor)
		for row := 0; row < WallSize; row++ {
			for col := 0; col < WallSize; col++ {
				if b.Wall[row][col] != NoColor {
					census[b.Wall[row][col]]++
				}
			}
		}
	}
	return census
}

// checkConservation panics when the per-color tile total drifts. That is
// an engine bug, never a recoverable condition.
func (g *GameState) checkConservation() {
	for c, n := range g.Census() {
		if n != TilesPerColor {
			panic(fmt.Sprintf("tile conservation broken: color %s has %d tiles", Color(c), n))
		}
	}
}

// Over reports whether the game has reached its terminal state.
func (g *GameState) Over() bool {
	return g.Phase == PhaseGameOver
}

// Rankings returns each board's rank (1-based), ordered like Boards.
// Higher score wins; ties break on completed rows; full ties share a rank.
func (g *GameState) Rankings() []int {
	type standing struct{ score, rows int }
	standings := make([]standing, len(g.Boards))
	for i, b := range g.Boards {
		standings[i] = standing{b.Score, b.CompletedRows()}
	}
	ranks := make([]int, len(g.Boards))
	for i, s := range standings {
		rank := 1
		for j, o := range standings {
			if j == i {
				continue
			}
			if o.score > s.score || (o.score == s.score && o.rows > s.rows) {
				rank++
			}
		}
		ranks[i] = rank
	}
	return ranks
}

// Winner names the top-ranked player, or "" while the game is running.
func (g *GameState) Winner() string {
	if !g.Over() {
		return ""
	}
	for i, rank := range g.Rankings() {
		if rank == 1 {
			return g.Boards[i].Name
		}
	}
	return ""
}

// Hash folds the dynamic state into a 64-bit fingerprint.
func (g *GameState) Hash() uint64 {
	h := fnv.New64a()
	write := func(v int64) {
		binary.Write(h, binary.LittleEndian, v)
	}
	write(int64(g.Mode))
	write(int64(g.Round))
	write(int64(g.Current))
	write(int64(g.FirstNext))
	write(int64(g.Phase))
	hashTiles := func(tiles []Color) {
		write(int64(len(tiles)))
		for _, c := range tiles {
			write(int64(c))
		}
	}
	hashTiles(g.Bag)
	hashTiles(g.Discard)
	hashTiles(g.Pool)
	for _, d := range g.Displays {
		hashTiles(d)
	}
	for _, b := range g.Boards {
		write(int64(b.Score))
		for _, line := range b.Lines {
			hashTiles(line)
		}
		hashTiles(b.Floor)
		for row := 0; row < WallSize; row++ {
			for col := 0; col < WallSize; col++ {
				write(int64(b.Wall[row][col]))
			}
		}
	}
	return h.Sum64()
}
