package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"azul/game"
)

func TestNew(t *testing.T) {
	t.Run("builds every named strategy", func(t *testing.T) {
		for _, name := range Names {
			s, err := New(name)
			require.NoError(t, err)
			require.Equal(t, name, s.Name())
		}
	})

	t.Run("unknown name is a config error", func(t *testing.T) {
		_, err := New("alphazero")
		require.ErrorIs(t, err, game.ErrConfig)
	})
}

func TestFill(t *testing.T) {
	g := &game.GameState{
		Displays: [][]game.Color{{game.Blue, game.Blue, game.Blue, game.Red}},
		Boards:   []*game.Board{game.NewBoard("a")},
	}

	placed, floored := fill(g, game.Move{Source: 0, Color: game.Blue, Line: 0})
	require.Equal(t, 1, placed, "line 1 holds a single tile")
	require.Equal(t, 2, floored)

	placed, floored = fill(g, game.Move{Source: 0, Color: game.Blue, Line: 3})
	require.Equal(t, 3, placed)
	require.Equal(t, 0, floored)

	placed, floored = fill(g, game.Move{Source: 0, Color: game.Blue, Line: game.FloorLine})
	require.Equal(t, 0, placed)
	require.Equal(t, 3, floored)
}

func TestDummy(t *testing.T) {
	g, err := game.NewGame(game.Config{Players: 2, Seed: 1})
	require.NoError(t, err)
	moves := g.LegalMoves()

	mv := Dummy{}.SelectMove(g, moves)

	maxLine := -1
	for _, m := range moves {
		if m.Line > maxLine {
			maxLine = m.Line
		}
	}
	require.Equal(t, maxLine, mv.Line, "dummy targets the deepest available line")
}

func TestGreedy(t *testing.T) {
	g, err := game.NewGame(game.Config{Players: 2, Seed: 2})
	require.NoError(t, err)
	moves := g.LegalMoves()

	mv := Greedy{}.SelectMove(g, moves)

	placed, floored := fill(g, mv)
	best := placed - floored
	for _, m := range moves {
		p, f := fill(g, m)
		require.LessOrEqual(t, p-f, best, "no move nets more tiles than %+v", mv)
	}
}

func TestSmart(t *testing.T) {
	t.Run("prefers building next to walled tiles", func(t *testing.T) {
		g := &game.GameState{
			Mode:     game.ModePattern,
			Displays: [][]game.Color{{game.Blue, game.Yellow}},
			Boards:   []*game.Board{game.NewBoard("a"), game.NewBoard("b")},
			Round:    2,
		}
		// A walled tile next to blue's first-row cell.
		g.Boards[0].Wall[0][1] = game.Yellow
		moves := g.LegalMoves()

		mv := Smart{}.SelectMove(g, moves)

		require.Equal(t, game.Move{Source: 0, Color: game.Blue, Line: 0}, mv)
	})
}

func TestStrategic(t *testing.T) {
	t.Run("claims the diagonal in the first round", func(t *testing.T) {
		g := &game.GameState{
			Mode:     game.ModePattern,
			Displays: [][]game.Color{{game.Blue, game.Yellow}},
			Boards:   []*game.Board{game.NewBoard("a"), game.NewBoard("b")},
			Round:    1,
		}
		moves := g.LegalMoves()

		mv := Strategic{}.SelectMove(g, moves)

		// Blue on line 1 lands on the diagonal with no whitespace; yellow
		// cannot reach the diagonal anywhere.
		require.Equal(t, game.Move{Source: 0, Color: game.Blue, Line: 0}, mv)
	})

	t.Run("ignores the diagonal after the first round", func(t *testing.T) {
		g := &game.GameState{
			Mode:     game.ModePattern,
			Displays: [][]game.Color{{game.Blue, game.Blue, game.Yellow}},
			Boards:   []*game.Board{game.NewBoard("a"), game.NewBoard("b")},
			Round:    2,
		}
		moves := g.LegalMoves()

		mv := Strategic{}.SelectMove(g, moves)

		// Two blues fill line 2 exactly; the diagonal line 1 would waste one.
		require.Equal(t, game.Move{Source: 0, Color: game.Blue, Line: 1}, mv)
	})
}

func TestMinmax(t *testing.T) {
	t.Run("returns a legal move on the opening position", func(t *testing.T) {
		g, err := game.NewGame(game.Config{Players: 2, Seed: 4})
		require.NoError(t, err)
		moves := g.LegalMoves()

		mv := NewMinmax(WithDepth(1)).SelectMove(g, moves)

		require.Contains(t, moves, mv)
		require.NotEqual(t, game.FloorLine, mv.Line,
			"no opening reason to dump tiles on the floor")
	})

	t.Run("selection is deterministic", func(t *testing.T) {
		g, err := game.NewGame(game.Config{Players: 2, Seed: 4})
		require.NoError(t, err)
		m := NewMinmax(WithDepth(1))

		first := m.SelectMove(g, g.LegalMoves())
		second := m.SelectMove(g, g.LegalMoves())

		require.Equal(t, first, second)
	})

	t.Run("does not mutate the live state", func(t *testing.T) {
		g, err := game.NewGame(game.Config{Players: 2, Seed: 4})
		require.NoError(t, err)
		before := g.Hash()

		NewMinmax(WithDepth(1)).SelectMove(g, g.LegalMoves())

		require.Equal(t, before, g.Hash())
	})

	t.Run("denies the opponent a completion among equally good own moves", func(t *testing.T) {
		g := &game.GameState{
			Mode: game.ModePattern,
			Displays: [][]game.Color{
				{game.Blue, game.Blue},
				{game.Yellow, game.Yellow},
				{game.Red, game.Red},
				{game.White, game.White, game.White, game.White},
			},
			Pool:         []game.Color{game.Marker},
			MarkerInPool: true,
			Boards:       []*game.Board{game.NewBoard("a"), game.NewBoard("b")},
			Round:        2,
		}
		// Blue, yellow and red each fill our second line for the same
		// point; only taking the blues stops the opponent from finishing
		// its nearly complete fifth line.
		g.Boards[1].Lines[4] = []game.Color{game.Blue, game.Blue, game.Blue}

		m := NewMinmax(WithDepth(1), WithModels([]Strategy{nil, Dummy{}}))
		mv := m.SelectMove(g, g.LegalMoves())

		require.Equal(t, game.Move{Source: 0, Color: game.Blue, Line: 1}, mv)
	})

	t.Run("minmax models are replaced to avoid recursion", func(t *testing.T) {
		inner := NewMinmax()
		m := NewMinmax(WithModels([]Strategy{inner, Greedy{}, nil}))

		require.IsType(t, Strategic{}, m.model(0), "a minmax model would recurse")
		require.Equal(t, Greedy{}, m.model(1))
		require.IsType(t, Strategic{}, m.model(2), "unmodeled seats fall back to strategic")
		require.IsType(t, Strategic{}, m.model(7), "out of range seats fall back to strategic")
	})
}
