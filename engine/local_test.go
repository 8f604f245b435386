package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"azul/game"
)

func TestNew(t *testing.T) {
	t.Run("rejects lineups outside 2..5 seats", func(t *testing.T) {
		_, err := New(Config{Strategies: []string{"dummy"}})
		require.ErrorIs(t, err, game.ErrConfig)

		_, err = New(Config{Strategies: []string{"dummy", "dummy", "dummy", "dummy", "dummy", "dummy"}})
		require.ErrorIs(t, err, game.ErrConfig)
	})

	t.Run("rejects unknown strategies", func(t *testing.T) {
		_, err := New(Config{Strategies: []string{"dummy", "alphazero"}})
		require.ErrorIs(t, err, game.ErrConfig)
	})

	t.Run("names seats after their strategies", func(t *testing.T) {
		e, err := New(Config{Seed: 1, Strategies: []string{"dummy", "greedy"}})
		require.NoError(t, err)
		require.Equal(t, "dummy", e.State.Boards[0].Name)
		require.Equal(t, "greedy", e.State.Boards[1].Name)
	})

	t.Run("duplicate strategies get seat-numbered names", func(t *testing.T) {
		e, err := New(Config{Seed: 1, Strategies: []string{"dummy", "greedy", "dummy"}})
		require.NoError(t, err)
		require.Equal(t, "dummy-1", e.State.Boards[0].Name)
		require.Equal(t, "greedy", e.State.Boards[1].Name)
		require.Equal(t, "dummy-3", e.State.Boards[2].Name)
	})
}

func TestRun(t *testing.T) {
	t.Run("plays a two seat game to the end", func(t *testing.T) {
		e, err := New(Config{Seed: 7, Strategies: []string{"dummy", "greedy"}})
		require.NoError(t, err)

		result := e.Run()

		require.True(t, e.State.Over())
		require.Equal(t, []string{"dummy", "greedy"}, result.Participants)
		require.Len(t, result.Scores, 2)
		for _, s := range result.Scores {
			require.GreaterOrEqual(t, s, 0)
		}
		require.Contains(t, result.Participants, result.Winner)
		require.GreaterOrEqual(t, result.Rounds, 1)
		for i, rank := range result.Ranking {
			require.GreaterOrEqual(t, rank, 1)
			require.LessOrEqual(t, rank, 2)
			if result.Participants[i] == result.Winner {
				require.Equal(t, 1, rank)
			}
		}
	})

	t.Run("same seed gives the same result", func(t *testing.T) {
		run := func() MatchResult {
			e, err := New(Config{Seed: 13, Strategies: []string{"smart", "strategic"}})
			require.NoError(t, err)
			return e.Run()
		}
		require.Equal(t, run(), run())
	})

	t.Run("free mode games terminate too", func(t *testing.T) {
		e, err := New(Config{Mode: game.ModeFree, Seed: 19, Strategies: []string{"greedy", "smart"}})
		require.NoError(t, err)

		result := e.Run()
		require.True(t, e.State.Over())
		require.NotEmpty(t, result.Winner)
	})
}
