package ratings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recorded struct {
	a, b    string
	outcome Outcome
}

type recordingSystem struct {
	calls []recorded
}

func (*recordingSystem) Name() string      { return "recording" }
func (*recordingSystem) Table() []Standing { return nil }
func (r *recordingSystem) Record(a, b string, outcome Outcome) {
	r.calls = append(r.calls, recorded{a, b, outcome})
}

func TestRecordMatch(t *testing.T) {
	sys := &recordingSystem{}

	RecordMatch(sys, []string{"a", "b", "c"}, []int{1, 2, 2})

	require.Equal(t, []recorded{
		{"a", "b", Win},
		{"a", "c", Win},
		{"b", "c", Draw},
	}, sys.calls)
}

func TestOutcome(t *testing.T) {
	require.Equal(t, 1.0, Win.Score())
	require.Equal(t, 0.5, Draw.Score())
	require.Equal(t, 0.0, Loss.Score())
	require.Equal(t, Loss, Win.Invert())
	require.Equal(t, Win, Loss.Invert())
	require.Equal(t, Draw, Draw.Invert())
}

func TestElo(t *testing.T) {
	t.Run("equal players trade sixteen points on a win", func(t *testing.T) {
		e := NewElo()
		e.Record("a", "b", Win)

		table := e.Table()
		require.Equal(t, "a", table[0].Player)
		require.InDelta(t, 1516, table[0].Rating, 1e-9)
		require.InDelta(t, 1484, table[1].Rating, 1e-9)
	})

	t.Run("draw between equals changes nothing", func(t *testing.T) {
		e := NewElo()
		e.Record("a", "b", Draw)

		for _, row := range e.Table() {
			require.InDelta(t, 1500, row.Rating, 1e-9)
			require.Equal(t, 1, row.Games)
		}
	})

	t.Run("k factor decays to its floor", func(t *testing.T) {
		e := NewElo()
		e.player("a").games = 40
		e.player("b").games = 40
		e.Record("a", "b", Win)

		require.InDelta(t, 1505, e.player("a").rating, 1e-9, "veteran K stays at 10")
	})
}

func TestGlicko2(t *testing.T) {
	t.Run("winner rises and loser falls", func(t *testing.T) {
		g := NewGlicko2()
		g.Record("a", "b", Win)

		table := g.Table()
		require.Equal(t, "a", table[0].Player)
		require.Greater(t, table[0].Rating, 1500.0)
		require.Less(t, table[1].Rating, 1500.0)
	})

	t.Run("deviation shrinks with games played", func(t *testing.T) {
		g := NewGlicko2()
		g.Record("a", "b", Win)

		require.Less(t, g.player("a").phi, glickoRD/glickoScale)
	})

	t.Run("draw between equals is symmetric", func(t *testing.T) {
		g := NewGlicko2()
		g.Record("a", "b", Draw)

		table := g.Table()
		require.InDelta(t, table[0].Rating, table[1].Rating, 1e-9)
		require.InDelta(t, 1500, table[0].Rating, 1e-6)
	})
}

func TestTrueSkill(t *testing.T) {
	t.Run("two newcomers after one decisive game", func(t *testing.T) {
		ts := NewTrueSkill()
		ts.Record("a", "b", Win)

		// Reference values for the standard two-player update with a 10%
		// draw probability; dynamics noise shifts them only marginally.
		require.InDelta(t, 29.396, ts.player("a").mu, 0.01)
		require.InDelta(t, 20.604, ts.player("b").mu, 0.01)
		require.InDelta(t, 7.171, ts.player("a").sigma, 0.01)
		require.InDelta(t, 7.171, ts.player("b").sigma, 0.01)
	})

	t.Run("draw leaves equal means in place but firms both up", func(t *testing.T) {
		ts := NewTrueSkill()
		ts.Record("a", "b", Draw)

		require.InDelta(t, tsMu, ts.player("a").mu, 1e-9)
		require.InDelta(t, tsMu, ts.player("b").mu, 1e-9)
		require.Less(t, ts.player("a").sigma, tsSigma)
	})

	t.Run("table reports the conservative estimate", func(t *testing.T) {
		ts := NewTrueSkill()
		ts.Record("a", "b", Win)

		p := ts.player("a")
		table := ts.Table()
		require.Equal(t, "a", table[0].Player)
		require.InDelta(t, p.mu-3*p.sigma, table[0].Rating, 1e-9)
	})
}

func TestTableOrdering(t *testing.T) {
	e := NewElo()
	e.Record("weak", "strong", Loss)
	e.Record("weak", "middling", Loss)
	e.Record("middling", "strong", Loss)

	table := e.Table()
	require.Equal(t, "strong", table[0].Player)
	require.Equal(t, "weak", table[2].Player)
	for _, row := range table {
		require.Equal(t, 2, row.Games)
	}
}
