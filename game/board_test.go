package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceTiles(t *testing.T) {
	t.Run("tiles beyond line capacity spill to the floor", func(t *testing.T) {
		b := NewBoard("a")
		var discard []Color

		b.placeTiles(2, Blue, 5, &discard)

		require.Len(t, b.Lines[2], 3, "line 3 holds at most 3 tiles")
		require.Len(t, b.Floor, 2, "overflow goes to the floor")
		require.Empty(t, discard)
	})

	t.Run("floor line destination bypasses the pattern lines", func(t *testing.T) {
		b := NewBoard("a")
		var discard []Color

		b.placeTiles(FloorLine, Red, 3, &discard)

		for _, line := range b.Lines {
			require.Empty(t, line)
		}
		require.Equal(t, []Color{Red, Red, Red}, b.Floor)
	})

	t.Run("floor overflow beyond capacity is discarded", func(t *testing.T) {
		b := NewBoard("a")
		var discard []Color

		b.addToFloor(Yellow, 9, &discard)

		require.Len(t, b.Floor, FloorCapacity)
		require.Len(t, discard, 2, "tiles past the floor capacity leave the board")
	})

	t.Run("marker always takes a floor slot", func(t *testing.T) {
		b := NewBoard("a")
		var discard []Color
		b.addToFloor(Yellow, FloorCapacity, &discard)

		b.addToFloor(Marker, 1, &discard)

		require.Len(t, b.Floor, FloorCapacity+1)
		require.Equal(t, Marker, b.Floor[FloorCapacity])
		require.Empty(t, discard)
	})
}

func TestFloorPenalty(t *testing.T) {
	cases := []struct {
		tiles, penalty int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{7, 14},
		{9, 14}, // clipped at capacity
	}
	for _, c := range cases {
		require.Equal(t, c.penalty, FloorPenalty(c.tiles), "penalty for %d floor tiles", c.tiles)
	}
}

func TestCanPlace(t *testing.T) {
	t.Run("empty line accepts any color", func(t *testing.T) {
		b := NewBoard("a")
		for _, c := range Colors() {
			require.True(t, b.CanPlace(0, c, ModePattern))
		}
	})

	t.Run("started line only accepts its own color", func(t *testing.T) {
		b := NewBoard("a")
		b.Lines[2] = []Color{Yellow}

		require.True(t, b.CanPlace(2, Yellow, ModePattern))
		require.False(t, b.CanPlace(2, Blue, ModePattern))
	})

	t.Run("full line rejects everything", func(t *testing.T) {
		b := NewBoard("a")
		b.Lines[1] = []Color{Red, Red}

		require.False(t, b.CanPlace(1, Red, ModePattern))
	})

	t.Run("pattern mode rejects a color already walled in its cell", func(t *testing.T) {
		b := NewBoard("a")
		b.Wall[0][PatternColumn(0, Blue)] = Blue

		require.False(t, b.CanPlace(0, Blue, ModePattern))
		require.True(t, b.CanPlace(0, Yellow, ModePattern))
	})

	t.Run("free mode rejects a color already in the row", func(t *testing.T) {
		b := NewBoard("a")
		b.Wall[3][4] = Black

		require.False(t, b.CanPlace(3, Black, ModeFree))
		require.True(t, b.CanPlace(3, White, ModeFree))
	})
}

func TestPlacementScore(t *testing.T) {
	t.Run("isolated tile scores one", func(t *testing.T) {
		b := NewBoard("a")
		require.Equal(t, 1, b.PlacementScore(2, 2))
	})

	t.Run("horizontal run counts its full length", func(t *testing.T) {
		b := NewBoard("a")
		b.Wall[0][0] = Blue
		b.Wall[0][1] = Yellow
		b.Wall[0][2] = Red
		b.Wall[0][3] = Black

		require.Equal(t, 5, b.PlacementScore(0, 4))
	})

	t.Run("crossing runs both count", func(t *testing.T) {
		b := NewBoard("a")
		b.Wall[2][1] = Blue
		b.Wall[1][2] = Yellow

		require.Equal(t, 4, b.PlacementScore(2, 2), "2 horizontal + 2 vertical")
	})

	t.Run("single direction run ignores the lone axis", func(t *testing.T) {
		b := NewBoard("a")
		b.Wall[2][1] = Blue

		require.Equal(t, 2, b.PlacementScore(2, 2))
	})
}

func TestFreeColumn(t *testing.T) {
	t.Run("row already holding the color has no column", func(t *testing.T) {
		b := NewBoard("a")
		b.Wall[2][0] = Red

		require.Equal(t, -1, b.freeColumn(2, Red))
	})

	t.Run("prefers the highest scoring column, lowest index on ties", func(t *testing.T) {
		b := NewBoard("a")
		b.Wall[2][2] = Yellow

		// Columns 1 and 3 both score 2 next to the yellow tile.
		require.Equal(t, 1, b.freeColumn(2, Blue))
	})

	t.Run("skips columns already holding the color", func(t *testing.T) {
		b := NewBoard("a")
		b.Wall[2][2] = Yellow
		b.Wall[0][1] = Blue

		require.Equal(t, 3, b.freeColumn(2, Blue))
	})
}

func TestTargetColumn(t *testing.T) {
	b := NewBoard("a")
	for row := 0; row < WallSize; row++ {
		for _, c := range Colors() {
			require.Equal(t, PatternColumn(row, c), b.TargetColumn(row, c, ModePattern))
		}
	}
}

func TestEndGameBonus(t *testing.T) {
	t.Run("complete row", func(t *testing.T) {
		b := NewBoard("a")
		for col := 0; col < WallSize; col++ {
			b.Wall[0][col] = Colors()[col]
		}
		require.Equal(t, 2, b.EndGameBonus())
	})

	t.Run("complete column", func(t *testing.T) {
		b := NewBoard("a")
		for row := 0; row < WallSize; row++ {
			b.Wall[row][0] = Colors()[row]
		}
		require.Equal(t, 7, b.EndGameBonus())
	})

	t.Run("complete color", func(t *testing.T) {
		b := NewBoard("a")
		for row := 0; row < WallSize; row++ {
			b.Wall[row][PatternColumn(row, Blue)] = Blue
		}
		require.Equal(t, 10, b.EndGameBonus())
	})

	t.Run("full wall earns every bonus", func(t *testing.T) {
		b := NewBoard("a")
		for row := 0; row < WallSize; row++ {
			for _, c := range Colors() {
				b.Wall[row][PatternColumn(row, c)] = c
			}
		}
		// 5 rows, 5 columns, 5 colors.
		require.Equal(t, 5*2+5*7+5*10, b.EndGameBonus())
	})
}
