package game

// Color identifies a tile color. The zero-valued colors index into the
// bag census and the wall pattern; Marker is the first-player token and
// never counts as a color.
type Color int8

const (
	NoColor Color = iota - 1
	Blue
	Yellow
	Red
	Black
	White
	Marker
)

const (
	NumColors     = 5
	TilesPerColor = 20
	WallSize      = 5
	DisplaySize   = 4
	FloorCapacity = 7
)

// FloorPenalties holds the points lost per occupied floor slot.
var FloorPenalties = [FloorCapacity]int{1, 1, 2, 2, 2, 3, 3}

func (c Color) String() string {
	switch c {
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Black:
		return "K"
	case White:
		return "W"
	case Marker:
		return "1"
	}
	return "."
}

// PatternColumn returns the wall column that holds color c in the given row
// under the fixed diagonal-shifted layout.
func PatternColumn(row int, c Color) int {
	return (row + int(c)) % WallSize
}

// Colors lists the five tile colors in wall-pattern order.
func Colors() [NumColors]Color {
	return [NumColors]Color{Blue, Yellow, Red, Black, White}
}

// FloorPenalty returns the points lost for n floor tiles, clipped to the
// floor capacity.
func FloorPenalty(n int) int {
	if n > FloorCapacity {
		n = FloorCapacity
	}
	total := 0
	for i := 0; i < n; i++ {
		total += FloorPenalties[i]
	}
	return total
}
