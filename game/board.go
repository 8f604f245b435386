package game

// Board holds one participant's pattern lines, wall, floor line and score.
type Board struct {
	Name  string
	Lines [WallSize][]Color
	Wall  [WallSize][WallSize]Color
	Floor []Color
	Score int
}

func NewBoard(name string) *Board {
	b := &Board{Name: name}
	for i := range b.Wall {
		for j := range b.Wall[i] {
			b.Wall[i][j] = NoColor
		}
	}
	return b
}

func (b *Board) Copy() *Board {
	nb := &Board{
		Name:  b.Name,
		Wall:  b.Wall,
		Score: b.Score,
		Floor: append([]Color(nil), b.Floor...),
	}
	for i, line := range b.Lines {
		nb.Lines[i] = append([]Color(nil), line...)
	}
	return nb
}

// LineCapacity is the number of tiles pattern line i holds when full.
func LineCapacity(line int) int { return line + 1 }

// LineSpace returns the unfilled capacity of a pattern line.
func (b *Board) LineSpace(line int) int {
	return LineCapacity(line) - len(b.Lines[line])
}

// CanPlace reports whether tiles of color c may be added to the given
// pattern line: the line must be empty or monochrome in c with spare
// capacity, and the wall row must still be open for c.
func (b *Board) CanPlace(line int, c Color, mode Mode) bool {
	if line < 0 || line >= WallSize {
		return false
	}
	if len(b.Lines[line]) > 0 && b.Lines[line][0] != c {
		return false
	}
	if b.LineSpace(line) <= 0 {
		return false
	}
	if mode == ModePattern {
		return b.Wall[line][PatternColumn(line, c)] == NoColor
	}
	return !b.rowHasColor(line, c)
}

func (b *Board) rowHasColor(row int, c Color) bool {
	for _, cell := range b.Wall[row] {
		if cell == c {
			return true
		}
	}
	return false
}

func (b *Board) colHasColor(col int, c Color) bool {
	for row := 0; row < WallSize; row++ {
		if b.Wall[row][col] == c {
			return true
		}
	}
	return false
}

// addToFloor pushes overflow tiles onto the floor line; tiles beyond its
// capacity bypass it straight to the discard. The marker always takes a
// slot since it exists at most once.
func (b *Board) addToFloor(c Color, n int, discard *[]Color) {
	for i := 0; i < n; i++ {
		if c == Marker || len(b.Floor) < FloorCapacity {
			b.Floor = append(b.Floor, c)
		} else {
			*discard = append(*discard, c)
		}
	}
}

// placeTiles adds n tiles of color c to a pattern line, overflowing the
// remainder onto the floor. line == FloorLine sends everything there.
func (b *Board) placeTiles(line int, c Color, n int, discard *[]Color) {
	if line == FloorLine {
		b.addToFloor(c, n, discard)
		return
	}
	space := b.LineSpace(line)
	fit := n
	if fit > space {
		fit = space
	}
	for i := 0; i < fit; i++ {
		b.Lines[line] = append(b.Lines[line], c)
	}
	b.addToFloor(c, n-fit, discard)
}

// freeColumn picks the wall column for color c in free mode: among columns
// legal under row/column uniqueness, the one scoring highest (lowest index
// on ties). Returns -1 when no column is legal.
func (b *Board) freeColumn(row int, c Color) int {
	if b.rowHasColor(row, c) {
		return -1
	}
	best, bestScore := -1, -1
	for col := 0; col < WallSize; col++ {
		if b.Wall[row][col] != NoColor || b.colHasColor(col, c) {
			continue
		}
		if s := b.PlacementScore(row, col); s > bestScore {
			best, bestScore = col, s
		}
	}
	return best
}

// TargetColumn resolves where color c would land on row line: the fixed
// pattern cell, or the free-mode column pick. Returns -1 when free mode
// has no legal column.
func (b *Board) TargetColumn(line int, c Color, mode Mode) int {
	if mode == ModePattern {
		return PatternColumn(line, c)
	}
	return b.freeColumn(line, c)
}

// PlacementScore is the immediate score for a tile landing at (row, col):
// the horizontal and vertical contiguous runs through the cell, each
// counted only when longer than the tile itself, floor of 1.
func (b *Board) PlacementScore(row, col int) int {
	horizontal := 1
	for j := col - 1; j >= 0 && b.Wall[row][j] != NoColor; j-- {
		horizontal++
	}
	for j := col + 1; j < WallSize && b.Wall[row][j] != NoColor; j++ {
		horizontal++
	}
	vertical := 1
	for i := row - 1; i >= 0 && b.Wall[i][col] != NoColor; i-- {
		vertical++
	}
	for i := row + 1; i < WallSize && b.Wall[i][col] != NoColor; i++ {
		vertical++
	}

	score := 0
	if horizontal > 1 {
		score += horizontal
	}
	if vertical > 1 {
		score += vertical
	}
	if score == 0 {
		score = 1
	}
	return score
}

// CompletedRows counts fully tiled wall rows.
func (b *Board) CompletedRows() int {
	n := 0
	for row := 0; row < WallSize; row++ {
		if b.rowComplete(row) {
			n++
		}
	}
	return n
}

func (b *Board) rowComplete(row int) bool {
	for _, cell := range b.Wall[row] {
		if cell == NoColor {
			return false
		}
	}
	return true
}

// EndGameBonus returns the final-scoring bonus: +2 per full row, +7 per
// full column, +10 per color fully on the wall.
func (b *Board) EndGameBonus() int {
	bonus := 2 * b.CompletedRows()
	for col := 0; col < WallSize; col++ {
		full := true
		for row := 0; row < WallSize; row++ {
			if b.Wall[row][col] == NoColor {
				full = false
				break
			}
		}
		if full {
			bonus += 7
		}
	}
	for _, c := range Colors() {
		placed := 0
		for row := 0; row < WallSize; row++ {
			for col := 0; col < WallSize; col++ {
				if b.Wall[row][col] == c {
					placed++
				}
			}
		}
		if placed == WallSize {
			bonus += 10
		}
	}
	return bonus
}
