package strategy

import (
	"fmt"

	"azul/game"
)

// Strategy picks one move from the legal set. Implementations may simulate
// on copies of the state but must never mutate the live game.
type Strategy interface {
	Name() string
	SelectMove(g *game.GameState, moves []game.Move) game.Move
}

// Names lists the selectable strategies in difficulty order.
var Names = []string{"dummy", "greedy", "smart", "strategic", "minmax"}

// New builds a strategy by name.
func New(name string) (Strategy, error) {
	switch name {
	case "dummy":
		return Dummy{}, nil
	case "greedy":
		return Greedy{}, nil
	case "smart":
		return Smart{}, nil
	case "strategic":
		return Strategic{}, nil
	case "minmax":
		return NewMinmax(), nil
	}
	return nil, fmt.Errorf("%w: unknown strategy %q", game.ErrConfig, name)
}

// moveLess is a stable ordering used to break exact ties, so that no
// selection ever depends on enumeration order.
func moveLess(a, b game.Move) bool {
	if a.Source != b.Source {
		return a.Source < b.Source
	}
	if a.Color != b.Color {
		return a.Color < b.Color
	}
	return a.Line < b.Line
}

// picker tracks the best-scoring move seen so far with the moveLess
// tie-break applied.
type picker struct {
	best  game.Move
	score float64
	some  bool
}

func (p *picker) offer(mv game.Move, score float64) {
	if !p.some || score > p.score || (score == p.score && moveLess(mv, p.best)) {
		p.best, p.score, p.some = mv, score, true
	}
}

// fill returns how many drafted tiles a move fits into its line and how
// many spill to the floor.
func fill(g *game.GameState, mv game.Move) (placed, floored int) {
	count := 0
	for _, c := range g.SourceTiles(mv.Source) {
		if c == mv.Color {
			count++
		}
	}
	if mv.Line == game.FloorLine {
		return 0, count
	}
	space := g.Boards[g.Current].LineSpace(mv.Line)
	if count <= space {
		return count, 0
	}
	return space, count - space
}

// adjacency reports whether the wall cell a move builds toward already has
// a horizontal or vertical neighbor.
func adjacency(b *game.Board, row, col int) (horizontal, vertical bool) {
	if col < 0 {
		return false, false
	}
	horizontal = (col > 0 && b.Wall[row][col-1] != game.NoColor) ||
		(col < game.WallSize-1 && b.Wall[row][col+1] != game.NoColor)
	vertical = (row > 0 && b.Wall[row-1][col] != game.NoColor) ||
		(row < game.WallSize-1 && b.Wall[row+1][col] != game.NoColor)
	return horizontal, vertical
}
