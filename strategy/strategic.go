package strategy

import "azul/game"

// Strategic scoring weights. The diagonal bonus only applies in the first
// round, when claiming the main diagonal still shapes the whole wall.
const (
	strategicDiagonalBonus      = 3.0
	strategicHorizontalAdjBonus = 1.5
	strategicVerticalAdjBonus   = 1.0
	strategicWhitespacePenalty  = 1.0
	strategicOverflowPenalty    = 2.0
)

// Strategic extends Smart with a first-round preference for the main
// diagonal and separate horizontal/vertical adjacency weights.
type Strategic struct{}

func (Strategic) Name() string { return "strategic" }

func (Strategic) SelectMove(g *game.GameState, moves []game.Move) game.Move {
	board := g.Boards[g.Current]
	var p picker
	for _, mv := range moves {
		placed, floored := fill(g, mv)
		if mv.Line == game.FloorLine {
			p.offer(mv, -strategicOverflowPenalty*float64(floored)-float64(game.WallSize))
			continue
		}
		score := -strategicOverflowPenalty * float64(floored)
		score -= strategicWhitespacePenalty * float64(board.LineSpace(mv.Line)-placed)
		col := board.TargetColumn(mv.Line, mv.Color, g.Mode)
		h, v := adjacency(board, mv.Line, col)
		if h {
			score += strategicHorizontalAdjBonus
		}
		if v {
			score += strategicVerticalAdjBonus
		}
		if g.Round == 1 && onDiagonal(mv.Line, mv.Color, g.Mode) {
			score += strategicDiagonalBonus
		}
		p.offer(mv, score)
	}
	return p.best
}

// onDiagonal reports whether the eventual wall cell for this line and
// color sits on the main diagonal.
func onDiagonal(line int, c game.Color, mode game.Mode) bool {
	if mode == game.ModePattern {
		return game.PatternColumn(line, c) == line
	}
	return line == int(c)
}
