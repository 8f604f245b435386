package strategy

import "azul/game"

// Smart scoring weights.
const (
	smartAdjacencyBonus    = 2.0
	smartWhitespacePenalty = 1.0
	smartOverflowPenalty   = 2.0
)

// Smart rewards building next to tiles already on the wall and penalizes
// whitespace (pattern-line capacity a move leaves unused) and overflow.
type Smart struct{}

func (Smart) Name() string { return "smart" }

func (Smart) SelectMove(g *game.GameState, moves []game.Move) game.Move {
	board := g.Boards[g.Current]
	var p picker
	for _, mv := range moves {
		placed, floored := fill(g, mv)
		if mv.Line == game.FloorLine {
			p.offer(mv, -smartOverflowPenalty*float64(floored)-float64(game.WallSize))
			continue
		}
		score := -smartOverflowPenalty * float64(floored)
		score -= smartWhitespacePenalty * float64(board.LineSpace(mv.Line)-placed)
		col := board.TargetColumn(mv.Line, mv.Color, g.Mode)
		if h, v := adjacency(board, mv.Line, col); h || v {
			score += smartAdjacencyBonus
		}
		p.offer(mv, score)
	}
	return p.best
}
