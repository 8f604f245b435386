package strategy

import "azul/game"

// Greedy maximizes tiles placed into a pattern line minus tiles forced to
// the floor, preferring the higher-capacity line on ties.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) SelectMove(g *game.GameState, moves []game.Move) game.Move {
	var p picker
	for _, mv := range moves {
		placed, floored := fill(g, mv)
		// Scale so the line index only separates otherwise equal moves.
		score := float64((placed-floored)*game.WallSize + mv.Line)
		if mv.Line == game.FloorLine {
			score = float64((placed - floored) * game.WallSize)
		}
		p.offer(mv, score)
	}
	return p.best
}
