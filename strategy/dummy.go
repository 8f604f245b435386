package strategy

import "azul/game"

// Dummy targets the highest-index pattern line with room and only drops to
// the floor when no pattern-line move exists at all; then it picks the
// move that sends the fewest tiles there.
type Dummy struct{}

func (Dummy) Name() string { return "dummy" }

func (Dummy) SelectMove(g *game.GameState, moves []game.Move) game.Move {
	var lines, floor picker
	for _, mv := range moves {
		if mv.Line == game.FloorLine {
			_, floored := fill(g, mv)
			floor.offer(mv, -float64(floored))
			continue
		}
		lines.offer(mv, float64(mv.Line))
	}
	if lines.some {
		return lines.best
	}
	return floor.best
}
