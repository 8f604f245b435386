package game

// FloorLine as a move destination sends the whole draft to the floor.
const FloorLine = -1

// Move is one draft action: take all tiles of Color from Source and place
// them on pattern line Line (or the floor).
type Move struct {
	Source SourceID
	Color  Color
	Line   int
}

// Legal reports whether the move can be applied to the current player's
// board right now.
func (g *GameState) Legal(mv Move) bool {
	if mv.Source != PoolSource && (mv.Source < 0 || int(mv.Source) >= len(g.Displays)) {
		return false
	}
	if mv.Color < 0 || mv.Color >= NumColors {
		return false
	}
	if countColor(g.SourceTiles(mv.Source), mv.Color) == 0 {
		return false
	}
	if mv.Line == FloorLine {
		return true
	}
	return g.Boards[g.Current].CanPlace(mv.Line, mv.Color, g.Mode)
}

// LegalMoves enumerates every legal move for the current player. No
// strategy may depend on the order of the result.
func (g *GameState) LegalMoves() []Move {
	if g.Phase != PhaseDraft {
		return nil
	}
	board := g.Boards[g.Current]
	var moves []Move

	appendMoves := func(id SourceID) {
		for _, c := range g.SourceColors(id) {
			for line := 0; line < WallSize; line++ {
				if board.CanPlace(line, c, g.Mode) {
					moves = append(moves, Move{Source: id, Color: c, Line: line})
				}
			}
			moves = append(moves, Move{Source: id, Color: c, Line: FloorLine})
		}
	}

	for i := range g.Displays {
		appendMoves(SourceID(i))
	}
	appendMoves(PoolSource)
	return moves
}
