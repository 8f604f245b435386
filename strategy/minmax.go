package strategy

import (
	"fmt"
	"math"

	"azul/game"
)

// DefaultDepth is the number of own plies Minmax looks ahead.
const DefaultDepth = 2

type Option func(*Minmax)

func WithDepth(depth int) Option {
	return func(m *Minmax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithModels registers each seat's configured strategy so opponents are
// predicted by their own policy rather than assumed worst-case.
func WithModels(models []Strategy) Option {
	return func(m *Minmax) {
		m.models = models
	}
}

// Minmax is a depth-bounded search. Its own plies branch over every legal
// move; an opponent ply collapses to the single move the opponent's
// modeled strategy would pick. Leaves are valued as own projected score
// minus the opponents' combined projected score.
type Minmax struct {
	depth  int
	models []Strategy
	tie    Strategic
}

func NewMinmax(options ...Option) *Minmax {
	m := &Minmax{depth: DefaultDepth}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minmax) Name() string { return "minmax" }

func (m *Minmax) SelectMove(g *game.GameState, moves []game.Move) game.Move {
	me := g.Current
	best := math.Inf(-1)
	var tied []game.Move
	for _, mv := range moves {
		sim := g.Copy()
		mustApply(sim, mv)
		value := m.search(sim, me, m.depth-1)
		if value > best {
			best, tied = value, tied[:0]
		}
		if value == best {
			tied = append(tied, mv)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	// Break value ties with the strategic heuristic.
	return m.tie.SelectMove(g, tied)
}

// search advances sim through opponent turns via their modeled strategies
// and branches on our own turns until the depth budget runs out.
func (m *Minmax) search(sim *game.GameState, me, depth int) float64 {
	for !sim.Over() {
		if sim.Current == me {
			if depth <= 0 {
				break
			}
			best := math.Inf(-1)
			for _, mv := range sim.LegalMoves() {
				child := sim.Copy()
				mustApply(child, mv)
				if v := m.search(child, me, depth-1); v > best {
					best = v
				}
			}
			return best
		}
		model := m.model(sim.Current)
		mustApply(sim, model.SelectMove(sim, sim.LegalMoves()))
	}
	return m.evaluate(sim, me)
}

// model returns the predictor for a seat. Seats without a registered
// model, and seats configured as minmax themselves, are predicted by the
// strategic heuristic; modeling minmax with minmax would recurse without
// bound.
func (m *Minmax) model(seat int) Strategy {
	if seat >= len(m.models) || m.models[seat] == nil {
		return m.tie
	}
	if _, self := m.models[seat].(*Minmax); self {
		return m.tie
	}
	return m.models[seat]
}

func (m *Minmax) evaluate(sim *game.GameState, me int) float64 {
	value := 0
	for i, b := range sim.Boards {
		projected := projectScore(b, sim.Mode)
		if i == me {
			value += projected
		} else {
			value -= projected
		}
	}
	return float64(value)
}

// projectScore estimates a board's score by eagerly wall-tiling its
// complete pattern lines instead of waiting for the phase boundary, then
// charging the pending floor penalty.
func projectScore(b *game.Board, mode game.Mode) int {
	scratch := b.Copy()
	score := scratch.Score
	for line := 0; line < game.WallSize; line++ {
		if len(scratch.Lines[line]) != game.LineCapacity(line) {
			continue
		}
		c := scratch.Lines[line][0]
		col := scratch.TargetColumn(line, c, mode)
		if col < 0 || scratch.Wall[line][col] != game.NoColor {
			continue
		}
		scratch.Wall[line][col] = c
		score += scratch.PlacementScore(line, col)
	}
	return score - game.FloorPenalty(len(b.Floor))
}

// mustApply commits a move that came out of LegalMoves or a modeled
// strategy; a rejection here is a strategy bug and must fail loudly.
func mustApply(sim *game.GameState, mv game.Move) {
	if err := sim.Apply(mv); err != nil {
		panic(fmt.Sprintf("strategy produced an illegal move %+v: %v", mv, err))
	}
}
