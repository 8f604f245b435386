package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"azul/game"
)

// renderBoard draws one player board: pattern lines next to the wall,
// then the floor line and score.
func renderBoard(g *game.GameState, b *game.Board, active bool) string {
	var s strings.Builder

	name := b.Name
	if active {
		name = selectedStyle("> " + name)
	}
	fmt.Fprintf(&s, "%s  %s\n", name, scoreStyle(fmt.Sprintf("%d pts", b.Score)))

	for line := 0; line < game.WallSize; line++ {
		capacity := game.LineCapacity(line)
		for i := game.WallSize - 1; i >= 0; i-- {
			switch {
			case i >= capacity:
				s.WriteString("  ")
			case i >= len(b.Lines[line]):
				s.WriteString(dimStyle("_") + " ")
			default:
				s.WriteString(tile(b.Lines[line][i]) + " ")
			}
		}
		s.WriteString(dimStyle("|") + " ")
		for col := 0; col < game.WallSize; col++ {
			if b.Wall[line][col] != game.NoColor {
				s.WriteString(tile(b.Wall[line][col]) + " ")
			} else if g.Mode == game.ModePattern {
				s.WriteString(dimStyle(strings.ToLower(wallHint(line, col))) + " ")
			} else {
				s.WriteString(dimStyle(".") + " ")
			}
		}
		s.WriteString("\n")
	}

	s.WriteString("floor: ")
	for i := 0; i < game.FloorCapacity; i++ {
		if i < len(b.Floor) {
			s.WriteString(tile(b.Floor[i]) + " ")
		} else {
			s.WriteString(dimStyle("_") + " ")
		}
	}
	return boardStyle.Render(s.String())
}

// wallHint names the color a pattern-mode wall cell accepts.
func wallHint(row, col int) string {
	for _, c := range game.Colors() {
		if game.PatternColumn(row, c) == col {
			return c.String()[:1]
		}
	}
	return "."
}

// renderSources draws the displays and the pool with one line per
// source; highlight marks the source under the cursor.
func renderSources(g *game.GameState, highlight game.SourceID, hasCursor bool) string {
	var s strings.Builder
	for _, src := range append(displayIDs(g), game.PoolSource) {
		label := fmt.Sprintf("display %d", int(src)+1)
		if src == game.PoolSource {
			label = "pool     "
		}
		if hasCursor && src == highlight {
			s.WriteString(cursorStyle("> "))
			label = selectedStyle(label)
		} else {
			s.WriteString("  ")
		}
		s.WriteString(label + "  ")
		tiles := g.SourceTiles(src)
		for _, c := range tiles {
			s.WriteString(tile(c) + " ")
		}
		if len(tiles) == 0 {
			s.WriteString(dimStyle("empty"))
		}
		s.WriteString("\n")
	}
	return s.String()
}

func displayIDs(g *game.GameState) []game.SourceID {
	ids := make([]game.SourceID, len(g.Displays))
	for i := range g.Displays {
		ids[i] = game.SourceID(i)
	}
	return ids
}

// renderBoards lays all player boards out side by side.
func renderBoards(g *game.GameState) string {
	views := make([]string, len(g.Boards))
	for i, b := range g.Boards {
		views[i] = renderBoard(g, b, !g.Over() && i == g.Current)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
