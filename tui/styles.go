package tui

import (
	"github.com/charmbracelet/lipgloss"

	"azul/game"
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00589cff", Dark: "#3fa7f5ff"}).Bold(true).Render
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#960000ff", Dark: "#fc7e7eff"}).Render
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8f8f8fff", Dark: "#5f5f5fff"}).Render
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000ff", Dark: "#ffffffff"}).Bold(true).Render
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8a880fff", Dark: "#ddda1dff"}).Render
	markerStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#7a008aff", Dark: "#e46af5ff"}).Bold(true).Render

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginRight(1)

	blueStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0003adff", Dark: "#5f61fcff"}).Render
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8a880fff", Dark: "#f5e13fff"}).Render
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#bb0000ff", Dark: "#f16060ff"}).Render
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#a8a8a8ff"}).Render
	whiteStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6d6d6dff", Dark: "#ffffffff"}).Render
)

// tile renders one tile glyph in its color.
func tile(c game.Color) string {
	switch c {
	case game.Blue:
		return blueStyle("B")
	case game.Yellow:
		return yellowStyle("Y")
	case game.Red:
		return redStyle("R")
	case game.Black:
		return blackStyle("K")
	case game.White:
		return whiteStyle("W")
	case game.Marker:
		return markerStyle("1")
	}
	return dimStyle(".")
}
