// Package tui is the interactive terminal front end: one human seat
// against any mix of computer strategies.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"azul/game"
	"azul/strategy"
)

// Config describes an interactive session. Seat 0 is always the human.
type Config struct {
	Mode      game.Mode
	Seed      uint64
	Human     string   // display name for the human seat
	Opponents []string // strategy name per computer seat
}

// Play runs the interactive game to completion.
func Play(cfg Config) error {
	seats := make([]strategy.Strategy, 1+len(cfg.Opponents))
	for i, name := range cfg.Opponents {
		s, err := strategy.New(name)
		if err != nil {
			return err
		}
		seats[i+1] = s
	}
	for _, s := range seats {
		if mm, ok := s.(*strategy.Minmax); ok {
			strategy.WithModels(seats)(mm)
		}
	}

	state, err := game.NewGame(game.Config{
		Players: len(seats),
		Mode:    cfg.Mode,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return err
	}
	name := cfg.Human
	if name == "" {
		name = "you"
	}
	state.Boards[0].Name = name
	for i, s := range seats[1:] {
		state.Boards[i+1].Name = s.Name()
	}

	m := newModel(state, seats)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// pick is one draftable (source, color) combination.
type pick struct {
	source game.SourceID
	color  game.Color
}

type stage int

const (
	stagePick stage = iota // choosing a source and color
	stageLine              // choosing a destination line
)

type model struct {
	state *game.GameState
	seats []strategy.Strategy // nil at the human seat

	stage      stage
	picks      []pick
	cursor     int
	lines      []int // legal destinations for the chosen pick, FloorLine last
	lineCursor int
}

func newModel(state *game.GameState, seats []strategy.Strategy) *model {
	m := &model{state: state, seats: seats}
	m.reset()
	return m
}

// reset recomputes the pick list for a fresh human turn.
func (m *model) reset() {
	m.stage = stagePick
	m.cursor = 0
	m.picks = m.picks[:0]
	seen := map[pick]bool{}
	for _, mv := range m.state.LegalMoves() {
		p := pick{mv.Source, mv.Color}
		if !seen[p] {
			seen[p] = true
			m.picks = append(m.picks, p)
		}
	}
}

// chooseLines lists the legal destinations for the pick under the cursor.
func (m *model) chooseLines() {
	p := m.picks[m.cursor]
	m.lines = m.lines[:0]
	board := m.state.Boards[m.state.Current]
	for line := 0; line < game.WallSize; line++ {
		if board.CanPlace(line, p.color, m.state.Mode) {
			m.lines = append(m.lines, line)
		}
	}
	m.lines = append(m.lines, game.FloorLine)
	m.stage = stageLine
	m.lineCursor = 0
}

func (m *model) humanTurn() bool {
	return !m.state.Over() && m.seats[m.state.Current] == nil
}

type botMsg struct {
	mv game.Move
}

// botMove computes the current computer seat's move off the Update loop.
func (m *model) botMove() tea.Cmd {
	seat := m.state.Current
	return func() tea.Msg {
		moves := m.state.LegalMoves()
		return botMsg{mv: m.seats[seat].SelectMove(m.state, moves)}
	}
}

func (m *model) apply(mv game.Move) tea.Cmd {
	if err := m.state.Apply(mv); err != nil {
		panic(fmt.Sprintf("illegal move reached apply: %v", err))
	}
	if m.state.Over() {
		return nil
	}
	if m.humanTurn() {
		m.reset()
		return nil
	}
	return m.botMove()
}

func (m *model) Init() tea.Cmd {
	if !m.humanTurn() {
		return m.botMove()
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case botMsg:
		return m, m.apply(msg.mv)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.stage == stagePick && m.cursor > 0 {
				m.cursor--
			}
			if m.stage == stageLine && m.lineCursor > 0 {
				m.lineCursor--
			}

		case "down", "j":
			if m.stage == stagePick && m.cursor < len(m.picks)-1 {
				m.cursor++
			}
			if m.stage == stageLine && m.lineCursor < len(m.lines)-1 {
				m.lineCursor++
			}

		case "esc":
			if m.stage == stageLine {
				m.stage = stagePick
			}

		case "enter":
			if m.state.Over() {
				return m, tea.Quit
			}
			if !m.humanTurn() {
				return m, nil
			}
			if m.stage == stagePick {
				if len(m.picks) > 0 {
					m.chooseLines()
				}
				return m, nil
			}
			p := m.picks[m.cursor]
			mv := game.Move{Source: p.source, Color: p.color, Line: m.lines[m.lineCursor]}
			return m, m.apply(mv)
		}
	}
	return m, nil
}

func (m *model) View() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s  round %d, %s mode\n\n",
		headerStyle("~ azul ~"), m.state.Round, m.state.Mode)

	s.WriteString(renderBoards(m.state))
	s.WriteString("\n")

	if m.state.Over() {
		fmt.Fprintf(&s, "\ngame over, winner: %s\n", selectedStyle(m.state.Winner()))
		s.WriteString(dimStyle("press enter or q to exit") + "\n")
		return s.String()
	}

	if !m.humanTurn() {
		cur := m.state.Boards[m.state.Current].Name
		s.WriteString(renderSources(m.state, 0, false))
		fmt.Fprintf(&s, "\n%s is thinking...\n", cur)
		return s.String()
	}

	highlight := game.SourceID(0)
	if len(m.picks) > 0 {
		highlight = m.picks[m.cursor].source
	}
	s.WriteString(renderSources(m.state, highlight, true))

	switch m.stage {
	case stagePick:
		if len(m.picks) > 0 {
			p := m.picks[m.cursor]
			fmt.Fprintf(&s, "\ntake %s %s from %s\n",
				tile(p.color), p.color, sourceName(p.source))
		}
		s.WriteString(dimStyle("up/down choose, enter confirm, q quit") + "\n")
	case stageLine:
		p := m.picks[m.cursor]
		fmt.Fprintf(&s, "\nplace %s %s on: ", tile(p.color), p.color)
		for i, line := range m.lines {
			label := fmt.Sprintf("line %d", line+1)
			if line == game.FloorLine {
				label = "floor"
			}
			if i == m.lineCursor {
				label = cursorStyle("[" + label + "]")
			}
			s.WriteString(label + "  ")
		}
		s.WriteString("\n" + dimStyle("up/down choose, enter confirm, esc back") + "\n")
	}
	return s.String()
}

func sourceName(id game.SourceID) string {
	if id == game.PoolSource {
		return "the pool"
	}
	return fmt.Sprintf("display %d", int(id)+1)
}
