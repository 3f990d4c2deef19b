package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Rows taken by everything except the playfield: border top and bottom,
// status line, help line.
const chromeRows = 4

// Columns taken by the left and right border.
const chromeCols = 2

// renderStatus formats the session counters shown under the board.
func renderStatus(s core.GameState) string {
	line := statusStyle.Render(fmt.Sprintf("Bricks %d  Lives %d  Score %d",
		s.BricksAlive, s.Lives, s.Score))
	if s.Docked {
		line += "  " + hintStyle.Render("space to launch")
	}
	return line
}

// renderView stacks the bordered board, the status line and the help line.
func renderView(frame string, s core.GameState, help string) string {
	var b strings.Builder
	b.WriteString(boardStyle.Render(frame))
	b.WriteByte('\n')
	b.WriteString(renderStatus(s))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(help))
	return b.String()
}
