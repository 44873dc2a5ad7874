package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/find-luigi/internal/games/findluigi"
)

// LevelRow is one line of the difficulty table.
type LevelRow struct {
	Level      string
	FromScore  int // 0 for the starting level
	Speed      int
	Direction  int
	Population int
}

// LevelRows lists every level in order with the score that reaches it.
func LevelRows(table findluigi.Table) []LevelRow {
	from := make(map[findluigi.Level]int)
	for _, th := range table.Thresholds() {
		from[th.Level] = th.Score
	}

	rows := make([]LevelRow, 0, int(findluigi.LevelImpossible)+1)
	for l := findluigi.LevelEasy; l <= findluigi.LevelImpossible; l++ {
		m := table.Multipliers(l)
		rows = append(rows, LevelRow{
			Level:      l.String(),
			FromScore:  from[l],
			Speed:      m.Speed,
			Direction:  m.Direction,
			Population: m.Population,
		})
	}
	return rows
}

// LevelsTable renders the difficulty table for printing to stdout.
func LevelsTable(rows []LevelRow) string {
	columns := []table.Column{
		{Title: "Level", Width: 12},
		{Title: "From score", Width: 10},
		{Title: "Speed", Width: 6},
		{Title: "Direction", Width: 9},
		{Title: "Population", Width: 10},
	}

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		from := "start"
		if r.FromScore > 0 {
			from = fmt.Sprintf("%d", r.FromScore)
		}
		tableRows[i] = table.Row{
			r.Level,
			from,
			fmt.Sprintf("x%d", r.Speed),
			fmt.Sprintf("x%d", r.Direction),
			fmt.Sprintf("x%d", r.Population),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(len(tableRows)+2), // Header plus its border
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No row is highlighted in a static print
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(t.View())
}
