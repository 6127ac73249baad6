package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/deepline/internal/core"
	"github.com/vovakirdan/deepline/internal/storage"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	summaryHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	summaryEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true).
				Padding(1, 2)
)

// newSummaryTable builds the per-species catch log table.
func newSummaryTable(tallies []storage.SpeciesTally, height int) table.Model {
	columns := []table.Column{
		{Title: "Species", Width: 14},
		{Title: "Kind", Width: 7},
		{Title: "Count", Width: 6},
		{Title: "Points", Width: 7},
		{Title: "Avg depth", Width: 9},
	}

	rows := make([]table.Row, len(tallies))
	for i, t := range tallies {
		kind, points := "catch", fmt.Sprintf("+%d", t.Total)
		if t.Kind == core.EventNegative.String() {
			kind, points = "hazard", fmt.Sprintf("-%d", t.Total)
		}
		rows[i] = table.Row{
			t.Species,
			kind,
			fmt.Sprintf("%d", t.Count),
			points,
			fmt.Sprintf("%.0fm", t.AvgDepth),
		}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(max(min(len(rows)+2, height-8), 3)), // Header takes two lines
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	tbl.SetStyles(s)
	return tbl
}

// renderSummary renders the end-of-session catch log, centered.
func renderSummary(state core.GameState, tbl table.Model, empty bool, width, height int) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render("CATCH LOG"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score %d   Catches %d   Hazards hit %d", state.Score, state.Catches, state.Hits))
	b.WriteString("\n\n")

	if empty {
		b.WriteString(summaryEmptyStyle.Render("Nothing on the line this time."))
	} else {
		b.WriteString(summaryBoxStyle.Render(tbl.View()))
	}

	b.WriteString("\n\n")
	b.WriteString(summaryHintStyle.Render("tab back   r restart   q quit"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
