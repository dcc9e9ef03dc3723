package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Nothing is focused in printed output, so the selected row looks like
	// any other.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// CountRow is one key/count pair for RenderCountTable.
type CountRow struct {
	Key   string
	Count int
}

// RenderCountTable renders a two-column key/count table sized to fit its
// content.
func RenderCountTable(keyTitle string, rows []CountRow) string {
	keyWidth := lipgloss.Width(keyTitle)
	countWidth := lipgloss.Width("Count")

	cells := make([][]string, len(rows))
	for i, r := range rows {
		n := strconv.Itoa(r.Count)
		cells[i] = []string{r.Key, n}
		keyWidth = max(keyWidth, lipgloss.Width(r.Key))
		countWidth = max(countWidth, lipgloss.Width(n))
	}

	return RenderSimpleTable([]TableColumn{
		{Title: keyTitle, Width: keyWidth + 2},
		{Title: "Count", Width: countWidth + 2},
	}, cells)
}
