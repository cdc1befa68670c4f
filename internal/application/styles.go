package application

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"jira-dashboard/internal/domain"
)

// CLI style colors using lipgloss
var (
	// Header styles table headers and section titles
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")) // blue bold

	// Muted styles borders and secondary text
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray

	// StatusError styles error output
	StatusError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red

	// Cell styles ordinary table cells
	Cell = lipgloss.NewStyle().Padding(0, 1)
)

// RenderError renders a failure line for terminal output.
func RenderError(err error) string {
	return fmt.Sprintf("%s %v", StatusError.Render("Error:"), err)
}

// RenderFrame renders a Frame as a bordered table, one row per record.
func RenderFrame(f *domain.Frame) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Cell.Inherit(Header)
			}
			return Cell
		}).
		Headers(f.Columns...)

	for i := range f.Rows {
		row := make([]string, f.NumCols())
		for j := range f.Columns {
			row[j] = f.CellString(i, j)
		}
		t.Row(row...)
	}

	return t.String()
}

// RenderTable renders plain columns and rows as a bordered table.
func RenderTable(columns []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Cell.Inherit(Header)
			}
			return Cell
		}).
		Headers(columns...).
		Rows(rows...)

	return t.String()
}
