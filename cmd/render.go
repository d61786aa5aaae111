package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jjtimmons/rosalind/internal/seq"
)

// headerStyle is the style of the header row of every table
var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// cellStyle is the style of table body cells
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// border returns the table border of the configured style
func border() lipgloss.Border {
	switch conf.Table.Style {
	case "normal":
		return lipgloss.NormalBorder()
	case "ascii":
		return lipgloss.ASCIIBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// writeTable writes a table with a header row to w
func writeTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(border()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, t.Render())
}

// writeCounts writes one column per base, in the order each was first seen
func writeCounts(w io.Writer, counts seq.Counts) {
	var headers, row []string
	for _, r := range counts.Symbols() {
		headers = append(headers, string(r))
		row = append(row, strconv.Itoa(counts.Count(r)))
	}
	writeTable(w, headers, [][]string{row})
}
