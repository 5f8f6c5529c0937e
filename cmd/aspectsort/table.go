package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column is one table column. Counts, sizes and dimensions are numeric and
// line up on the right.
type column struct {
	title   string
	numeric bool
}

var (
	ratioColumns = []column{
		{title: "Ratio"},
		{title: "Known As"},
		{title: "Files", numeric: true},
		{title: "Share", numeric: true},
	}
	probeColumns = []column{
		{title: "File"},
		{title: "Dimensions", numeric: true},
		{title: "Size", numeric: true},
		{title: "Probe"},
		{title: "Label"},
	}
	dependencyColumns = []column{
		{title: "Dependency"},
		{title: "Status"},
		{title: "Command"},
		{title: "Purpose"},
	}
)

// renderTable draws rows under columns with titles kept as written. A
// non-empty footer becomes a totals row.
func renderTable(columns []column, rows [][]string, footer []string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	header := make([]string, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.title
		align := text.AlignLeft
		if col.numeric {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignFooter: align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(tableRow(header, len(columns)))
	for _, row := range rows {
		tw.AppendRow(tableRow(row, len(columns)))
	}
	if len(footer) > 0 {
		tw.AppendFooter(tableRow(footer, len(columns)))
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

// tableRow pads or truncates values to width cells.
func tableRow(values []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		} else {
			row[i] = ""
		}
	}
	return row
}
