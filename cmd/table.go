package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
)

// column is a table heading. Numeric columns are right aligned.
type column struct {
	title   string
	numeric bool
}

func textColumn(title string) column { return column{title: title} }

func numberColumn(title string) column { return column{title: title, numeric: true} }

func (c column) config(number int) table.ColumnConfig {
	cfg := table.ColumnConfig{Number: number, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
	if c.numeric {
		cfg.Align = text.AlignRight
	}

	return cfg
}

// renderTable draws rows under columns. Short rows are padded with blank cells
// and extra cells are dropped.
func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(lo.Map(columns, func(c column, _ int) any { return c.title }))
	tw.SetColumnConfigs(lo.Map(columns, func(c column, i int) table.ColumnConfig { return c.config(i + 1) }))

	for _, row := range rows {
		tw.AppendRow(lo.Times(len(columns), func(i int) any {
			if i < len(row) {
				return row[i]
			}
			return ""
		}))
	}

	return tw.Render()
}
