package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/unionpath/internal/config"
)

// render writes rows either as a table under header or as plain
// space-separated lines.
func render(w io.Writer, format string, header []string, rows [][]string) {
	if format == config.FormatPlain {
		for _, r := range rows {
			fmt.Fprintln(w, strings.Join(r, " "))
		}
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func joinNames[T fmt.Stringer](items []T) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, " ")
}
