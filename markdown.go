package flightboard

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, cols Columns, records []Record) error {
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = markdownEscape(col.Heading)
	}
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := cols.Values(rec)
		for j := range row {
			row[j] = markdownEscape(row[j])
		}
		rows[i] = row
	}

	// Calculate column widths (minimum 3 for alignment markers).
	widths := make([]int, len(cols))
	for i, cell := range header {
		widths[i] = max(3, widthCond.StringWidth(cell))
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], widthCond.StringWidth(cell))
		}
	}

	if err := writeMarkdownRow(w, header, widths, cols); err != nil {
		return err
	}

	sep := make([]string, len(cols))
	for i, width := range widths {
		switch cols[i].Align {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, cols); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, cols Columns) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, cols[i].Align)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// markdownEscape keeps a value inside its cell: pipes are escaped and
// line breaks collapse to spaces.
func markdownEscape(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
