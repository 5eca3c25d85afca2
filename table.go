package flightboard

import (
	"fmt"
	"io"
	"strings"
)

// Border characters of the schedule table.
const (
	vertical      = "|"
	headerDivider = "="
	rowDivider    = "-"
)

// RenderHeader returns the heading line followed by a divider of "="
// exactly as wide as the heading line.
func RenderHeader(cols Columns) (string, error) {
	if err := cols.Validate(); err != nil {
		return "", err
	}
	return strings.Join(headerLines(cols), "\n"), nil
}

// RenderRow wraps every field of rec at its column's width and returns the
// resulting lines followed by a divider of "-". The row spans as many lines
// as its longest wrapped field.
func RenderRow(cols Columns, rec Record) (string, error) {
	if err := cols.Validate(); err != nil {
		return "", err
	}
	if err := cols.check(rec); err != nil {
		return "", err
	}
	lines, err := rowLines(cols, rec)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// RenderTable returns the header followed by one rendered row per record.
func RenderTable(cols Columns, records []Record) (string, error) {
	if err := cols.Validate(); err != nil {
		return "", err
	}
	for _, rec := range records {
		if err := cols.check(rec); err != nil {
			return "", err
		}
	}
	lines := headerLines(cols)
	for _, rec := range records {
		row, err := rowLines(cols, rec)
		if err != nil {
			return "", err
		}
		lines = append(lines, row...)
	}
	return strings.Join(lines, "\n"), nil
}

func writeTable(w io.Writer, cols Columns, records []Record) error {
	table, err := RenderTable(cols, records)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

func writeTableHeader(w io.Writer, cols Columns) error {
	_, err := fmt.Fprintln(w, strings.Join(headerLines(cols), "\n"))
	return err
}

func writeTableRow(w io.Writer, cols Columns, rec Record) error {
	lines, err := rowLines(cols, rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func headerLines(cols Columns) []string {
	var sb strings.Builder
	sb.WriteString(vertical)
	for _, col := range cols {
		sb.WriteString(" ")
		sb.WriteString(alignCell(col.Heading, col.Width, col.Align))
		sb.WriteString(" ")
		sb.WriteString(vertical)
	}
	header := sb.String()
	return []string{header, strings.Repeat(headerDivider, widthCond.StringWidth(header))}
}

// --- Cell wrapping ---

func wrapRow(cols Columns, rec Record) ([][]string, error) {
	wrapped := make([][]string, len(cols))
	for i, col := range cols {
		lines, err := WrapLines(rec[col.Field], col.Width)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Field, err)
		}
		wrapped[i] = lines
	}
	return wrapped, nil
}

func maxLines(wrapped [][]string) int {
	n := 1
	for _, lines := range wrapped {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

// rowLines zips the wrapped fields of rec line by line. Columns that run
// out of lines contribute blank cells of their full width.
func rowLines(cols Columns, rec Record) ([]string, error) {
	wrapped, err := wrapRow(cols, rec)
	if err != nil {
		return nil, err
	}
	nLines := maxLines(wrapped)
	lines := make([]string, 0, nLines+1)
	divider := 0
	for line := range nLines {
		var sb strings.Builder
		sb.WriteString(vertical)
		sb.WriteString(" ")
		for i, col := range cols {
			cell := ""
			if line < len(wrapped[i]) {
				cell = wrapped[i][line]
			}
			sb.WriteString(alignCell(cell, col.Width, col.Align))
			sb.WriteString(" ")
			sb.WriteString(vertical)
			sb.WriteString(" ")
		}
		if line == 0 {
			// The divider spans the untrimmed row, closing border space included.
			divider = widthCond.StringWidth(sb.String())
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return append(lines, strings.Repeat(rowDivider, divider)), nil
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - widthCond.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
