package flightboard

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, cols Columns, records []Record) error {
	if err := writeTSVRow(w, cols.Headings()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writeTSVRow(w, cols.Values(rec)); err != nil {
			return err
		}
	}
	return nil
}

// writeTSVRow flattens embedded tabs and newlines so each row stays on one line.
func writeTSVRow(w io.Writer, row []string) error {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = strings.Join(strings.Fields(cell), " ")
	}
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
	return err
}
