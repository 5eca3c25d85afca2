package flightboard

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, cols Columns, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cols.Headings()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(cols.Values(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeCSVRow writes a single CSV row (used by streaming).
func writeCSVRow(w io.Writer, row []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
