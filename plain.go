package flightboard

import (
	"fmt"
	"io"
	"strings"
)

func writePlain(w io.Writer, cols Columns, records []Record) error {
	for _, rec := range records {
		if err := writePlainRecord(w, cols, rec); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRecord(w io.Writer, cols Columns, rec Record) error {
	_, err := fmt.Fprintln(w, strings.Join(cols.Values(rec), " "))
	return err
}
