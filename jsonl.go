package flightboard

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, cols Columns, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, item := range ordered(cols, records) {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
