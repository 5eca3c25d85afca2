package flightboard

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, cols Columns, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	items := ordered(cols, records)
	if len(items) == 1 {
		if err := enc.Encode(items[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(items); err != nil {
			return err
		}
	}
	return enc.Close()
}
