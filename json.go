package flightboard

import (
	"bytes"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// orderedRecord encodes a record with its keys in column order.
type orderedRecord struct {
	cols Columns
	rec  Record
}

func ordered(cols Columns, records []Record) []orderedRecord {
	out := make([]orderedRecord, len(records))
	for i, rec := range records {
		out[i] = orderedRecord{cols: cols, rec: rec}
	}
	return out
}

func (o orderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range o.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, col.Field); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, o.rec[col.Field]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONString appends s as a JSON string without HTML escaping.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

func (o orderedRecord) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, col := range o.cols {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col.Field},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: o.rec[col.Field]},
		)
	}
	return node, nil
}

func writeJSON(w io.Writer, cols Columns, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	items := ordered(cols, records)
	if len(items) == 1 {
		return enc.Encode(items[0])
	}
	return enc.Encode(items)
}
