package flightboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"
)

// WriteIter formats records from an iterator and writes them to w as they
// arrive. Column widths are fixed by the layout, so Table rows stream one by
// one after the header, as do CSV, TSV, JSONL, Plain and GoTemplate. JSON is
// streamed as array elements. YAML, Markdown and HTML collect the records
// first. A record that does not match the layout stops the stream with an
// error; rows already written stay written.
func WriteIter(w io.Writer, f Format, cols Columns, seq iter.Seq[Record]) error {
	if err := cols.Validate(); err != nil {
		return err
	}
	switch f {
	case Table:
		if err := writeTableHeader(w, cols); err != nil {
			return err
		}
		return streamEach(cols, seq, func(rec Record) error {
			return writeTableRow(w, cols, rec)
		})
	case CSV:
		if err := writeCSVRow(w, cols.Headings()); err != nil {
			return err
		}
		return streamEach(cols, seq, func(rec Record) error {
			return writeCSVRow(w, cols.Values(rec))
		})
	case TSV:
		if err := writeTSVRow(w, cols.Headings()); err != nil {
			return err
		}
		return streamEach(cols, seq, func(rec Record) error {
			return writeTSVRow(w, cols.Values(rec))
		})
	case JSONL:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return streamEach(cols, seq, func(rec Record) error {
			return enc.Encode(orderedRecord{cols: cols, rec: rec})
		})
	case Plain:
		return streamEach(cols, seq, func(rec Record) error {
			return writePlainRecord(w, cols, rec)
		})
	case JSON:
		return streamJSON(w, cols, seq)
	case YAML, Markdown, HTML:
		return streamCollect(w, f, cols, seq)
	default:
		if tmplStr, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			tmpl, err := parseTemplate(tmplStr)
			if err != nil {
				return err
			}
			return streamEach(cols, seq, func(rec Record) error {
				return executeTemplate(w, tmpl, rec)
			})
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan formats records from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, cols Columns, ch <-chan Record) error {
	return WriteIter(w, f, cols, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// streamEach checks and hands each record to fn until fn fails.
func streamEach(cols Columns, seq iter.Seq[Record], fn func(Record) error) error {
	for rec := range seq {
		if err := cols.check(rec); err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

func streamCollect(w io.Writer, f Format, cols Columns, seq iter.Seq[Record]) error {
	var records []Record
	for rec := range seq {
		records = append(records, rec)
	}
	return Write(w, f, cols, records...)
}

func streamJSON(w io.Writer, cols Columns, seq iter.Seq[Record]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	first := true
	err := streamEach(cols, seq, func(rec Record) error {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		buf.Reset()
		if err := enc.Encode(orderedRecord{cols: cols, rec: rec}); err != nil {
			return err
		}
		_, err := w.Write(bytes.TrimRight(buf.Bytes(), "\n"))
		return err
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "]\n")
	return err
}
