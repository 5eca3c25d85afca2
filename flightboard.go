package flightboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrInvalidWidth      = errors.New("invalid wrap width")
	ErrNoColumns         = errors.New("no columns configured")
	ErrInvalidColumn     = errors.New("invalid column")
	ErrDuplicateField    = errors.New("duplicate column field")
	ErrFieldCount        = errors.New("record field count mismatch")
	ErrMissingField      = errors.New("record missing field")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	JSON     Format = "json"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSONL    Format = "jsonl"
	Plain    Format = "plain"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, JSON, YAML, CSV, TSV, Markdown, HTML, JSONL, Plain}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders records using a Go text/template.
// Each record is executed against the template and written on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ParseAlignment maps "left", "center" and "right" to an Alignment.
// The empty string is left.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("%w: unknown alignment %q", ErrInvalidColumn, s)
	}
}

// Column describes one table column: the record field it reads, the
// heading shown above it, and the fixed width its content wraps to.
type Column struct {
	Field   string
	Heading string
	Width   int
	Align   Alignment
}

// Columns is an ordered column layout. Header order is row field order.
type Columns []Column

// Validate reports whether the layout can render rows.
func (c Columns) Validate() error {
	if len(c) == 0 {
		return ErrNoColumns
	}
	seen := make(map[string]struct{}, len(c))
	for i, col := range c {
		if col.Field == "" {
			return fmt.Errorf("%w: column %d has no field", ErrInvalidColumn, i)
		}
		if col.Width <= 0 {
			return fmt.Errorf("%w: column %q width %d", ErrInvalidWidth, col.Field, col.Width)
		}
		if _, dup := seen[col.Field]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateField, col.Field)
		}
		seen[col.Field] = struct{}{}
	}
	return nil
}

// Headings returns the column headings in order.
func (c Columns) Headings() []string {
	out := make([]string, len(c))
	for i, col := range c {
		out[i] = col.Heading
	}
	return out
}

// Values returns the record's values in column order. The record must
// already be checked.
func (c Columns) Values(rec Record) []string {
	out := make([]string, len(c))
	for i, col := range c {
		out[i] = rec[col.Field]
	}
	return out
}

// check rejects records that would misalign the table.
func (c Columns) check(rec Record) error {
	if len(rec) != len(c) {
		return fmt.Errorf("%w: record has %d fields, layout has %d columns", ErrFieldCount, len(rec), len(c))
	}
	for _, col := range c {
		if _, ok := rec[col.Field]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingField, col.Field)
		}
	}
	return nil
}

// Record maps field names to values for one table row.
type Record map[string]string

// Recorder is implemented by domain types that render as a table row.
type Recorder interface {
	Record() Record
}

// Write formats records and writes to w. The layout and every record are
// validated before anything is written.
func Write(w io.Writer, f Format, cols Columns, records ...Record) error {
	if err := cols.Validate(); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cols.check(rec); err != nil {
			return err
		}
	}
	switch f {
	case Table:
		return writeTable(w, cols, records)
	case JSON:
		return writeJSON(w, cols, records)
	case YAML:
		return writeYAML(w, cols, records)
	case CSV:
		return writeCSV(w, cols, records)
	case TSV:
		return writeTSV(w, cols, records)
	case Markdown:
		return writeMarkdown(w, cols, records)
	case HTML:
		return writeHTML(w, cols, records)
	case JSONL:
		return writeJSONL(w, cols, records)
	case Plain:
		return writePlain(w, cols, records)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, records)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal formats records and returns the bytes.
func Marshal(f Format, cols Columns, records ...Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, cols, records...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Records converts domain values into records.
func Records[T Recorder](items ...T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item.Record()
	}
	return out
}
