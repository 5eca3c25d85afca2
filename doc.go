// Package flightboard wraps text to fixed column widths and renders records
// as bordered, fixed-width text tables.
//
// # Wrapping
//
// [Wrap] and [WrapLines] reflow a string so that no line is wider than the
// given number of terminal cells. Words are packed greedily; a word wider
// than the column is broken with a trailing hyphen:
//
//	flightboard.Wrap("Too long", 4) // "Too\nlong"
//	flightboard.Wrap("Long", 3)     // "Lo-\nng"
//
// # Tables
//
// A table is described by [Columns], an ordered list of [Column] values.
// Each column names the [Record] field it reads, its heading, and its width.
// [RenderHeader], [RenderRow] and [RenderTable] produce strings:
//
//	| Flight ID | Airline         |
//	===============================
//	| QA187     | Qantas          |
//	--------------------------------
//
// Every field is wrapped independently at its column's width, and the
// wrapped lines are zipped across columns, so a long value grows its row
// downwards instead of widening the table.
//
// # Other formats
//
// [Write] and [Marshal] render the same layout and records as JSON, YAML,
// CSV, TSV, Markdown, HTML, JSONL, Plain or a Go template (see
// [GoTemplate]). [WriteIter] and [WriteChan] accept records as they are
// produced. Use [ParseFormat] to turn a CLI flag into a [Format].
//
// # Errors
//
// Layout and record-shape problems are usage errors and are reported
// before anything is written:
//
//   - [ErrInvalidWidth] — width <= 0
//   - [ErrNoColumns], [ErrInvalidColumn], [ErrDuplicateField] — bad layout
//   - [ErrFieldCount], [ErrMissingField] — record does not match the layout
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
//
// Content never causes an error: empty strings, repeated spaces, line
// breaks and wide runes all render.
package flightboard
