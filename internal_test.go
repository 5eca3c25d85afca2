package flightboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var errInternalWrite = errors.New("write failed")

func TestHyphenate(t *testing.T) {
	t.Parallel()
	chunk, rest := hyphenate("Hello", 3)
	assert.Equal(t, "He-", chunk)
	assert.Equal(t, "llo", rest)
}

func TestHyphenateWidthOne(t *testing.T) {
	t.Parallel()
	// No room for a hyphen: one rune per chunk.
	chunk, rest := hyphenate("ab", 1)
	assert.Equal(t, "a", chunk)
	assert.Equal(t, "b", rest)
}

func TestHyphenateWideCharSafety(t *testing.T) {
	t.Parallel()
	// "你" is two cells wide and cannot fit in the single cell left before
	// the hyphen. The safety branch advances one rune to avoid an infinite
	// loop.
	chunk, rest := hyphenate("你好", 2)
	assert.Equal(t, "你", chunk)
	assert.Equal(t, "好", rest)
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", alignCell("ab", 5, AlignLeft))
	assert.Equal(t, "   ab", alignCell("ab", 5, AlignRight))
	assert.Equal(t, " ab  ", alignCell("ab", 5, AlignCenter))
	assert.Equal(t, "toolong", alignCell("toolong", 3, AlignLeft))
}

func TestMaxLinesAtLeastOne(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, maxLines(nil))
	assert.Equal(t, 3, maxLines([][]string{{"a"}, {"a", "b", "c"}, {}}))
}

func TestHeaderLongHeadingIsNotPadded(t *testing.T) {
	t.Parallel()
	got := headerLines(Columns{{Field: "id", Heading: "Flight ID", Width: 3}})
	assert.Equal(t, []string{"| Flight ID |", "============="}, got)
}

func TestOrderedRecordYAMLNode(t *testing.T) {
	t.Parallel()
	cols := Columns{{Field: "b", Width: 1}, {Field: "a", Width: 1}}
	out, err := yaml.Marshal(orderedRecord{cols: cols, rec: Record{"a": "1", "b": "two"}})
	assert.NoError(t, err)
	// Column order wins over key order, and numeric-looking values stay strings.
	assert.Equal(t, "b: two\na: \"1\"\n", string(out))
}

func TestChanToIterStopsEarly(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	var got []int
	for v := range chanToIter(ch) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestWriteCSVRowSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := writeCSVRow(&buf, []string{"a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, "a,b\n", buf.String())
}

func TestWriteCSVRowError(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	// Small data: flush error hit via cw.Error().
	err := writeCSVRow(w, []string{"a", "b"})
	assert.Error(t, err)
}

func TestWriteCSVRowLargeDataError(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	// Large data exceeds bufio buffer (4096 bytes), causing cw.Write to fail.
	big := strings.Repeat("x", 5000)
	err := writeCSVRow(w, []string{big})
	assert.Error(t, err)
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

// Not parallel: flips the locale-derived runewidth default for its duration.
func TestWidthIgnoresEastAsianLocale(t *testing.T) {
	orig := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = true
	t.Cleanup(func() { runewidth.DefaultCondition.EastAsianWidth = orig })
	require.Equal(t, 2, runewidth.StringWidth("±"))

	got, err := Wrap("±±±± αβγ", 4)
	require.NoError(t, err)
	assert.Equal(t, "±±±±\nαβγ", got)

	row, err := RenderRow(Columns{{Field: "v", Heading: "V", Width: 4}}, Record{"v": "±±±±"})
	require.NoError(t, err)
	assert.Equal(t, "| ±±±± |\n---------", row)
}
