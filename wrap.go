package flightboard

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// widthCond measures display cells with narrow East Asian ambiguous runes
// regardless of locale or RUNEWIDTH_EASTASIAN.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// Wrap reflows text so that no line is wider than width display cells and
// returns the lines joined by "\n". Words that do not fit on any line are
// broken with a trailing hyphen. Empty or all-whitespace text yields "".
func Wrap(text string, width int) (string, error) {
	lines, err := WrapLines(text, width)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// WrapLines is like [Wrap] but returns the individual lines. The result
// always holds at least one line.
//
// Tokens are packed greedily, one space apart. A token wider than width
// first fills whatever room is left on the current line (one space, at
// least one character, one hyphen), then is cut into chunks of width-1
// cells plus "-". The final unhyphenated remainder stays open so the
// following tokens pack onto it.
func WrapLines(text string, width int) ([]string, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	var lines []string
	line := ""
	for _, tok := range strings.Fields(text) {
		tw := widthCond.StringWidth(tok)
		lw := widthCond.StringWidth(line)
		switch {
		case line == "" && tw <= width:
			line = tok
		case line != "" && lw+1+tw <= width:
			line += " " + tok
		case tw <= width:
			lines = append(lines, line)
			line = tok
		default:
			if line != "" {
				head := ""
				if room := width - lw - 2; room > 0 {
					head = widthCond.Truncate(tok, room, "")
				}
				if head != "" {
					lines = append(lines, line+" "+head+"-")
					tok = tok[len(head):]
				} else {
					lines = append(lines, line)
				}
			}
			for widthCond.StringWidth(tok) > width {
				chunk, rest := hyphenate(tok, width)
				lines = append(lines, chunk)
				tok = rest
			}
			line = tok
		}
	}
	return append(lines, line), nil
}

// hyphenate cuts the widest prefix of s that leaves room for a hyphen
// within width. With width 1 there is no such room, so one rune is cut
// without a hyphen.
func hyphenate(s string, width int) (chunk, rest string) {
	head := widthCond.Truncate(s, width-1, "")
	if head == "" {
		// Safety: advance at least one rune to avoid an infinite loop.
		r := []rune(s)
		head = string(r[0])
		return head, s[len(head):]
	}
	return head + "-", s[len(head):]
}
