package schedule

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the DD/MM/YYYY form flight dates are entered in.
const DateLayout = "02/01/2006"

// ValidDate reports whether s is a real calendar date written as
// DD/MM/YYYY with a two-digit day and month and a four-digit year after 0000.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return d.Year() > 0
}

// GenerateID builds a flight ID from the first two non-whitespace
// characters of airline, upper-cased, followed by three digits drawn from
// intn. intn(n) must return a value in [0, n).
func GenerateID(airline string, intn func(n int) int) (string, error) {
	var prefix []rune
	for _, r := range airline {
		if unicode.IsSpace(r) {
			continue
		}
		prefix = append(prefix, r)
		if len(prefix) == 2 {
			break
		}
	}
	if len(prefix) < 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidAirlineName, airline)
	}
	return fmt.Sprintf("%s%03d", strings.ToUpper(string(prefix)), intn(1000)), nil
}
