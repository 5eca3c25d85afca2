package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bjaus/flightboard"
)

// scan feeds input lines to readLine until input ends or the session stops.
func (s *Session) scan() {
	defer close(s.lines)
	sc := bufio.NewScanner(s.in)
	for sc.Scan() {
		select {
		case s.lines <- sc.Text():
		case <-s.done:
			return
		}
	}
	s.scanErr = sc.Err()
}

func (s *Session) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			if s.scanErr != nil {
				return "", s.scanErr
			}
			return "", io.EOF
		}
		return strings.TrimRight(line, "\r"), nil
	}
}

// prompt writes question on its own wrapped line and returns the trimmed
// answer.
func (s *Session) prompt(ctx context.Context, question string) (string, error) {
	text, err := flightboard.Wrap(question, s.lineLength)
	if err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(s.out, text+" "); err != nil {
		return "", err
	}
	answer, err := s.readLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// choose lists options numbered from 1 and returns the zero-based index of
// the pick. With cancel, "0" is offered and returns -1.
func (s *Session) choose(ctx context.Context, options []string, question string, cancel bool) (int, error) {
	for i, opt := range options {
		if _, err := fmt.Fprintf(s.out, "[%d] %s\n", i+1, opt); err != nil {
			return 0, err
		}
	}
	low := 1
	if cancel {
		low = 0
		if _, err := fmt.Fprintln(s.out, "[0] CANCEL"); err != nil {
			return 0, err
		}
	}
	for {
		answer, err := s.prompt(ctx, fmt.Sprintf("%s [%d-%d]:", question, low, len(options)))
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr == nil && n >= low && n <= len(options) {
			return n - 1, nil
		}
		if err := s.say(fmt.Sprintf("ERROR: Please enter a number between %d and %d.", low, len(options))); err != nil {
			return 0, err
		}
	}
}

// pause waits for the user to type q.
func (s *Session) pause(ctx context.Context) error {
	for {
		answer, err := s.prompt(ctx, "Press q to return to main menu...")
		if err != nil {
			return err
		}
		if strings.EqualFold(answer, "q") {
			return nil
		}
	}
}

// say writes msg wrapped to the session line length.
func (s *Session) say(msg string) error {
	text, err := flightboard.Wrap(msg, s.lineLength)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, text)
	return err
}

// banner frames title between two "=" rules of the session line length.
func (s *Session) banner(title string) error {
	rule := strings.Repeat("=", s.lineLength)
	pad := max(0, (s.lineLength-len(title))/2)
	_, err := fmt.Fprintf(s.out, "%s\n%s%s\n%s\n", rule, strings.Repeat(" ", pad), title, rule)
	return err
}

func (s *Session) clearScreen() error {
	if !s.clear {
		return nil
	}
	_, err := fmt.Fprint(s.out, ClearScreen)
	return err
}
