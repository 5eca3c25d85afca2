package menu_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/flightboard"
	"github.com/bjaus/flightboard/internal/menu"
	"github.com/bjaus/flightboard/internal/schedule"
)

func newRepo() *schedule.Repository {
	return schedule.New(schedule.DefaultAirlines(), schedule.DefaultFlights(),
		schedule.WithRand(func(int) int { return 42 }))
}

func run(t *testing.T, repo *schedule.Repository, input string, opts ...menu.Option) string {
	t.Helper()
	var out bytes.Buffer
	s := menu.New(repo, schedule.DefaultColumns(), strings.NewReader(input), &out, opts...)
	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

func answers(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

var errWriteFailed = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func TestStateString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "main-menu", menu.MainMenu.String())
	assert.Equal(t, "add-flight", menu.AddFlight.String())
	assert.Equal(t, "state(42)", menu.State(42).String())
}

func TestRunExit(t *testing.T) {
	t.Parallel()
	out := run(t, newRepo(), answers("3"))
	assert.Contains(t, out, "MENU")
	assert.Contains(t, out, "[1] View current flight schedule\n[2] Log flight change\n[3] EXIT\n")
	assert.Contains(t, out, "Please select an action to continue [1-3]: ")
	assert.True(t, strings.HasSuffix(out, "EXITING...\n"))
}

func TestRunEndOfInputExits(t *testing.T) {
	t.Parallel()
	out := run(t, newRepo(), "")
	assert.True(t, strings.HasSuffix(out, "EXITING...\n"))
}

func TestRunRejectsInvalidChoice(t *testing.T) {
	t.Parallel()
	out := run(t, newRepo(), answers("9", "abc", "3"))
	assert.Equal(t, 2, strings.Count(out, "ERROR: Please enter a number between 1 and 3."))
}

func TestRunViewSchedule(t *testing.T) {
	t.Parallel()
	out := run(t, newRepo(), answers("1", "x", "q", "3"))
	table, err := flightboard.RenderTable(schedule.DefaultColumns(), flightboard.Records(schedule.DefaultFlights()...))
	require.NoError(t, err)
	assert.Contains(t, out, "Current Schedule")
	assert.Contains(t, out, table)
	assert.Equal(t, 2, strings.Count(out, "Press q to return to main menu... "))
}

func TestRunChangeDate(t *testing.T) {
	t.Parallel()
	repo := newRepo()
	out := run(t, repo, answers("2", "1", "XX", "qa187", "99/99/2024", "01/01/2025", "q", "3"))

	assert.Contains(t, out, "[0] CANCEL")
	assert.Contains(t, out, "ERROR: Flight ID XX not found.")
	assert.Contains(t, out, "The current departure date for QA187 is 15/05/2024")
	assert.Contains(t, out, "ERROR: The provided date does not use the correct format")
	assert.Contains(t, out, "Flight successfully updated!")

	f, ok := repo.Find("QA187")
	require.True(t, ok)
	assert.Equal(t, "01/01/2025", f.Date)
}

func TestRunAddFlightWithNewAirline(t *testing.T) {
	t.Parallel()
	repo := newRepo()
	out := run(t, repo, answers(
		"2", "2",
		"4", " ", "qantas", "Rex",
		"4", "Albury", "Sydney", "1/2/2025", "01/02/2025",
		"q", "3",
	))

	assert.Contains(t, out, "[4] Add New Airline")
	assert.Contains(t, out, "ERROR: airline name cannot be blank")
	assert.Contains(t, out, `ERROR: airline already exists: "qantas"`)
	assert.Contains(t, out, "Airline Rex successfully added.")
	assert.Contains(t, out, "[4] Rex\n[5] Add New Airline")
	assert.Contains(t, out, "Successfully added flight RE042 with the following details:")
	assert.Contains(t, out, "| RE042     | Rex             | Albury               | Sydney               | 01/02/2025     |\n"+
		strings.Repeat("-", 95)+"\n")

	flights := repo.Flights()
	require.Len(t, flights, 4)
	assert.Equal(t, schedule.Flight{ID: "RE042", Airline: "Rex", Origin: "Albury", Destination: "Sydney", Date: "01/02/2025"}, flights[3])
	assert.Equal(t, []string{"Qantas", "Jetstar", "Virgin", "Rex"}, repo.Airlines())
}

func TestRunAddFlightReportsRepositoryErrors(t *testing.T) {
	t.Parallel()
	// A one-letter airline can be added but cannot produce a flight ID.
	repo := newRepo()
	out := run(t, repo, answers("2", "2", "4", "Z", "4", "A", "B", "01/02/2025", "q", "3"))
	assert.Contains(t, out, "ERROR: airline name needs at least two non-whitespace characters")
	assert.Len(t, repo.Flights(), 3)
}

func TestRunUpdateMenuCancel(t *testing.T) {
	t.Parallel()
	out := run(t, newRepo(), answers("2", "0", "3"))
	assert.Equal(t, 2, strings.Count(out, "[3] EXIT"))
}

func TestRunWrapsMessages(t *testing.T) {
	t.Parallel()
	out := run(t, newRepo(), answers("2", "1", "XX"), menu.WithLineLength(40))
	assert.Contains(t, out, "ERROR: Flight ID XX not found. Please\nenter the ID of a flight already tracked\nby this system.")
	assert.Contains(t, out, strings.Repeat("=", 40)+"\n")
	assert.NotContains(t, out, strings.Repeat("=", 41))
}

func TestRunClearScreen(t *testing.T) {
	t.Parallel()
	assert.NotContains(t, run(t, newRepo(), answers("3")), menu.ClearScreen)
	assert.Contains(t, run(t, newRepo(), answers("3"), menu.WithClearScreen(true)), menu.ClearScreen)
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	s := menu.New(newRepo(), schedule.DefaultColumns(), strings.NewReader(answers("3")), &out)
	err := s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsBadSetup(t *testing.T) {
	t.Parallel()
	s := menu.New(newRepo(), nil, strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, s.Run(context.Background()), flightboard.ErrNoColumns)

	s = menu.New(newRepo(), schedule.DefaultColumns(), strings.NewReader(""), &bytes.Buffer{}, menu.WithLineLength(0))
	require.ErrorIs(t, s.Run(context.Background()), flightboard.ErrInvalidWidth)
}

func TestRunWriteError(t *testing.T) {
	t.Parallel()
	s := menu.New(newRepo(), schedule.DefaultColumns(), strings.NewReader(answers("3")), errWriter{})
	require.ErrorIs(t, s.Run(context.Background()), errWriteFailed)
}

// clearFailWriter rejects the clear-screen sequence and accepts everything
// else.
type clearFailWriter struct{ bytes.Buffer }

func (w *clearFailWriter) Write(p []byte) (int, error) {
	if string(p) == menu.ClearScreen {
		return 0, errWriteFailed
	}
	return w.Buffer.Write(p)
}

func TestRunClearScreenWriteError(t *testing.T) {
	t.Parallel()
	var out clearFailWriter
	s := menu.New(newRepo(), schedule.DefaultColumns(), strings.NewReader(answers("3")), &out, menu.WithClearScreen(true))
	require.ErrorIs(t, s.Run(context.Background()), errWriteFailed)
	assert.NotContains(t, out.String(), "MENU")
}
