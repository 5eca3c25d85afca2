// Package menu runs the interactive console session: a small state machine
// over the main menu, the schedule view and the two update flows.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/bjaus/flightboard"
	"github.com/bjaus/flightboard/internal/schedule"
)

// State is a screen of the console session.
type State int

const (
	MainMenu State = iota
	ViewSchedule
	UpdateMenu
	ChangeDate
	AddFlight
	Exit
)

var stateNames = map[State]string{
	MainMenu:     "main-menu",
	ViewSchedule: "view-schedule",
	UpdateMenu:   "update-menu",
	ChangeDate:   "change-date",
	AddFlight:    "add-flight",
	Exit:         "exit",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// ClearScreen moves the cursor home and clears a VT100 terminal.
const ClearScreen = "\033[H\033[2J"

var (
	mainMenuOptions = []string{
		"View current flight schedule",
		"Log flight change",
		"EXIT",
	}
	updateMenuOptions = []string{
		"Change existing flight date",
		"Add new flight",
	}
)

const addAirlineOption = "Add New Airline"

// Session is one interactive run against a schedule repository.
type Session struct {
	repo       *schedule.Repository
	cols       flightboard.Columns
	in         io.Reader
	out        io.Writer
	lineLength int
	clear      bool

	lines   chan string
	done    chan struct{}
	scanErr error
}

// Option configures a Session.
type Option func(*Session)

// WithLineLength sets the width messages are wrapped to.
func WithLineLength(n int) Option {
	return func(s *Session) { s.lineLength = n }
}

// WithClearScreen clears the terminal before each screen. Only useful when
// out is a terminal.
func WithClearScreen(clear bool) Option {
	return func(s *Session) { s.clear = clear }
}

// New returns a session reading answers from in and writing screens to out.
func New(repo *schedule.Repository, cols flightboard.Columns, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		repo:       repo,
		cols:       cols,
		in:         in,
		out:        out,
		lineLength: 94,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the session until the user exits, input ends, or ctx is
// cancelled. End of input is a normal exit.
func (s *Session) Run(ctx context.Context) error {
	if err := s.cols.Validate(); err != nil {
		return err
	}
	if s.lineLength <= 0 {
		return fmt.Errorf("%w: line length %d", flightboard.ErrInvalidWidth, s.lineLength)
	}
	s.lines = make(chan string)
	s.done = make(chan struct{})
	defer close(s.done)
	go s.scan()

	state := MainMenu
	for state != Exit {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := s.step(ctx, state)
		switch {
		case errors.Is(err, io.EOF):
			next = Exit
		case err != nil:
			return err
		}
		slog.Debug("menu transition", "from", state, "to", next)
		state = next
	}
	if err := s.clearScreen(); err != nil {
		return err
	}
	return s.say("EXITING...")
}

func (s *Session) step(ctx context.Context, state State) (State, error) {
	switch state {
	case MainMenu:
		return s.mainMenu(ctx)
	case ViewSchedule:
		return s.viewSchedule(ctx)
	case UpdateMenu:
		return s.updateMenu(ctx)
	case ChangeDate:
		return s.changeDate(ctx)
	case AddFlight:
		return s.addFlight(ctx)
	default:
		return Exit, fmt.Errorf("unknown menu state %s", state)
	}
}

func (s *Session) mainMenu(ctx context.Context) (State, error) {
	if err := s.clearScreen(); err != nil {
		return Exit, err
	}
	if err := s.banner("MENU"); err != nil {
		return Exit, err
	}
	choice, err := s.choose(ctx, mainMenuOptions, "Please select an action to continue", false)
	if err != nil {
		return Exit, err
	}
	switch choice {
	case 0:
		return ViewSchedule, nil
	case 1:
		return UpdateMenu, nil
	default:
		return Exit, nil
	}
}

func (s *Session) viewSchedule(ctx context.Context) (State, error) {
	if err := s.clearScreen(); err != nil {
		return Exit, err
	}
	if err := s.banner("Current Schedule"); err != nil {
		return Exit, err
	}
	if err := flightboard.WriteIter(s.out, flightboard.Table, s.cols, s.repo.Records()); err != nil {
		return Exit, err
	}
	return MainMenu, s.pause(ctx)
}

func (s *Session) updateMenu(ctx context.Context) (State, error) {
	if err := s.clearScreen(); err != nil {
		return Exit, err
	}
	if err := s.banner("Update Schedule"); err != nil {
		return Exit, err
	}
	choice, err := s.choose(ctx, updateMenuOptions, "Please select an action to continue", true)
	if err != nil {
		return Exit, err
	}
	if err := s.clearScreen(); err != nil {
		return Exit, err
	}
	switch choice {
	case 0:
		return ChangeDate, nil
	case 1:
		return AddFlight, nil
	default:
		return MainMenu, nil
	}
}

func (s *Session) changeDate(ctx context.Context) (State, error) {
	if err := s.banner("Change Flight Date"); err != nil {
		return Exit, err
	}
	var flight schedule.Flight
	for {
		id, err := s.prompt(ctx, "Enter the id of the flight to change the date for:")
		if err != nil {
			return Exit, err
		}
		f, ok := s.repo.Find(id)
		if ok {
			flight = f
			break
		}
		if err := s.say(fmt.Sprintf("ERROR: Flight ID %s not found. Please enter the ID of a flight already tracked by this system.", id)); err != nil {
			return Exit, err
		}
	}
	if err := s.say(fmt.Sprintf("The current departure date for %s is %s", flight.ID, flight.Date)); err != nil {
		return Exit, err
	}
	date, err := s.enterDate(ctx)
	if err != nil {
		return Exit, err
	}
	if _, err := s.repo.UpdateDate(flight.ID, date); err != nil {
		return Exit, err
	}
	if err := s.say("Flight successfully updated!"); err != nil {
		return Exit, err
	}
	return MainMenu, s.pause(ctx)
}

func (s *Session) addFlight(ctx context.Context) (State, error) {
	if err := s.banner("Add New Flight"); err != nil {
		return Exit, err
	}
	airline, err := s.chooseAirline(ctx)
	if err != nil {
		return Exit, err
	}
	origin, err := s.prompt(ctx, "Enter the location the flight will depart from:")
	if err != nil {
		return Exit, err
	}
	destination, err := s.prompt(ctx, "Enter the destination of the flight:")
	if err != nil {
		return Exit, err
	}
	date, err := s.enterDate(ctx)
	if err != nil {
		return Exit, err
	}

	flight, err := s.repo.AddFlight(airline, origin, destination, date)
	if err != nil {
		if err := s.say("ERROR: " + err.Error()); err != nil {
			return Exit, err
		}
		return MainMenu, s.pause(ctx)
	}
	if err := s.say(fmt.Sprintf("Successfully added flight %s with the following details:", flight.ID)); err != nil {
		return Exit, err
	}
	row, err := flightboard.RenderRow(s.cols, flight.Record())
	if err != nil {
		return Exit, err
	}
	if _, err := fmt.Fprintln(s.out, row); err != nil {
		return Exit, err
	}
	return MainMenu, s.pause(ctx)
}

// chooseAirline offers the known airlines plus an entry for adding one, and
// keeps asking until an existing airline is picked.
func (s *Session) chooseAirline(ctx context.Context) (string, error) {
	for {
		airlines := s.repo.Airlines()
		choice, err := s.choose(ctx, append(airlines, addAirlineOption), "Select an existing airline or add a new one", false)
		if err != nil {
			return "", err
		}
		if choice < len(airlines) {
			return airlines[choice], nil
		}
		for {
			name, err := s.prompt(ctx, "Enter the name of the airline to add:")
			if err != nil {
				return "", err
			}
			err = s.repo.AddAirline(name)
			if err == nil {
				if err := s.say(fmt.Sprintf("Airline %s successfully added.", name)); err != nil {
					return "", err
				}
				break
			}
			if err := s.say("ERROR: " + err.Error()); err != nil {
				return "", err
			}
		}
	}
}

func (s *Session) enterDate(ctx context.Context) (string, error) {
	for {
		date, err := s.prompt(ctx, "Enter the departure date of this flight using the format DD/MM/YYYY:")
		if err != nil {
			return "", err
		}
		if schedule.ValidDate(date) {
			return date, nil
		}
		if err := s.say("ERROR: The provided date does not use the correct format or is not a real date, please re-enter the date."); err != nil {
			return "", err
		}
	}
}
