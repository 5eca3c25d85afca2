package schedule

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/bjaus/flightboard"
)

// Errors returned by repository operations.
var (
	ErrBlankAirline       = errors.New("airline name cannot be blank")
	ErrDuplicateAirline   = errors.New("airline already exists")
	ErrUnknownAirline     = errors.New("unknown airline")
	ErrInvalidAirlineName = errors.New("airline name needs at least two non-whitespace characters")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrInvalidDate        = errors.New("date must be a real date in DD/MM/YYYY format")
	ErrIDExhausted        = errors.New("no free flight ID")
)

// maxIDAttempts bounds how many random IDs AddFlight tries before giving up.
const maxIDAttempts = 1000

// Repository is the in-memory list of flights and airlines. It is owned by
// a single caller and is not safe for concurrent use.
type Repository struct {
	flights  []Flight
	airlines []string
	intn     func(n int) int
}

// Option configures a Repository.
type Option func(*Repository)

// WithRand sets the random source used for flight ID digits.
func WithRand(intn func(n int) int) Option {
	return func(r *Repository) { r.intn = intn }
}

// New returns a repository seeded with copies of airlines and flights.
func New(airlines []string, flights []Flight, opts ...Option) *Repository {
	r := &Repository{
		flights:  slices.Clone(flights),
		airlines: slices.Clone(airlines),
		intn:     rand.IntN,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Flights returns a copy of the tracked flights in insertion order.
func (r *Repository) Flights() []Flight {
	return slices.Clone(r.flights)
}

// All yields the tracked flights in insertion order.
func (r *Repository) All() iter.Seq[Flight] {
	return func(yield func(Flight) bool) {
		for _, f := range r.flights {
			if !yield(f) {
				return
			}
		}
	}
}

// Records yields the tracked flights as table records.
func (r *Repository) Records() iter.Seq[flightboard.Record] {
	return func(yield func(flightboard.Record) bool) {
		for f := range r.All() {
			if !yield(f.Record()) {
				return
			}
		}
	}
}

// Airlines returns a copy of the known airlines.
func (r *Repository) Airlines() []string {
	return slices.Clone(r.airlines)
}

// AddAirline appends name to the airline list. Blank names and names that
// already exist (ignoring case) are rejected.
func (r *Repository) AddAirline(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankAirline
	}
	if r.hasAirline(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateAirline, name)
	}
	r.airlines = append(r.airlines, name)
	slog.Info("airline added", "airline", name)
	return nil
}

func (r *Repository) hasAirline(name string) bool {
	return slices.ContainsFunc(r.airlines, func(a string) bool {
		return strings.EqualFold(a, name)
	})
}

// Find returns the flight with the given ID, ignoring case.
func (r *Repository) Find(id string) (Flight, bool) {
	i := r.index(id)
	if i < 0 {
		return Flight{}, false
	}
	return r.flights[i], true
}

func (r *Repository) index(id string) int {
	return slices.IndexFunc(r.flights, func(f Flight) bool {
		return strings.EqualFold(f.ID, id)
	})
}

// UpdateDate changes the departure date of the flight with the given ID.
func (r *Repository) UpdateDate(id, date string) (Flight, error) {
	if !ValidDate(date) {
		return Flight{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	i := r.index(id)
	if i < 0 {
		return Flight{}, fmt.Errorf("%w: %q", ErrFlightNotFound, id)
	}
	old := r.flights[i].Date
	r.flights[i].Date = date
	slog.Info("flight date changed", "id", r.flights[i].ID, "from", old, "to", date)
	return r.flights[i], nil
}

// AddFlight tracks a new flight for a known airline and returns it with a
// freshly generated ID that no tracked flight uses.
func (r *Repository) AddFlight(airline, origin, destination, date string) (Flight, error) {
	if !r.hasAirline(airline) {
		return Flight{}, fmt.Errorf("%w: %q", ErrUnknownAirline, airline)
	}
	if !ValidDate(date) {
		return Flight{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	id, err := r.freeID(airline)
	if err != nil {
		return Flight{}, err
	}
	f := Flight{ID: id, Airline: airline, Origin: origin, Destination: destination, Date: date}
	r.flights = append(r.flights, f)
	slog.Info("flight added", "id", f.ID, "airline", f.Airline)
	return f, nil
}

func (r *Repository) freeID(airline string) (string, error) {
	for range maxIDAttempts {
		id, err := GenerateID(airline, r.intn)
		if err != nil {
			return "", err
		}
		if r.index(id) < 0 {
			return id, nil
		}
		slog.Debug("flight ID taken, retrying", "id", id)
	}
	return "", fmt.Errorf("%w: airline %q", ErrIDExhausted, airline)
}
