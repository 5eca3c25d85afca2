// Package schedule holds the in-memory flight schedule and the airline list
// the console application edits.
package schedule

import "github.com/bjaus/flightboard"

// Record fields of a flight, in table order.
const (
	FieldID          = "id"
	FieldAirline     = "airline"
	FieldOrigin      = "origin"
	FieldDestination = "destination"
	FieldDate        = "date"
)

// Flight is one tracked departure.
type Flight struct {
	ID          string `yaml:"id"`
	Airline     string `yaml:"airline"`
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Date        string `yaml:"date"`
}

// Record returns the flight as a table record.
func (f Flight) Record() flightboard.Record {
	return flightboard.Record{
		FieldID:          f.ID,
		FieldAirline:     f.Airline,
		FieldOrigin:      f.Origin,
		FieldDestination: f.Destination,
		FieldDate:        f.Date,
	}
}

// DefaultColumns is the schedule table layout used when no configuration
// overrides it.
func DefaultColumns() flightboard.Columns {
	return flightboard.Columns{
		{Field: FieldID, Heading: "Flight ID", Width: 9},
		{Field: FieldAirline, Heading: "Airline", Width: 15},
		{Field: FieldOrigin, Heading: "Origin", Width: 20},
		{Field: FieldDestination, Heading: "Destination", Width: 20},
		{Field: FieldDate, Heading: "Date", Width: 14},
	}
}

// DefaultAirlines is the airline list a fresh schedule starts with.
func DefaultAirlines() []string {
	return []string{"Qantas", "Jetstar", "Virgin"}
}

// DefaultFlights is the schedule a fresh run starts with.
func DefaultFlights() []Flight {
	return []Flight{
		{ID: "QA187", Airline: "Qantas", Origin: "Sydney", Destination: "Perth", Date: "15/05/2024"},
		{ID: "JE095", Airline: "Jetstar", Origin: "Gold Coast", Destination: "Alice Springs", Date: "07/06/2024"},
		{ID: "VI783", Airline: "Virgin", Origin: "Bangkok", Destination: "London", Date: "16/08/2024"},
	}
}
