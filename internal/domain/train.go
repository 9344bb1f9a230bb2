package domain

import (
	"fmt"
	"strings"
	"time"
)

// Station is an opaque route token. Ordering is defined only by position on a
// train's route, never by comparing the tokens themselves.
type Station string

// TimeOfDay is a wall-clock departure time, seconds always zero.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

type Train struct {
	ID            int64
	Route         []Station
	NoOfSeats     int
	DepartureTime TimeOfDay
	BookedTickets []Ticket
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RouteString joins the route back into its stored comma form.
func (t *Train) RouteString() string {
	parts := make([]string, 0, len(t.Route))
	for _, s := range t.Route {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ",")
}

// ParseRoute splits a stored comma-delimited route into the ordered station
// sequence. Done once at load, never per query.
func ParseRoute(route string) []Station {
	parts := strings.Split(route, ",")
	stations := make([]Station, 0, len(parts))
	for _, p := range parts {
		stations = append(stations, Station(strings.TrimSpace(p)))
	}
	return stations
}
