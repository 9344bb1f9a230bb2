// Package seats implements the seat-capacity accounting for a sub-route.
//
// A train has no single availability number: every (from, to) pair overlaps a
// different subset of the booked tickets, so capacity is recomputed per query
// against the full booked-ticket list.
package seats

import (
	"math"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/route"
)

// segmentWeight is the occupancy budget of an n-station span: 2^(n-1) - 1,
// computed as a float and truncated. The truncation is load-bearing: for
// n == 0 the value is -0.5 and for n == 1 it is 0, so both truncate to 0 and
// a ticket that never intersects the query segment subtracts nothing.
func segmentWeight(n int) int64 {
	return int64(math.Pow(2, float64(n-1)) - 1)
}

// Available returns the raw seat capacity of the query segment given the
// train's total seats and its booked tickets. The result can go negative;
// admission decisions treat anything below the requested count as a refusal,
// read-only queries report the raw value.
func Available(noOfSeats int, segment []domain.Station, booked []domain.Ticket) int64 {
	total := segmentWeight(len(segment)) * int64(noOfSeats)
	for _, t := range booked {
		overlap := route.Overlap(segment, t.FromStation, t.ToStation)
		total -= segmentWeight(overlap) * int64(len(t.Passengers))
	}
	return total
}
