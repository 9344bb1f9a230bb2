// Package route answers ordering questions about a train's station sequence.
package route

import (
	"github.com/Domenick1991/railbooking/internal/domain"
)

// Index is a parsed route with positions precomputed for O(1) lookups.
type Index struct {
	stations []domain.Station
	pos      map[domain.Station][]int
}

func NewIndex(stations []domain.Station) *Index {
	pos := make(map[domain.Station][]int, len(stations))
	for i, s := range stations {
		pos[s] = append(pos[s], i)
	}
	return &Index{stations: stations, pos: pos}
}

func (ix *Index) Stations() []domain.Station {
	return ix.stations
}

func (ix *Index) Contains(s domain.Station) bool {
	_, ok := ix.pos[s]
	return ok
}

// Positions returns every route index at which the station occurs, in order.
// A looping route may visit the same station more than once.
func (ix *Index) Positions(s domain.Station) []int {
	return ix.pos[s]
}

// Segment resolves the inclusive sub-route between from and to. It fails when
// either station is off the route, from does not strictly precede to, or the
// stations are equal.
func (ix *Index) Segment(from, to domain.Station) ([]domain.Station, error) {
	if from == to {
		return nil, domain.ErrInvalidRoute
	}
	fromPos, ok := ix.pos[from]
	if !ok {
		return nil, domain.ErrInvalidRoute
	}
	toPos, ok := ix.pos[to]
	if !ok {
		return nil, domain.ErrInvalidRoute
	}
	if fromPos[0] >= toPos[len(toPos)-1] {
		return nil, domain.ErrInvalidRoute
	}
	return ix.stations[fromPos[0] : toPos[len(toPos)-1]+1], nil
}

// Overlap counts how many stations of the query segment a booked ticket
// occupies. The scan starts when the ticket's from station is reached and
// stops, inclusive, at its to station; endpoints absent from the segment
// contribute nothing.
func Overlap(segment []domain.Station, from, to domain.Station) int {
	started := false
	count := 0
	for _, s := range segment {
		if s == from {
			started = true
		}
		if started {
			count++
		}
		if s == to {
			started = false
		}
	}
	return count
}
