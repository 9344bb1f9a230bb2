package trains

import (
	"context"
	"errors"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/route"
	"github.com/Domenick1991/railbooking/internal/seats"
)

type TrainUseCase interface {
	AddTrain(ctx context.Context, input AddTrainInput) (*domain.Train, error)
	List(ctx context.Context) ([]domain.Train, error)
	AvailableSeats(ctx context.Context, trainID int64, from, to domain.Station) (int64, error)
	BoardingCount(ctx context.Context, trainID int64, station domain.Station) (int, error)
	OldestTraveler(ctx context.Context, trainID int64) (int, error)
	TrainsInWindow(ctx context.Context, station domain.Station, start, end domain.TimeOfDay) ([]int64, error)
}

type TrainCache interface {
	GetTrains(ctx context.Context) ([]domain.Train, error)
	SetTrains(ctx context.Context, trains []domain.Train) error
	InvalidateTrains(ctx context.Context) error
}

type TrainService struct {
	repo  repository.TrainRepository
	cache TrainCache
}

type AddTrainInput struct {
	Stations      []string `json:"stations"`
	DepartureTime string   `json:"departure_time"`
	NoOfSeats     int      `json:"no_of_seats"`
}

func NewTrainService(repo repository.TrainRepository, cache TrainCache) *TrainService {
	return &TrainService{repo: repo, cache: cache}
}

func (s *TrainService) AddTrain(ctx context.Context, input AddTrainInput) (*domain.Train, error) {
	if len(input.Stations) < 2 {
		return nil, errors.New("route needs at least two stations")
	}
	if input.NoOfSeats <= 0 {
		return nil, errors.New("seat count must be positive")
	}
	departure, err := domain.ParseTimeOfDay(input.DepartureTime)
	if err != nil {
		return nil, err
	}

	stations := make([]domain.Station, 0, len(input.Stations))
	for _, st := range input.Stations {
		stations = append(stations, domain.Station(st))
	}

	train := &domain.Train{
		Route:         stations,
		NoOfSeats:     input.NoOfSeats,
		DepartureTime: departure,
	}
	if err := s.repo.Create(ctx, train); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateTrains(ctx)
	}
	return train, nil
}

func (s *TrainService) List(ctx context.Context) ([]domain.Train, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTrains(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	trains, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetTrains(ctx, trains)
	}
	return trains, nil
}

// AvailableSeats reports the ledger value for the exact (from, to) pair. The
// raw number is returned even when negative; admission happens elsewhere.
func (s *TrainService) AvailableSeats(ctx context.Context, trainID int64, from, to domain.Station) (int64, error) {
	if from == to {
		return 0, nil
	}

	train, err := s.repo.GetByID(ctx, trainID)
	if err != nil {
		return 0, err
	}

	segment, err := route.NewIndex(train.Route).Segment(from, to)
	if err != nil {
		return 0, err
	}
	return seats.Available(train.NoOfSeats, segment, train.BookedTickets), nil
}

// BoardingCount sums riders of tickets that start exactly at the station.
// Passengers merely passing through do not count.
func (s *TrainService) BoardingCount(ctx context.Context, trainID int64, station domain.Station) (int, error) {
	train, err := s.repo.GetByID(ctx, trainID)
	if err != nil {
		return 0, err
	}

	if !route.NewIndex(train.Route).Contains(station) {
		return 0, domain.ErrStationNotOnRoute
	}

	total := 0
	for _, ticket := range train.BookedTickets {
		if ticket.FromStation == station {
			total += len(ticket.Passengers)
		}
	}
	return total, nil
}

func (s *TrainService) OldestTraveler(ctx context.Context, trainID int64) (int, error) {
	train, err := s.repo.GetByID(ctx, trainID)
	if err != nil {
		return 0, err
	}

	oldest := 0
	for _, ticket := range train.BookedTickets {
		for _, p := range ticket.Passengers {
			if p.Age > oldest {
				oldest = p.Age
			}
		}
	}
	return oldest, nil
}

// TrainsInWindow lists train ids passing the station within [start, end],
// bounds inclusive. Arrival at route index i is approximated as departure
// hour + i, keeping the departure minutes; no day rollover. A train that
// revisits the station can be reported more than once.
func (s *TrainService) TrainsInWindow(ctx context.Context, station domain.Station, start, end domain.TimeOfDay) ([]int64, error) {
	trains, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0)
	for _, train := range trains {
		for _, i := range route.NewIndex(train.Route).Positions(station) {
			arrival := (train.DepartureTime.Hour+i)*60 + train.DepartureTime.Minute
			if arrival >= start.Minutes() && arrival <= end.Minutes() {
				ids = append(ids, train.ID)
			}
		}
	}
	return ids, nil
}

var _ TrainUseCase = (*TrainService)(nil)
