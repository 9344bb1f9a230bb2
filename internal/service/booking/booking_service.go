package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/kafka"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/route"
	"github.com/Domenick1991/railbooking/internal/seats"
	"github.com/google/uuid"
)

// farePerStation is the flat rate per crossed station per passenger.
const farePerStation = 300

type BookingUseCase interface {
	BookTicket(ctx context.Context, input BookTicketInput) (*domain.Ticket, error)
	GetTicket(ctx context.Context, token string) (*domain.Ticket, error)
}

type Cache interface {
	AcquireTrainLock(ctx context.Context, trainID int64, ttl time.Duration) (bool, error)
	ReleaseTrainLock(ctx context.Context, trainID int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	trains             repository.TrainRepository
	passengers         repository.PassengerRepository
	tickets            repository.TicketRepository
	cache              Cache
	producer           Producer
	ticketsTopic       string
	notificationsTopic string
	lockTTL            time.Duration
}

type BookTicketInput struct {
	TrainID         int64          `json:"train_id"`
	PassengerIDs    []int64        `json:"passenger_ids"`
	BookingPersonID int64          `json:"booking_person_id"`
	FromStation     domain.Station `json:"from_station"`
	ToStation       domain.Station `json:"to_station"`
	NoOfSeats       int            `json:"no_of_seats"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	trains repository.TrainRepository,
	passengers repository.PassengerRepository,
	tickets repository.TicketRepository,
	cache Cache,
	producer *kafka.Producer,
	ticketsTopic string,
	lockTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		trains:       trains,
		passengers:   passengers,
		tickets:      tickets,
		cache:        cache,
		producer:     producer,
		ticketsTopic: ticketsTopic,
		lockTTL:      lockTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookTicket admits a booking against the train's seat ledger and persists it.
// The whole read-check-append sequence for one train runs under the train
// lock, otherwise two concurrent bookings could both pass the capacity check.
func (s *BookingService) BookTicket(ctx context.Context, input BookTicketInput) (*domain.Ticket, error) {
	if len(input.PassengerIDs) == 0 {
		return nil, errors.New("at least one passenger is required")
	}
	if input.NoOfSeats <= 0 {
		return nil, errors.New("seat count must be positive")
	}

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireTrainLock(ctx, input.TrainID, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrTrainBusy
		}
		locked = true
	}
	defer func() {
		if locked {
			_ = s.cache.ReleaseTrainLock(ctx, input.TrainID)
		}
	}()

	train, err := s.trains.GetByID(ctx, input.TrainID)
	if err != nil {
		return nil, err
	}

	riders := make([]domain.Passenger, 0, len(input.PassengerIDs))
	for _, id := range input.PassengerIDs {
		p, err := s.passengers.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		riders = append(riders, *p)
	}

	if input.FromStation == input.ToStation {
		return nil, domain.ErrSameStation
	}

	segment, err := route.NewIndex(train.Route).Segment(input.FromStation, input.ToStation)
	if err != nil {
		return nil, err
	}

	available := seats.Available(train.NoOfSeats, segment, train.BookedTickets)
	if available < int64(input.NoOfSeats) {
		return nil, domain.ErrInsufficientSeats
	}

	totalFare := int64(len(segment)-1) * int64(len(riders)) * farePerStation

	ticket := &domain.Ticket{
		Token:           uuid.NewString(),
		TrainID:         train.ID,
		FromStation:     input.FromStation,
		ToStation:       input.ToStation,
		Passengers:      riders,
		BookingPersonID: input.BookingPersonID,
		TotalFare:       totalFare,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "ticket_booked", ticket); err != nil {
		fmt.Printf("WARNING: Failed to publish ticket_booked event for ticket %s: %v\n", ticket.Token, err)
	}
	return ticket, nil
}

func (s *BookingService) GetTicket(ctx context.Context, token string) (*domain.Ticket, error) {
	return s.tickets.GetByToken(ctx, token)
}

func (s *BookingService) publish(ctx context.Context, eventType string, ticket *domain.Ticket) error {
	if s.producer == nil || s.ticketsTopic == "" {
		return nil
	}
	event := kafka.TicketEvent{
		Type:            eventType,
		Token:           ticket.Token,
		TicketID:        ticket.ID,
		TrainID:         ticket.TrainID,
		FromStation:     string(ticket.FromStation),
		ToStation:       string(ticket.ToStation),
		PassengerCount:  len(ticket.Passengers),
		BookingPersonID: ticket.BookingPersonID,
		TotalFare:       ticket.TotalFare,
		BookedAt:        ticket.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.ticketsTopic, ticket.Token, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, ticket.Token, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
