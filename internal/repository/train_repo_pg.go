package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TrainRepository interface {
	Create(ctx context.Context, train *domain.Train) error
	GetByID(ctx context.Context, id int64) (*domain.Train, error)
	List(ctx context.Context) ([]domain.Train, error)
}

type PGTrainRepository struct {
	db *pgxpool.Pool
}

func NewTrainRepository(db *pgxpool.Pool) TrainRepository {
	return &PGTrainRepository{db: db}
}

func (r *PGTrainRepository) Create(ctx context.Context, train *domain.Train) error {
	return r.db.QueryRow(ctx, `INSERT INTO trains (route, departure_time, no_of_seats)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`, train.RouteString(), train.DepartureTime.String(), train.NoOfSeats).
		Scan(&train.ID, &train.CreatedAt, &train.UpdatedAt)
}

// GetByID loads the train together with its booked tickets and their rider
// lists, so callers see one committed snapshot of the ledger.
func (r *PGTrainRepository) GetByID(ctx context.Context, id int64) (*domain.Train, error) {
	row := r.db.QueryRow(ctx, `SELECT id, route, departure_time, no_of_seats, created_at, updated_at FROM trains WHERE id=$1`, id)
	train, err := scanTrain(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTrainNotFound
		}
		return nil, err
	}

	tickets, err := r.ticketsForTrain(ctx, id)
	if err != nil {
		return nil, err
	}
	train.BookedTickets = tickets
	return train, nil
}

func (r *PGTrainRepository) List(ctx context.Context) ([]domain.Train, error) {
	rows, err := r.db.Query(ctx, `SELECT id, route, departure_time, no_of_seats, created_at, updated_at FROM trains ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trains := make([]domain.Train, 0)
	for rows.Next() {
		train, err := scanTrain(rows)
		if err != nil {
			return nil, err
		}
		trains = append(trains, *train)
	}
	return trains, rows.Err()
}

func (r *PGTrainRepository) ticketsForTrain(ctx context.Context, trainID int64) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT id, token, train_id, from_station, to_station, booking_person_id, total_fare, created_at FROM tickets WHERE train_id=$1 ORDER BY id`, trainID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Token, &t.TrainID, &t.FromStation, &t.ToStation, &t.BookingPersonID, &t.TotalFare, &t.CreatedAt); err != nil {
			return nil, err
		}
		index[t.ID] = len(tickets)
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	riderRows, err := r.db.Query(ctx, `SELECT tp.ticket_id, p.id, p.age
		FROM ticket_passengers tp
		JOIN passengers p ON p.id = tp.passenger_id
		JOIN tickets t ON t.id = tp.ticket_id
		WHERE t.train_id=$1
		ORDER BY tp.ticket_id, tp.ord`, trainID)
	if err != nil {
		return nil, err
	}
	defer riderRows.Close()

	for riderRows.Next() {
		var ticketID int64
		var p domain.Passenger
		if err := riderRows.Scan(&ticketID, &p.ID, &p.Age); err != nil {
			return nil, err
		}
		if i, ok := index[ticketID]; ok {
			tickets[i].Passengers = append(tickets[i].Passengers, p)
		}
	}
	return tickets, riderRows.Err()
}

func scanTrain(row pgx.Row) (*domain.Train, error) {
	var t domain.Train
	var routeStr, depStr string
	if err := row.Scan(&t.ID, &routeStr, &depStr, &t.NoOfSeats, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Route = domain.ParseRoute(routeStr)
	dep, err := domain.ParseTimeOfDay(depStr)
	if err != nil {
		return nil, err
	}
	t.DepartureTime = dep
	return &t, nil
}

var _ TrainRepository = (*PGTrainRepository)(nil)
