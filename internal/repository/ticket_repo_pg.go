package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByToken(ctx context.Context, token string) (*domain.Ticket, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

// Create writes the ticket, its rider rows and the booking-person backref in
// one transaction. A missing booking person rolls the whole write back, so a
// ticket can never end up on a train without its booking-person side.
func (r *PGTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var bookingPersonID int64
	if err := tx.QueryRow(ctx, `SELECT id FROM passengers WHERE id=$1`, ticket.BookingPersonID).Scan(&bookingPersonID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrBookingPersonNotFound
		}
		return err
	}

	if err := tx.QueryRow(ctx, `INSERT INTO tickets (token, train_id, from_station, to_station, booking_person_id, total_fare)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`, ticket.Token, ticket.TrainID, ticket.FromStation, ticket.ToStation, ticket.BookingPersonID, ticket.TotalFare).
		Scan(&ticket.ID, &ticket.CreatedAt); err != nil {
		return err
	}

	for i, p := range ticket.Passengers {
		if _, err := tx.Exec(ctx, `INSERT INTO ticket_passengers (ticket_id, passenger_id, ord) VALUES ($1, $2, $3)`, ticket.ID, p.ID, i); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `UPDATE trains SET updated_at=now() WHERE id=$1`, ticket.TrainID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGTicketRepository) GetByToken(ctx context.Context, token string) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `SELECT id, token, train_id, from_station, to_station, booking_person_id, total_fare, created_at FROM tickets WHERE token=$1`, token)
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.Token, &t.TrainID, &t.FromStation, &t.ToStation, &t.BookingPersonID, &t.TotalFare, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT p.id, p.age FROM ticket_passengers tp JOIN passengers p ON p.id = tp.passenger_id WHERE tp.ticket_id=$1 ORDER BY tp.ord`, t.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.Age); err != nil {
			return nil, err
		}
		t.Passengers = append(t.Passengers, p)
	}
	return &t, rows.Err()
}

var _ TicketRepository = (*PGTicketRepository)(nil)
