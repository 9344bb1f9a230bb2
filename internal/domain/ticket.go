package domain

import "time"

type Passenger struct {
	ID  int64
	Age int
	// BookedTicketIDs lists tickets this passenger booked as the booking
	// person. Riders that did not book get no backref.
	BookedTicketIDs []int64
	CreatedAt       time.Time
}

type Ticket struct {
	ID              int64
	Token           string
	TrainID         int64
	FromStation     Station
	ToStation       Station
	Passengers      []Passenger
	BookingPersonID int64
	TotalFare       int64
	CreatedAt       time.Time
}
