package domain

import "errors"

var (
	ErrTrainNotFound         = errors.New("train not found")
	ErrPassengerNotFound     = errors.New("passenger not found")
	ErrBookingPersonNotFound = errors.New("booking person not found")
	ErrSameStation           = errors.New("same station given")
	ErrInvalidRoute          = errors.New("invalid stations")
	ErrInsufficientSeats     = errors.New("less tickets are available")
	ErrStationNotOnRoute     = errors.New("train is not passing from this station")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrTrainBusy             = errors.New("train is locked by another booking")
)
