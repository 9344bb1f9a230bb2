package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/railbooking/internal/domain"
)

// statusFromErr maps the domain error taxonomy onto HTTP status codes. All of
// these are terminal validation or not-found failures; only the train lock is
// worth retrying.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrTrainNotFound),
		errors.Is(err, domain.ErrPassengerNotFound),
		errors.Is(err, domain.ErrBookingPersonNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientSeats),
		errors.Is(err, domain.ErrTrainBusy):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSameStation),
		errors.Is(err, domain.ErrInvalidRoute),
		errors.Is(err, domain.ErrStationNotOnRoute):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
