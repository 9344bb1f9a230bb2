package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service booking.BookingUseCase
}

type bookTicketRequest struct {
	TrainID         int64    `json:"train_id"`
	PassengerIDs    []int64  `json:"passenger_ids"`
	BookingPersonID int64    `json:"booking_person_id"`
	FromStation     string   `json:"from_station"`
	ToStation       string   `json:"to_station"`
	NoOfSeats       int      `json:"no_of_seats"`
}

type ticketResponse struct {
	TicketID        int64   `json:"ticket_id"`
	Token           string  `json:"token"`
	TrainID         int64   `json:"train_id"`
	FromStation     string  `json:"from_station"`
	ToStation       string  `json:"to_station"`
	PassengerIDs    []int64 `json:"passenger_ids"`
	BookingPersonID int64   `json:"booking_person_id"`
	TotalFare       int64   `json:"total_fare"`
	BookedAt        string  `json:"booked_at"`
}

func NewTicketHandler(service booking.BookingUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.book)
	router.GET("/:token", h.get)
}

func (h *TicketHandler) book(c *gin.Context) {
	var req bookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.BookTicket(c.Request.Context(), booking.BookTicketInput{
		TrainID:         req.TrainID,
		PassengerIDs:    req.PassengerIDs,
		BookingPersonID: req.BookingPersonID,
		FromStation:     domain.Station(req.FromStation),
		ToStation:       domain.Station(req.ToStation),
		NoOfSeats:       req.NoOfSeats,
	})
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toTicketResponse(ticket))
}

func (h *TicketHandler) get(c *gin.Context) {
	token := c.Param("token")
	ticket, err := h.service.GetTicket(c.Request.Context(), token)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func toTicketResponse(t *domain.Ticket) ticketResponse {
	passengerIDs := make([]int64, 0, len(t.Passengers))
	for _, p := range t.Passengers {
		passengerIDs = append(passengerIDs, p.ID)
	}
	return ticketResponse{
		TicketID:        t.ID,
		Token:           t.Token,
		TrainID:         t.TrainID,
		FromStation:     string(t.FromStation),
		ToStation:       string(t.ToStation),
		PassengerIDs:    passengerIDs,
		BookingPersonID: t.BookingPersonID,
		TotalFare:       t.TotalFare,
		BookedAt:        t.CreatedAt.Format(time.RFC3339),
	}
}
