package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/railbooking/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service passengers.PassengerUseCase
}

type addPassengerRequest struct {
	Age int `json:"age"`
}

type passengerResponse struct {
	ID              int64   `json:"id"`
	Age             int     `json:"age"`
	BookedTicketIDs []int64 `json:"booked_ticket_ids"`
}

func NewPassengerHandler(service passengers.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:id", h.get)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req addPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger, err := h.service.AddPassenger(c.Request.Context(), req.Age)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, passengerResponse{
		ID:              passenger.ID,
		Age:             passenger.Age,
		BookedTicketIDs: passenger.BookedTicketIDs,
	})
}

func (h *PassengerHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	passenger, err := h.service.GetPassenger(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, passengerResponse{
		ID:              passenger.ID,
		Age:             passenger.Age,
		BookedTicketIDs: passenger.BookedTicketIDs,
	})
}
