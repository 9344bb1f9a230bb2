package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/gin-gonic/gin"
)

type TrainHandler struct {
	service trains.TrainUseCase
}

type trainResponse struct {
	ID            int64    `json:"id"`
	Stations      []string `json:"stations"`
	DepartureTime string   `json:"departure_time"`
	NoOfSeats     int      `json:"no_of_seats"`
}

func NewTrainHandler(service trains.TrainUseCase) *TrainHandler {
	return &TrainHandler{service: service}
}

func (h *TrainHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id/seats", h.availableSeats)
	router.GET("/:id/boarding", h.boardingCount)
	router.GET("/:id/oldest-traveler", h.oldestTraveler)
}

// RegisterStations mounts the station-scoped window query.
func (h *TrainHandler) RegisterStations(router *gin.RouterGroup) {
	router.GET("/:station/trains", h.trainsInWindow)
}

func (h *TrainHandler) create(c *gin.Context) {
	var req trains.AddTrainInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	train, err := h.service.AddTrain(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toTrainResponse(train))
}

func (h *TrainHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]trainResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toTrainResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrainHandler) availableSeats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	from := domain.Station(c.Query("from"))
	to := domain.Station(c.Query("to"))
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	available, err := h.service.AvailableSeats(c.Request.Context(), id, from, to)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available_seats": available})
}

func (h *TrainHandler) boardingCount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	station := domain.Station(c.Query("station"))
	if station == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "station is required"})
		return
	}

	count, err := h.service.BoardingCount(c.Request.Context(), id, station)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"boarding_count": count})
}

func (h *TrainHandler) oldestTraveler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	age, err := h.service.OldestTraveler(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"oldest_traveler_age": age})
}

func (h *TrainHandler) trainsInWindow(c *gin.Context) {
	station := domain.Station(c.Param("station"))
	start, err := domain.ParseTimeOfDay(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start time"})
		return
	}
	end, err := domain.ParseTimeOfDay(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end time"})
		return
	}

	ids, err := h.service.TrainsInWindow(c.Request.Context(), station, start, end)
	if err != nil {
		c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"train_ids": ids})
}

func toTrainResponse(t *domain.Train) trainResponse {
	stations := make([]string, 0, len(t.Route))
	for _, s := range t.Route {
		stations = append(stations, string(s))
	}
	return trainResponse{
		ID:            t.ID,
		Stations:      stations,
		DepartureTime: t.DepartureTime.String(),
		NoOfSeats:     t.NoOfSeats,
	}
}
