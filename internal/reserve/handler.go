package reserve

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ReservationArgs matches the nested args shape sent by the ordering
// front-end.
type ReservationArgs struct {
	PartySize   int    `json:"party_size"`
	ReserveTime string `json:"reserve_time,omitempty"`
}

type ReservationRequest struct {
	Args ReservationArgs `json:"args"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /generate-reservation-link
// --------------------------------------------------
func (h *Handler) GenerateLink(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation payload"})
		return
	}

	link, err := h.service.BuildLink(req.Args.PartySize, req.Args.ReserveTime, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservation_link": link})
}
