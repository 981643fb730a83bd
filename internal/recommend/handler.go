package recommend

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zaxiaa/keyra-api/internal/menu"
	"github.com/zaxiaa/keyra-api/internal/metrics"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /recommend
// --------------------------------------------------
func (h *Handler) Recommend(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body, expected {category?, price_range?: {min?, max?}}",
		})
		return
	}

	items := h.service.Recommend(req, time.Now())
	if items == nil {
		items = []menu.Item{}
	}

	metrics.ObserveRecommendationSize(len(items))
	c.JSON(http.StatusOK, Response{Items: items})
}
