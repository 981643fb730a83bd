package hours

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /is-in-business-hour?restaurant_id=
// --------------------------------------------------
func (h *Handler) IsInBusinessHour(c *gin.Context) {
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	check, err := h.service.IsInBusinessHour(c.Request.Context(), restaurantID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check business hours"})
		return
	}

	resp := gin.H{
		"is_in_business_hour": check.Active,
		"current_time":        check.CurrentTime,
		"day":                 check.Day,
	}
	if check.Window != "" {
		resp["business_hours"] = check.Window
	}
	if check.Message != "" {
		resp["message"] = check.Message
	}
	c.JSON(http.StatusOK, resp)
}

// --------------------------------------------------
// GET /is-in-lunch-hour?restaurant_id=
// --------------------------------------------------
func (h *Handler) IsInLunchHour(c *gin.Context) {
	restaurantID := c.Query("restaurant_id")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	check, err := h.service.IsInLunchHour(c.Request.Context(), restaurantID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check lunch hours"})
		return
	}

	resp := gin.H{
		"is_in_lunch_hour": check.Active,
		"current_time":     check.CurrentTime,
		"day":              check.Day,
	}
	if check.Window != "" {
		resp["lunch_hours"] = check.Window
	}
	if check.Message != "" {
		resp["message"] = check.Message
	}
	c.JSON(http.StatusOK, resp)
}

// --------------------------------------------------
// GET /store-hours/:id
// --------------------------------------------------
func (h *Handler) GetStoreHours(c *gin.Context) {
	sh, err := h.service.GetStoreHours(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get store hours"})
		return
	}
	c.JSON(http.StatusOK, sh)
}

// --------------------------------------------------
// PUT /store-hours/:id
// --------------------------------------------------
func (h *Handler) UpdateStoreHours(c *gin.Context) {
	var sh StoreHours
	if err := c.ShouldBindJSON(&sh); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid store hours payload"})
		return
	}

	if err := h.service.UpdateStoreHours(c.Request.Context(), c.Param("id"), sh); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "store hours updated successfully"})
}
