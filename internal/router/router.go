package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zaxiaa/keyra-api/internal/hours"
	"github.com/zaxiaa/keyra-api/internal/metrics"
	"github.com/zaxiaa/keyra-api/internal/middleware"
	"github.com/zaxiaa/keyra-api/internal/orders"
	"github.com/zaxiaa/keyra-api/internal/recommend"
	"github.com/zaxiaa/keyra-api/internal/reserve"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Recommend *recommend.Handler
	Hours     *hours.Handler
	Orders    *orders.Handler
	Reserve   *reserve.Handler
}

// New assembles the gin engine with middleware and all routes.
func New(allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Collector())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Keyra Restaurant API",
			"status":  "running",
			"services": gin.H{
				"business_operations": "Business hours, lunch hours, order totals, store configuration",
				"recommendations":     "Menu recommendations by category and price range",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "keyra-restaurant-api"})
	})

	r.GET("/metrics", metrics.Handler())

	r.POST("/recommend", h.Recommend.Recommend)

	r.GET("/is-in-business-hour", h.Hours.IsInBusinessHour)
	r.GET("/is-in-lunch-hour", h.Hours.IsInLunchHour)
	r.GET("/store-hours/:id", h.Hours.GetStoreHours)
	r.PUT("/store-hours/:id", h.Hours.UpdateStoreHours)

	r.POST("/get-order-total", h.Orders.GetOrderTotal)

	r.POST("/generate-reservation-link", h.Reserve.GenerateLink)

	return r
}
