package main

import (
	"time"

	"github.com/zaxiaa/keyra-api/internal/config"
	"github.com/zaxiaa/keyra-api/internal/hours"
	"github.com/zaxiaa/keyra-api/internal/logger"
	"github.com/zaxiaa/keyra-api/internal/menu"
	"github.com/zaxiaa/keyra-api/internal/orders"
	"github.com/zaxiaa/keyra-api/internal/recommend"
	"github.com/zaxiaa/keyra-api/internal/reserve"
	"github.com/zaxiaa/keyra-api/internal/router"
)

// OpenTable referral ID for the restaurant's booking page.
const openTableRID = "1409818"

func main() {
	cfg := config.Load()
	log := logger.Get()
	defer logger.Sync()

	// ───────────────────────── CATALOG ─────────────────────────
	catalog, err := menu.LoadCatalog()
	if err != nil {
		log.Fatalf("menu catalog failed to load: %v", err)
	}
	log.Infof("menu catalog loaded with %d items", catalog.Len())

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("unknown timezone %q: %v", cfg.Timezone, err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	recommendService := recommend.NewService(catalog, loc)
	hoursService := hours.NewService(hours.NewInMemoryRepository())
	orderService := orders.NewService(cfg.TaxRate)
	reserveService := reserve.NewService(openTableRID)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(cfg.AllowedOrigins, router.Handlers{
		Recommend: recommend.NewHandler(recommendService),
		Hours:     hours.NewHandler(hoursService),
		Orders:    orders.NewHandler(orderService),
		Reserve:   reserve.NewHandler(reserveService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Infof("🚀 API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
