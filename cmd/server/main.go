package main // Entry point for the HTTP API server

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-management/internal/cache"
	"github.com/iliyamo/hotel-management/internal/config"
	"github.com/iliyamo/hotel-management/internal/database"
	"github.com/iliyamo/hotel-management/internal/handler"
	"github.com/iliyamo/hotel-management/internal/hotel"
	"github.com/iliyamo/hotel-management/internal/middleware"
	"github.com/iliyamo/hotel-management/internal/queue"
	"github.com/iliyamo/hotel-management/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	rdb := config.NewRedisClient() // nil when Redis is absent
	avail := cache.NewAvailabilityCache(rdb, config.LoadCacheConfig())

	manager := hotel.New(db, avail)

	// Background consumer appends lifecycle events to the audit log.
	go queue.StartReservationConsumer()

	e := echo.New()
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	auth, err := handler.NewAuthHandler(cfg)
	if err != nil {
		log.Fatalf("auth setup failed: %v", err)
	}
	rooms := handler.NewRoomHandler(manager)
	reservations := handler.NewReservationHandler(manager)
	guests := handler.NewGuestHandler(manager)
	dashboard := handler.NewDashboardHandler(manager)

	router.RegisterRoutes(e, auth, rooms, reservations, guests, dashboard, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
