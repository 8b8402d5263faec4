package main // Seeds the room inventory with sample data

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"

	"github.com/iliyamo/hotel-management/internal/config"
	"github.com/iliyamo/hotel-management/internal/database"
	"github.com/iliyamo/hotel-management/internal/hotel"
	"github.com/iliyamo/hotel-management/internal/repository"
)

// sampleRooms is the default inventory used for demos and local
// development.  Seeding is idempotent: rooms that already exist are
// skipped.
var sampleRooms = []struct {
	number    string
	roomType  string
	price     float64
	capacity  uint32
	amenities string
}{
	{"101", "Single", 80.00, 1, "WiFi, TV, AC"},
	{"102", "Single", 80.00, 1, "WiFi, TV, AC"},
	{"201", "Double", 120.00, 2, "WiFi, TV, AC, Mini Bar"},
	{"202", "Double", 120.00, 2, "WiFi, TV, AC, Mini Bar"},
	{"301", "Suite", 200.00, 4, "WiFi, TV, AC, Mini Bar, Living Room"},
	{"302", "Suite", 200.00, 4, "WiFi, TV, AC, Mini Bar, Living Room"},
	{"401", "Presidential", 500.00, 6, "WiFi, TV, AC, Mini Bar, Living Room, Jacuzzi, Balcony"},
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	manager := hotel.New(db, nil)

	added := 0
	for _, r := range sampleRooms {
		_, err := manager.AddRoom(ctx, r.number, r.roomType, r.price, r.capacity, r.amenities, "")
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateRoomNumber) {
				log.Printf("room %s already exists, skipping", r.number)
				continue
			}
			log.Fatalf("seeding room %s failed: %v", r.number, err)
		}
		log.Printf("added room %s (%s, $%.2f/night)", r.number, r.roomType, r.price)
		added++
	}
	log.Printf("seed complete: %d room(s) added", added)
}
