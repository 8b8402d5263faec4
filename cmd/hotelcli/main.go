package main // Entry point for the front-desk terminal

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/iliyamo/hotel-management/internal/cli"
	"github.com/iliyamo/hotel-management/internal/config"
	"github.com/iliyamo/hotel-management/internal/database"
	"github.com/iliyamo/hotel-management/internal/hotel"
)

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

	// The terminal runs without Redis; queries go straight to the store.
	app := cli.New(hotel.New(db, nil), os.Stdin, os.Stdout)
	app.Run(ctx)
}
