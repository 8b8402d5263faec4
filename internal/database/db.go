package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATE/DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the four application tables when they do not exist
// yet.  Statuses are constrained by ENUM columns and money columns use
// DECIMAL(10,2).  The statements are idempotent so every binary can run
// Migrate at startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
			room_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			room_number VARCHAR(16) NOT NULL,
			room_type VARCHAR(64) NOT NULL,
			price_per_night DECIMAL(10,2) NOT NULL,
			capacity INT UNSIGNED NOT NULL,
			amenities TEXT,
			status ENUM('available','occupied','maintenance') NOT NULL DEFAULT 'available',
			PRIMARY KEY (room_id),
			UNIQUE KEY uq_rooms_room_number (room_number)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS guests (
			guest_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name VARCHAR(128) NOT NULL,
			email VARCHAR(128) NOT NULL DEFAULT '',
			phone VARCHAR(32) NOT NULL,
			address VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (guest_id),
			KEY idx_guests_phone (phone)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS reservations (
			reservation_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			guest_id BIGINT UNSIGNED NOT NULL,
			room_id BIGINT UNSIGNED NOT NULL,
			check_in_date DATE NOT NULL,
			check_out_date DATE NOT NULL,
			status ENUM('pending','confirmed','checked_in','checked_out','cancelled') NOT NULL DEFAULT 'pending',
			total_amount DECIMAL(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (reservation_id),
			KEY idx_reservations_room_status (room_id, status),
			CONSTRAINT fk_reservations_guest FOREIGN KEY (guest_id) REFERENCES guests (guest_id),
			CONSTRAINT fk_reservations_room FOREIGN KEY (room_id) REFERENCES rooms (room_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS payments (
			payment_id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			reservation_id BIGINT UNSIGNED NOT NULL,
			amount DECIMAL(10,2) NOT NULL,
			payment_method VARCHAR(32) NOT NULL,
			payment_status ENUM('pending','completed','refunded') NOT NULL DEFAULT 'pending',
			payment_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (payment_id),
			KEY idx_payments_reservation (reservation_id),
			CONSTRAINT fk_payments_reservation FOREIGN KEY (reservation_id) REFERENCES reservations (reservation_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
