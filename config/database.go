package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the store and returns the connection handle.
// By default the store is an embedded SQLite file living alongside the
// process; when DATABASE_URL is set a PostgreSQL server is used instead.
func Connect(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
		log.Println("Using PostgreSQL database from DATABASE_URL")
	} else {
		dialector = sqlite.Open(cfg.DBPath)
		log.Printf("Using SQLite database at %s", cfg.DBPath)
	}

	// TranslateError makes unique-constraint violations surface as
	// gorm.ErrDuplicatedKey instead of driver-specific errors
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}
