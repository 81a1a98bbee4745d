package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase establishes the database connection. The tool is
// local-first: without a DATABASE_URL it opens (or creates) a SQLite file
// next to the binary, mirroring the browser-local database it replaces.
// Pointing DATABASE_URL at PostgreSQL switches to a shared database.
func ConnectDatabase() error {
	var err error

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Println("Database connection established (postgres)")
		return nil
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "gestionale.db"
	}
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open local database %s: %w", path, err)
	}
	log.Printf("Database connection established (sqlite: %s)", path)
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
