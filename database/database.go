package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var DB *sql.DB

// InitDB initializes the database connection and creates tables if they don't exist.
func InitDB(dataSourceName string) error {
	var err error
	DB, err = sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	err = DB.Ping()
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to the database!")

	// SQL statements to create tables (SQLite compatible)
	createTablesSQL := `
    CREATE TABLE IF NOT EXISTS events (
        id TEXT PRIMARY KEY,
        short_id TEXT UNIQUE NOT NULL,
        title TEXT NOT NULL,
        description TEXT,
        date_options TEXT NOT NULL, -- JSON array, preserves display order
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS event_responses (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
        participant_name TEXT NOT NULL,
        responses TEXT NOT NULL,             -- JSON: date option -> availability tag
        comments TEXT NOT NULL DEFAULT '{}', -- JSON: date option -> comment
        submitted_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        UNIQUE(event_id, participant_name)
    );
    `

	_, err = DB.Exec(createTablesSQL)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	// Run migrations for existing databases
	err = runMigrations()
	if err != nil {
		log.Printf("Migration warning: %v", err)
		// Don't fail on migration errors, as columns might already exist
	}

	log.Println("Database tables checked/created successfully.")
	return nil
}

// runMigrations adds missing columns to existing tables
func runMigrations() error {
	migrations := []string{
		`ALTER TABLE events ADD COLUMN description TEXT`,
		`ALTER TABLE event_responses ADD COLUMN comments TEXT NOT NULL DEFAULT '{}'`,
	}

	for _, migration := range migrations {
		_, err := DB.Exec(migration)
		if err != nil {
			// Column might already exist, log but continue
			log.Printf("Migration info: %s (this is normal if column already exists)", err.Error())
		}
	}

	return nil
}
