package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/tyuok222/happy-hour-harmony-hub/models"
	"github.com/tyuok222/happy-hour-harmony-hub/util"
)

// How many fresh short IDs we try before giving up on a create. With a
// 31-character alphabet and 6 random positions, collisions are rare enough
// that hitting this limit means something else is wrong.
const maxShortIDAttempts = 5

// CreateEvent validates the request, allocates identifiers and persists one
// event row. On a short_id collision it regenerates and reinserts up to
// maxShortIDAttempts times before surfacing models.ErrShortIDExhausted.
func CreateEvent(req models.CreateEventRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	optionsJSON, err := json.Marshal(req.DateOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode date options: %w", err)
	}

	event := &models.Event{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		DateOptions: req.DateOptions,
		CreatedAt:   time.Now().UTC(),
	}

	for attempt := 0; attempt < maxShortIDAttempts; attempt++ {
		event.ShortID = util.NewShortID()
		_, err = DB.Exec(
			"INSERT INTO events (id, short_id, title, description, date_options, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			event.ID, event.ShortID, event.Title, event.Description, string(optionsJSON), event.CreatedAt,
		)
		if err == nil {
			return event, nil
		}
		if isShortIDCollision(err) {
			continue
		}
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	return nil, models.ErrShortIDExhausted
}

// GetEventByShortID resolves a share code to its event, exact match only.
func GetEventByShortID(shortID string) (*models.Event, error) {
	var event models.Event
	var optionsJSON string
	err := DB.QueryRow(
		"SELECT id, short_id, title, description, date_options, created_at FROM events WHERE short_id = ?",
		shortID,
	).Scan(&event.ID, &event.ShortID, &event.Title, &event.Description, &optionsJSON, &event.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}

	if err := json.Unmarshal([]byte(optionsJSON), &event.DateOptions); err != nil {
		return nil, fmt.Errorf("failed to decode date options for event %s: %w", event.ID, err)
	}
	return &event, nil
}

// isShortIDCollision reports whether an insert failed on the short_id
// UNIQUE constraint specifically.
func isShortIDCollision(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique &&
		strings.Contains(sqliteErr.Error(), "short_id")
}
