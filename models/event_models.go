package models

import (
	"strings"
	"time"
)

// Layouts accepted for candidate date options. The frontend's
// datetime-local inputs produce the first form; plain dates and full
// RFC3339 stamps are accepted for API clients.
var DateOptionLayouts = []string{
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

type Event struct {
	ID          string    `json:"id"`
	ShortID     string    `json:"short_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateOptions []string  `json:"date_options"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DateOptions []string `json:"date_options"`
}

// Validate checks the request before anything touches the database.
func (r *CreateEventRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if len(r.DateOptions) == 0 {
		return &ValidationError{Field: "date_options", Reason: "at least one candidate slot is required"}
	}
	for _, opt := range r.DateOptions {
		if _, err := ParseDateOption(opt); err != nil {
			return &ValidationError{Field: "date_options", Reason: "not a valid date/time: " + opt}
		}
	}
	return nil
}

// ParseDateOption parses a candidate slot string against the accepted
// layouts, in order.
func ParseDateOption(opt string) (time.Time, error) {
	var lastErr error
	for _, layout := range DateOptionLayouts {
		t, err := time.Parse(layout, opt)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
