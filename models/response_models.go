package models

import (
	"strings"
	"time"
)

// Availability is a participant's answer for one candidate slot.
type Availability string

const (
	Available   Availability = "available"
	Maybe       Availability = "maybe"
	Unavailable Availability = "unavailable"

	// NoAnswer marks a slot the participant did not answer. It is never
	// stored; it only appears in aggregated output.
	NoAnswer Availability = "no_answer"
)

// ParseAvailability normalizes a raw tag from a request or a stored row.
// Anything unrecognized degrades to NoAnswer so old or hand-edited data
// cannot break aggregation; the second return reports whether the tag was
// one of the three real answers.
func ParseAvailability(raw string) (Availability, bool) {
	switch Availability(strings.ToLower(strings.TrimSpace(raw))) {
	case Available:
		return Available, true
	case Maybe:
		return Maybe, true
	case Unavailable:
		return Unavailable, true
	default:
		return NoAnswer, false
	}
}

type EventResponse struct {
	ID              int64                   `json:"id"`
	EventID         string                  `json:"event_id"`
	ParticipantName string                  `json:"participant_name"`
	Responses       map[string]Availability `json:"responses"`
	Comments        map[string]string       `json:"comments"`
	SubmittedAt     time.Time               `json:"submitted_at"`
}

type SubmitResponseRequest struct {
	ParticipantName string            `json:"participant_name"`
	Responses       map[string]string `json:"responses"`
	Comments        map[string]string `json:"comments"`
}

// Validate checks the submission and converts the raw availability map
// into tagged values. Unknown tags are rejected here rather than silently
// degraded: this is the boundary where the caller can still fix them.
func (r *SubmitResponseRequest) Validate() (map[string]Availability, error) {
	if strings.TrimSpace(r.ParticipantName) == "" {
		return nil, &ValidationError{Field: "participant_name", Reason: "must not be empty"}
	}
	availability := make(map[string]Availability, len(r.Responses))
	for opt, raw := range r.Responses {
		tag, ok := ParseAvailability(raw)
		if !ok {
			return nil, &ValidationError{Field: "responses", Reason: "unknown availability tag: " + raw}
		}
		availability[opt] = tag
	}
	return availability, nil
}
