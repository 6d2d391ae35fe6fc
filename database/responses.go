package database

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tyuok222/happy-hour-harmony-hub/models"
)

// UpsertResponse stores a participant's full answer set for an event,
// replacing any previous submission by the same participant in one
// statement. The whole availability and comment state is overwritten, never
// merged: a resubmission must carry everything the participant is answering.
func UpsertResponse(eventID, participantName string, availability map[string]models.Availability, comments map[string]string) (*models.EventResponse, error) {
	participantName = strings.TrimSpace(participantName)
	if participantName == "" {
		return nil, &models.ValidationError{Field: "participant_name", Reason: "must not be empty"}
	}
	if availability == nil {
		availability = map[string]models.Availability{}
	}
	if comments == nil {
		comments = map[string]string{}
	}

	responsesJSON, err := json.Marshal(availability)
	if err != nil {
		return nil, fmt.Errorf("failed to encode responses: %w", err)
	}
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return nil, fmt.Errorf("failed to encode comments: %w", err)
	}

	now := time.Now().UTC()
	// ON CONFLICT DO UPDATE keeps the original row id, so a participant who
	// resubmits keeps their first-submission position in ListResponses.
	_, err = DB.Exec(
		`INSERT INTO event_responses (event_id, participant_name, responses, comments, submitted_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(event_id, participant_name) DO UPDATE SET
             responses = excluded.responses,
             comments = excluded.comments,
             submitted_at = excluded.submitted_at`,
		eventID, participantName, string(responsesJSON), string(commentsJSON), now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert response: %w", err)
	}

	var stored models.EventResponse
	var storedResponses, storedComments string
	err = DB.QueryRow(
		"SELECT id, event_id, participant_name, responses, comments, submitted_at FROM event_responses WHERE event_id = ? AND participant_name = ?",
		eventID, participantName,
	).Scan(&stored.ID, &stored.EventID, &stored.ParticipantName, &storedResponses, &storedComments, &stored.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back response: %w", err)
	}
	decodeResponseMaps(&stored, storedResponses, storedComments)
	return &stored, nil
}

// ListResponses returns every stored response for an event in
// first-submission order (autoincrement id, stable across upserts).
func ListResponses(eventID string) ([]models.EventResponse, error) {
	rows, err := DB.Query(
		"SELECT id, event_id, participant_name, responses, comments, submitted_at FROM event_responses WHERE event_id = ? ORDER BY id ASC",
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	responses := []models.EventResponse{}
	for rows.Next() {
		var resp models.EventResponse
		var responsesJSON, commentsJSON string
		if err := rows.Scan(&resp.ID, &resp.EventID, &resp.ParticipantName, &responsesJSON, &commentsJSON, &resp.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response row: %w", err)
		}
		decodeResponseMaps(&resp, responsesJSON, commentsJSON)
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate responses: %w", err)
	}
	return responses, nil
}

// decodeResponseMaps fills in the availability and comment maps from their
// stored JSON. Corrupt or legacy payloads degrade to empty maps instead of
// failing the whole listing; the view shows the participant with no answers
// rather than showing nothing.
func decodeResponseMaps(resp *models.EventResponse, responsesJSON, commentsJSON string) {
	rawResponses := map[string]string{}
	if err := json.Unmarshal([]byte(responsesJSON), &rawResponses); err != nil {
		log.Printf("Responses payload for row %d is corrupt, treating as unanswered: %v", resp.ID, err)
		rawResponses = map[string]string{}
	}
	resp.Responses = make(map[string]models.Availability, len(rawResponses))
	for opt, raw := range rawResponses {
		// Stored rows predating the tagged enum may carry anything;
		// anything unrecognized degrades to "no answer".
		tag, ok := models.ParseAvailability(raw)
		if !ok {
			log.Printf("Response row %d carries unknown availability tag %q for %q, treating as no answer", resp.ID, raw, opt)
			continue
		}
		resp.Responses[opt] = tag
	}
	resp.Comments = map[string]string{}
	if commentsJSON != "" {
		if err := json.Unmarshal([]byte(commentsJSON), &resp.Comments); err != nil {
			log.Printf("Comments payload for row %d is corrupt, treating as absent: %v", resp.ID, err)
			resp.Comments = map[string]string{}
		}
	}
}
