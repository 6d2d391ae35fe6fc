package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tyuok222/happy-hour-harmony-hub/aggregate"
	"github.com/tyuok222/happy-hour-harmony-hub/database"
	"github.com/tyuok222/happy-hour-harmony-hub/models"
)

// POST /events/{shortID}/responses - submit or replace a participant's answers
//
// Replace, not merge: the request must carry the participant's complete
// availability and comment state, because a resubmission overwrites the
// whole stored record.
func SubmitResponseHandler(w http.ResponseWriter, r *http.Request) {
	event, err := lookupEvent(r, r.PathValue("shortID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	var req models.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid response data", http.StatusBadRequest)
		return
	}

	availability, err := req.Validate()
	if err != nil {
		writeStoreError(w, err)
		return
	}

	stored, err := database.UpsertResponse(event.ID, req.ParticipantName, availability, req.Comments)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	log.Printf("Stored response from %q for event %s", stored.ParticipantName, event.ShortID)
	writeJSON(w, http.StatusOK, stored)
}

// GET /events/{shortID}/summary - tallies plus the participant x slot matrix
//
// Recomputed from the store on every request; viewers poll this instead of
// holding a live subscription.
func GetEventSummaryHandler(w http.ResponseWriter, r *http.Request) {
	event, err := lookupEvent(r, r.PathValue("shortID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	responses, err := database.ListResponses(event.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	summary := aggregate.Summarize(event.DateOptions, responses)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"event":        event,
		"tallies":      summary.Tallies,
		"participants": summary.Participants,
	})
}
