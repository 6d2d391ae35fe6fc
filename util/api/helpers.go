package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tyuok222/happy-hour-harmony-hub/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response body: %v", err)
	}
}

// writeStoreError maps the store error taxonomy onto HTTP statuses.
// Validation problems are the caller's fault, unknown short IDs are 404,
// everything else is a 500 with the detail kept in the server log.
func writeStoreError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrEventNotFound):
		http.Error(w, "Event not found", http.StatusNotFound)
	default:
		log.Printf("Store error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
