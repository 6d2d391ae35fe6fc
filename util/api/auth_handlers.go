package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tyuok222/happy-hour-harmony-hub/middleware"
)

// POST /auth/check - backing for the UI password gate. The frontend asks
// once whether the typed phrase is right before showing the menu; actual
// enforcement happens per request in the middleware.
func CheckAccessKeyHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccessKey string `json:"access_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !middleware.CheckAccessKey(req.AccessKey) {
		log.Printf("Access key check failed from %s", r.RemoteAddr)
		http.Error(w, "Unauthorized: wrong access key", http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
