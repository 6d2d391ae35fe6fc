package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/emersion/go-ical"

	"github.com/tyuok222/happy-hour-harmony-hub/cache"
	"github.com/tyuok222/happy-hour-harmony-hub/database"
	"github.com/tyuok222/happy-hour-harmony-hub/models"
)

// EventCache is set by main when Redis is configured; a nil cache is a
// permanent miss.
var EventCache *cache.Client

// POST /events - create an event with candidate slots
func CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid event data", http.StatusBadRequest)
		return
	}

	event, err := database.CreateEvent(req)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	log.Printf("Created event %s (%s) with %d candidate slots", event.ShortID, event.Title, len(event.DateOptions))
	writeJSON(w, http.StatusCreated, event)
}

// lookupEvent resolves a short ID through the cache, falling back to the
// database and populating the cache on a hit there.
func lookupEvent(r *http.Request, shortID string) (*models.Event, error) {
	if event := EventCache.GetEvent(r.Context(), shortID); event != nil {
		return event, nil
	}
	event, err := database.GetEventByShortID(shortID)
	if err != nil {
		return nil, err
	}
	EventCache.SetEvent(r.Context(), event)
	return event, nil
}

// GET /events/{shortID} - resolve a share code typed by a participant
func GetEventHandler(w http.ResponseWriter, r *http.Request) {
	event, err := lookupEvent(r, r.PathValue("shortID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// GET /events/{shortID}/calendar.ics - candidate slots as an iCalendar feed
// so invitees can overlay them on their own calendars
func EventICSHandler(w http.ResponseWriter, r *http.Request) {
	event, err := lookupEvent(r, r.PathValue("shortID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//happy-hour-harmony-hub//EN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")

	for i, opt := range event.DateOptions {
		start, err := models.ParseDateOption(opt)
		if err != nil {
			log.Printf("Skipping unparseable slot %q on event %s: %v", opt, event.ShortID, err)
			continue
		}
		ve := ical.NewComponent(ical.CompEvent)
		ve.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%d@happy-hour-harmony-hub", event.ShortID, i))
		ve.Props.SetText(ical.PropSummary, fmt.Sprintf("%s (candidate %d)", event.Title, i+1))
		if event.Description != "" {
			ve.Props.SetText(ical.PropDescription, event.Description)
		}
		ve.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
		ve.Props.SetDateTime(ical.PropDateTimeStart, start)
		ve.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(2*time.Hour))
		cal.Children = append(cal.Children, ve)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		log.Printf("Failed to encode calendar for %s: %v", event.ShortID, err)
	}
}
