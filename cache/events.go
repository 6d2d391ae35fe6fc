package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tyuok222/happy-hour-harmony-hub/models"
)

// TTL is generous because cached events cannot go stale; it only bounds
// memory held for events nobody looks up anymore.
const eventTTL = 24 * time.Hour

func eventKey(shortID string) string {
	return fmt.Sprintf("event:%s", shortID)
}

// GetEvent returns the cached event for a short ID, or nil on a miss. Cache
// failures are logged and reported as misses so the caller falls through to
// the database.
func (c *Client) GetEvent(ctx context.Context, shortID string) *models.Event {
	if c == nil {
		return nil
	}
	data, err := c.Get(ctx, eventKey(shortID)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Printf("Cache read failed for %s: %v", shortID, err)
		return nil
	}
	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		log.Printf("Cache entry for %s is corrupt, ignoring: %v", shortID, err)
		return nil
	}
	return &event
}

// SetEvent stores an event under its short ID. Best effort: failures are
// logged, never surfaced.
func (c *Client) SetEvent(ctx context.Context, event *models.Event) {
	if c == nil || event == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Cache encode failed for %s: %v", event.ShortID, err)
		return
	}
	if err := c.Set(ctx, eventKey(event.ShortID), data, eventTTL).Err(); err != nil {
		log.Printf("Cache write failed for %s: %v", event.ShortID, err)
	}
}
