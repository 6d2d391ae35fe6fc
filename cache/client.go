// Package cache is an optional Redis read-through cache for short ID event
// lookups. Events never change after creation, so cached entries are never
// stale and no invalidation is needed.
package cache

import (
	"log"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// Client wraps redis.Client; a nil *Client disables caching entirely.
type Client struct {
	*redis.Client
}

// NewClientFromEnv builds a client from REDIS_URL / REDIS_PASSWORD /
// REDIS_DB. Returns nil (caching off) when REDIS_URL is unset.
func NewClientFromEnv() *Client {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		return nil
	}

	db := 0
	if v, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		db = v
	}

	log.Printf("Event lookup cache enabled (redis at %s)", addr)
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		}),
	}
}
