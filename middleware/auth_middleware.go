package middleware

import (
	"log"
	"net/http"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// AccessKeyHeader carries the shared access phrase on API requests. Calendar
// subscriptions can't set headers, so ?key= is accepted as a fallback.
const AccessKeyHeader = "X-Access-Key"

var accessKeyHash []byte

// LoadAccessKey reads the bcrypt hash of the shared access phrase from
// ACCESS_KEY_HASH. With no hash configured the API runs unprotected, which
// is only acceptable for local development.
func LoadAccessKey() {
	hash := os.Getenv("ACCESS_KEY_HASH")
	if hash == "" {
		log.Println("WARNING: ACCESS_KEY_HASH not set - API is unprotected. Run 'hash-key' to generate one.")
		accessKeyHash = nil
		return
	}
	accessKeyHash = []byte(hash)
	log.Println("Access key gate enabled.")
}

// CheckAccessKey reports whether the presented phrase matches the configured
// hash. Always true when no hash is configured (dev mode).
func CheckAccessKey(key string) bool {
	if accessKeyHash == nil {
		return true
	}
	return bcrypt.CompareHashAndPassword(accessKeyHash, []byte(key)) == nil
}

// AccessKeyMiddleware rejects requests that don't carry the shared access
// phrase. This is a gate, not user auth: everyone shares one phrase and
// participants are identified by the name they type.
func AccessKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(AccessKeyHeader)
		if key == "" {
			key = r.URL.Query().Get("key")
		}
		if !CheckAccessKey(key) {
			log.Printf("AccessKeyMiddleware: rejected request from %s to %s", r.RemoteAddr, r.URL.Path)
			http.Error(w, "Unauthorized: missing or wrong access key", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
