package middleware

import (
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tmackenzie/chorekeeper/internal/store"
)

// PINHeader carries the parent PIN on gated requests.
const PINHeader = "X-Parent-PIN"

const (
	pinAttemptLimit  = 10
	pinAttemptWindow = time.Minute
)

// RequireParentPIN gates parent-only operations (approve, reject, reset,
// manual point adjustments) behind the household PIN. When no PIN is
// configured the gate is open, so a fresh install works without setup.
// Attempts are rate-limited per client IP to slow down guessing.
func RequireParentPIN(settings *store.SettingsStore, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hash, err := settings.Get(store.SettingParentPIN)
			if err != nil {
				http.Error(w, "failed to check PIN", http.StatusInternalServerError)
				return
			}
			if hash == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !limiter.Allow("pin:"+RealIP(r), pinAttemptLimit, pinAttemptWindow) {
				http.Error(w, "too many PIN attempts", http.StatusTooManyRequests)
				return
			}

			pin := r.Header.Get(PINHeader)
			if pin == "" {
				http.Error(w, "parent PIN required", http.StatusUnauthorized)
				return
			}
			if bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) != nil {
				http.Error(w, "incorrect PIN", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HashPIN hashes a PIN for storage in settings.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
