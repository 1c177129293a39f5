package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tmackenzie/chorekeeper/internal/database"
	"github.com/tmackenzie/chorekeeper/internal/store"
)

func setupPINTest(t *testing.T) (*store.SettingsStore, http.Handler) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	settings := store.NewSettingsStore(db)
	gate := RequireParentPIN(settings, NewRateLimiter())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return settings, gate(next)
}

func TestPINGateOpenWhenUnset(t *testing.T) {
	_, h := setupPINTest(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/approvals/x/approve", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 when no PIN configured", rec.Code)
	}
}

func TestPINGateRejectsMissingHeader(t *testing.T) {
	settings, h := setupPINTest(t)
	hash, _ := HashPIN("1234")
	settings.Set(store.SettingParentPIN, hash)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/approvals/x/approve", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without PIN header", rec.Code)
	}
}

func TestPINGateRejectsWrongPIN(t *testing.T) {
	settings, h := setupPINTest(t)
	hash, _ := HashPIN("1234")
	settings.Set(store.SettingParentPIN, hash)

	req := httptest.NewRequest("POST", "/api/approvals/x/approve", nil)
	req.Header.Set(PINHeader, "9999")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for wrong PIN", rec.Code)
	}
}

func TestPINGateAcceptsCorrectPIN(t *testing.T) {
	settings, h := setupPINTest(t)
	hash, _ := HashPIN("1234")
	settings.Set(store.SettingParentPIN, hash)

	req := httptest.NewRequest("POST", "/api/approvals/x/approve", nil)
	req.Header.Set(PINHeader, "1234")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for correct PIN", rec.Code)
	}
}

func TestPINGateRateLimitsAttempts(t *testing.T) {
	settings, h := setupPINTest(t)
	hash, _ := HashPIN("1234")
	settings.Set(store.SettingParentPIN, hash)

	var last int
	for i := 0; i < pinAttemptLimit+1; i++ {
		req := httptest.NewRequest("POST", "/api/approvals/x/approve", nil)
		req.RemoteAddr = "10.0.0.9:12345"
		req.Header.Set(PINHeader, "0000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("status = %d after %d attempts, want 429", last, pinAttemptLimit+1)
	}
}
