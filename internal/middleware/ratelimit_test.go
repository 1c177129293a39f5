package middleware

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 3; i++ {
		if !rl.Allow("key", 3, time.Minute) {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if rl.Allow("key", 3, time.Minute) {
		t.Error("fourth attempt should be blocked")
	}
}

func TestRateLimiterKeysIndependent(t *testing.T) {
	rl := NewRateLimiter()

	rl.Allow("a", 1, time.Minute)
	if rl.Allow("a", 1, time.Minute) {
		t.Error("key a should be exhausted")
	}
	if !rl.Allow("b", 1, time.Minute) {
		t.Error("key b should be unaffected")
	}
}

func TestRateLimiterWindowResets(t *testing.T) {
	rl := NewRateLimiter()

	rl.Allow("key", 1, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if !rl.Allow("key", 1, time.Millisecond) {
		t.Error("expected fresh window after expiry")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter()

	rl.Allow("stale", 1, time.Millisecond)
	rl.Allow("fresh", 1, time.Hour)
	time.Sleep(5 * time.Millisecond)
	rl.Cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.entries["stale"]; ok {
		t.Error("expected stale entry removed")
	}
	if _, ok := rl.entries["fresh"]; !ok {
		t.Error("expected fresh entry kept")
	}
}

func TestRealIPFromForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if ip := RealIP(r); ip != "203.0.113.7" {
		t.Errorf("ip = %q, want first forwarded address", ip)
	}
}

func TestRealIPFromRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.4:5678"
	if ip := RealIP(r); ip != "192.0.2.4" {
		t.Errorf("ip = %q, want 192.0.2.4", ip)
	}
}
