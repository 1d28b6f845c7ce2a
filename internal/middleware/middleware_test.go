package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/biyonik/raffle-pix-api/pkg/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// ---------------------------------------------------------------------------
// CronSecret
// ---------------------------------------------------------------------------

func TestCronSecretAcceptsValidSecret(t *testing.T) {
	hash := auth.MustHash("super-secret")
	handler := CronSecret(hash)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/cleanup/expired-tickets", nil)
	req.Header.Set("X-Cron-Secret", "super-secret")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, beklenen 200", rec.Code)
	}
}

func TestCronSecretRejectsWrongSecret(t *testing.T) {
	hash := auth.MustHash("super-secret")
	handler := CronSecret(hash)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/cleanup/expired-tickets", nil)
	req.Header.Set("X-Cron-Secret", "wrong-secret")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, beklenen 401", rec.Code)
	}
}

func TestCronSecretRejectsMissingHeader(t *testing.T) {
	hash := auth.MustHash("super-secret")
	handler := CronSecret(hash)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cleanup/expired-tickets", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, beklenen 401", rec.Code)
	}
}

func TestCronSecretClosedWhenUnconfigured(t *testing.T) {
	handler := CronSecret("")(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/cleanup/expired-tickets", nil)
	req.Header.Set("X-Cron-Secret", "anything")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, beklenen 403", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// CORS
// ---------------------------------------------------------------------------

func TestCORSPreflightShortCircuits(t *testing.T) {
	called := false
	handler := CORSMiddleware("https://rifa.example.com")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/pix/generate", nil))

	if called {
		t.Error("preflight istek handler'a ulaşmamalı")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, beklenen 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://rifa.example.com" {
		t.Errorf("Allow-Origin = %s", got)
	}
}

func TestCORSSetsOriginOnNormalRequests(t *testing.T) {
	handler := CORSMiddleware("*")(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/raffles", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %s", got)
	}
}

// ---------------------------------------------------------------------------
// RateLimit
// ---------------------------------------------------------------------------

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	handler := RateLimit(rl)(okHandler())

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/pix/generate", nil)
		req.RemoteAddr = "10.0.0.1:54321"
		return req
	}

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newReq())
		if rec.Code != http.StatusOK {
			t.Fatalf("istek %d: status = %d, beklenen 200", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newReq())
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("limit aşımında status = %d, beklenen 429", rec.Code)
	}
}

func TestRateLimitTracksClientsSeparately(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	handler := RateLimit(rl)(okHandler())

	first := httptest.NewRequest(http.MethodPost, "/api/pix/generate", nil)
	first.RemoteAddr = "10.0.0.1:1111"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("ilk istemci reddedildi: %d", rec.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/api/pix/generate", nil)
	second.RemoteAddr = "10.0.0.2:2222"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Errorf("farklı istemci kendi limitine sahip olmalı, status = %d", rec.Code)
	}
}
