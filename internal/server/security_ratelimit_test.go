package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedHandler(detector *SuspiciousActivityDetector) http.Handler {
	return SecurityLoggingMiddleware(nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func requestFrom(h http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/players/Ada/attack", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	// ARRANGE
	detector := NewSuspiciousActivityDetector()
	h := newRateLimitedHandler(detector)
	const ip = "192.168.1.100"

	// ACT
	for i := 0; i < RateLimitRequests; i++ {
		require.Equal(t, http.StatusOK, requestFrom(h, ip), "request %d", i)
	}

	// ASSERT
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(h, ip))
	assert.Equal(t, http.StatusOK, requestFrom(h, "10.0.0.7"), "other clients are unaffected")

	detector.mu.Lock()
	assert.Equal(t, RateLimitRequests+1, detector.requestCountByIP[ip])
	detector.mu.Unlock()
}

func TestSecurityLoggingMiddleware_WindowResets(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	h := newRateLimitedHandler(detector)
	const ip = "192.168.1.101"

	detector.mu.Lock()
	detector.requestCountByIP[ip] = RateLimitRequests
	detector.lastResetTime = time.Now().Add(-RateLimitWindow - time.Second)
	detector.mu.Unlock()

	assert.Equal(t, http.StatusOK, requestFrom(h, ip))
}
