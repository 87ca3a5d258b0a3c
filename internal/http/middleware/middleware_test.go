package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/pharmalink/internal/auth"
	rl "github.com/rogerio-castellano/pharmalink/internal/http/rate_limiter"
	"github.com/rogerio-castellano/pharmalink/internal/models"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := auth.GenerateToken(models.User{Username: "u", Name: "U", Role: role})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func TestAuthAndRole(t *testing.T) {
	h := AuthMiddleware(RequireRole(models.RoleOwner)(ok))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"attendee", "Bearer " + tokenFor(t, models.RoleAttendee), http.StatusForbidden},
		{"owner", "Bearer " + tokenFor(t, models.RoleOwner), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("got %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestAuthMiddleware_StoresClaims(t *testing.T) {
	var got *auth.Claims
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.ClaimsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAttendee))
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil || got.Name != "U" || got.Role != models.RoleAttendee {
		t.Fatalf("unexpected claims in context: %+v", got)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	rl.CleanupAllVisitors()
	t.Cleanup(rl.CleanupAllVisitors)
	h := RateLimitMiddleware(ok)

	codes := make([]int, 0, 4)
	for range 4 {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.9:5555"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[2] != http.StatusOK || codes[3] != http.StatusTooManyRequests {
		t.Fatalf("expected a burst of 3 then 429, got %v", codes)
	}

	// Other clients are not affected.
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "198.51.100.1:1234"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected another client to pass, got %d", w.Code)
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	h := RequestLogger(ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("expected the caller's request id, got %q", got)
	}
}

func TestTracing_PassesThrough(t *testing.T) {
	h := Tracing(ok)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
}
