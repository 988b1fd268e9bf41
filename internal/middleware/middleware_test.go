package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID_GeneratesID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		if r.Header.Get(RequestIDHeader) != seen {
			t.Errorf("expected request header to carry id %q", seen)
		}
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected a UUID request id, got %q", seen)
	}
	if rr.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected response header %q, got %q", seen, rr.Header().Get(RequestIDHeader))
	}
}

func TestRequestID_ReusesCallerID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen != "abc-123" {
		t.Fatalf("expected caller id to be kept, got %q", seen)
	}
}

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		preflight  bool
		wantOrigin string
		wantCreds  string
		wantStatus int
	}{
		{"wildcard echoes origin without credentials", []string{"*"}, "http://app.test", http.MethodPost, false, "http://app.test", "", http.StatusOK},
		{"listed origin gets credentials", []string{"http://app.test"}, "http://app.test", http.MethodGet, false, "http://app.test", "true", http.StatusOK},
		{"listed origin alongside wildcard", []string{"*", "http://app.test"}, "http://app.test", http.MethodGet, false, "http://app.test", "true", http.StatusOK},
		{"unlisted origin", []string{"http://app.test"}, "http://evil.test", http.MethodGet, false, "", "", http.StatusOK},
		{"no origin", []string{"*"}, "", http.MethodGet, false, "", "", http.StatusOK},
		{"preflight", []string{"*"}, "http://app.test", http.MethodOptions, true, "http://app.test", "", http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/chat", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}

			rr := httptest.NewRecorder()
			CORS(tc.allowed)(ok).ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Errorf("expected allow-origin %q, got %q", tc.wantOrigin, got)
			}
			if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != tc.wantCreds {
				t.Errorf("expected allow-credentials %q, got %q", tc.wantCreds, got)
			}
		})
	}
}
