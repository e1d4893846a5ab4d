package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{"ok", http.StatusOK, "hello", "INFO"},
		{"not found", http.StatusNotFound, "", "WARN"},
		{"server error", http.StatusInternalServerError, "", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/players?q=ru", nil)
			req = req.WithContext(context.WithValue(req.Context(), chimw.RequestIDKey, "req-1"))
			h.ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("log is not JSON: %v (%s)", err, buf.String())
			}

			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", entry["level"], tt.wantLevel)
			}
			if entry["status"] != float64(tt.status) {
				t.Errorf("status = %v, want %d", entry["status"], tt.status)
			}
			if entry["bytes"] != float64(len(tt.body)) {
				t.Errorf("bytes = %v, want %d", entry["bytes"], len(tt.body))
			}
			if entry["path"] != "/api/players" || entry["query"] != "q=ru" {
				t.Errorf("path/query = %v/%v", entry["path"], entry["query"])
			}
			if entry["request_id"] != "req-1" {
				t.Errorf("request_id = %v, want req-1", entry["request_id"])
			}
		})
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	ww := &responseWriter{ResponseWriter: rec, status: http.StatusOK}

	ww.WriteHeader(http.StatusTeapot)
	ww.WriteHeader(http.StatusOK)

	if ww.status != http.StatusTeapot || rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, recorder = %d, want 418", ww.status, rec.Code)
	}
}
