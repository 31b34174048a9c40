package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewAcceptsKnownFormats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := New("debug", format)
		if err != nil {
			t.Fatalf("New(%q) err: %v", format, err)
		}
		if !logger.Core().Enabled(zap.DebugLevel) {
			t.Fatalf("expected debug level enabled for %q", format)
		}
	}
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	logger, err := New("chatty", "json")
	if err != nil {
		t.Fatalf("New err: %v", err)
	}
	if logger.Core().Enabled(zap.DebugLevel) {
		t.Fatal("debug should be disabled for unknown level")
	}
	if !logger.Core().Enabled(zap.InfoLevel) {
		t.Fatal("info should be enabled for unknown level")
	}
}

func TestRequestLoggerRecordsStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("unexpected status field: %v", fields["status"])
	}
	if fields["path"] != "/api/stats" {
		t.Fatalf("unexpected path field: %v", fields["path"])
	}
}
