package server_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/go-tts-preprocess/internal/server"
)

// capturingHandler captures all slog records during a test.
type capturingHandler struct {
	records []slog.Record
}

func (c *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }
func (c *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	c.records = append(c.records, r)
	return nil
}
func (c *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return c }
func (c *capturingHandler) WithGroup(_ string) slog.Handler      { return c }

func (c *capturingHandler) attrMap(idx int) map[string]any {
	m := make(map[string]any)
	c.records[idx].Attrs(func(a slog.Attr) bool {
		m[a.Key] = a.Value.Any()
		return true
	})
	return m
}

func TestPreprocess_LogsRequestMetadata(t *testing.T) {
	capt := &capturingHandler{}
	logger := slog.New(capt)

	h := newTestHandler(server.WithLogger(logger))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/preprocess",
		strings.NewReader(`{"text":"**Hello** world"}`))
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	if len(capt.records) == 0 {
		t.Fatal("want at least one log record, got none")
	}

	var found bool
	for i := range capt.records {
		attrs := capt.attrMap(i)
		if _, ok := attrs["text_len"]; !ok {
			continue
		}
		found = true
		if _, ok := attrs["cleaned_len"]; !ok {
			t.Error("want cleaned_len attribute in log record")
		}
		if changed, ok := attrs["changed"]; !ok || changed != true {
			t.Errorf("changed = %v, want true", changed)
		}
		if _, ok := attrs["duration_ms"]; !ok {
			t.Error("want duration_ms attribute in log record")
		}
	}
	if !found {
		t.Error("no log record contained a 'text_len' attribute")
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		level   string
		wantLvl slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo}, // default
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			lvl, err := server.ParseLogLevel(tc.level)
			if err != nil {
				t.Fatalf("ParseLogLevel(%q) error: %v", tc.level, err)
			}
			if lvl != tc.wantLvl {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tc.level, lvl, tc.wantLvl)
			}
		})
	}
}

func TestParseLogLevel_InvalidLevelReturnsError(t *testing.T) {
	_, err := server.ParseLogLevel("verbose")
	if err == nil {
		t.Error("want error for unknown log level")
	}
}
