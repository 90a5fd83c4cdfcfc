package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestSetupWriter_StackOnError(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	buf := &bytes.Buffer{}
	logger := SetupWriter(buf, "INFO")

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug record to be filtered, got %s", buf.String())
	}

	logger.Info("hello", "key", "value")
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode info record: %v", err)
	}
	if rec["msg"] != "hello" || rec["key"] != "value" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if _, ok := rec["stacktrace"]; ok {
		t.Fatalf("info record should not carry a stack trace")
	}

	buf.Reset()
	logger.With("component", "test").Error("boom")
	if !strings.Contains(buf.String(), `"stacktrace"`) {
		t.Fatalf("expected stack trace on error record, got %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"component":"test"`) {
		t.Fatalf("expected attrs to survive WithAttrs, got %s", buf.String())
	}
}
