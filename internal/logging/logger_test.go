package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"holocron/internal/config"
	"holocron/internal/logging"
)

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller", logging.String("name", "Luke Skywalker"))

	out := buf.String()
	if strings.Contains(out, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", out)
	}
	if !strings.Contains(out, `name="Luke Skywalker"`) {
		t.Fatalf("expected quoted attribute, got %q", out)
	}
	if !strings.Contains(out, " INFO ") {
		t.Fatalf("expected level label, got %q", out)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("message with caller")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestDefaultLevelSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be suppressed at default level, got %q", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("expected warning output, got %q", buf.String())
	}
}

func TestComponentLoggerPrefixesMessage(t *testing.T) {
	var buf bytes.Buffer
	base, err := logging.New(logging.Options{Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.NewComponentLogger(base, "charcache").Info("loaded")
	if !strings.Contains(buf.String(), "charcache: loaded") {
		t.Fatalf("expected component prefix, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "component=") {
		t.Fatalf("component should not be repeated as attribute: %q", buf.String())
	}
}

func TestJSONLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "info"
	logger, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}

	ctx := logging.WithCorrelationID(context.Background(), "abc-123")
	logging.WithContext(ctx, logger).Info("json entry", logging.Int("entries", 2))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["msg"] != "json entry" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload[logging.FieldCorrelationID] != "abc-123" {
		t.Fatalf("expected correlation id, got %v", payload[logging.FieldCorrelationID])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", payload)
	}
}

func TestWithCorrelationIDGeneratesUUID(t *testing.T) {
	ctx := logging.WithCorrelationID(context.Background(), "")
	id, ok := logging.CorrelationIDFromContext(ctx)
	if !ok {
		t.Fatal("expected correlation id on context")
	}
	if len(id) != 36 {
		t.Fatalf("expected uuid-formatted id, got %q", id)
	}
	if _, ok := logging.CorrelationIDFromContext(context.Background()); ok {
		t.Fatal("expected no correlation id on bare context")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "something odd", "odd_event", logging.String(logging.FieldImpact, "none"))
	out := buf.String()
	for _, want := range []string{"event_type=odd_event", "error_hint=", "impact=none"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestFileOutputPath(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "holocron.log")
	logger, err := logging.New(logging.Options{Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("to file")
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Fatalf("expected log line in file, got %q", content)
	}
}

func TestNewFromConfigWritesToConfiguredFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "state", "holocron.log")
	cfg := config.Default()
	cfg.Logging.Level = "info"
	cfg.Logging.File = logPath

	var stderr bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("lookup finished", logging.Duration("elapsed", 1500*time.Millisecond))

	if stderr.Len() != 0 {
		t.Fatalf("expected nothing on the fallback writer, got %q", stderr.String())
	}
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "lookup finished") || !strings.Contains(string(content), "elapsed=1.5s") {
		t.Fatalf("expected log line with duration in file, got %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should never be enabled")
	}
	logger.Error("ignored")
}
