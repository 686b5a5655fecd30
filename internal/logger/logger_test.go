package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewProvidesJSONLogger(t *testing.T) {
	l := New()
	if l == nil {
		t.Fatal("expected logger, got nil")
	}

	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("expected info level to be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("did not expect debug level to be enabled")
	}

	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}

func TestLoggerTagsService(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "presto-stub").Info("chat reply")
	line := buf.String()
	if !strings.Contains(line, `"service":"presto-stub"`) || !strings.Contains(line, `"msg":"chat reply"`) {
		t.Fatalf("unexpected log line %s", line)
	}
}
