package logger

import (
	"io"
	"log/slog"
	"os"
)

const serviceName = "presto"

// New creates the JSON logger used by the presto service.
func New() *slog.Logger {
	return NewNamed(serviceName)
}

// NewNamed creates a JSON logger on stdout at info level tagged with service.
func NewNamed(service string) *slog.Logger {
	return newLogger(os.Stdout, service)
}

func newLogger(w io.Writer, service string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", service))
}
