package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/facebookgo/clock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}

// advanceUntil runs fn in background and moves the mock clock forward until it returns.
func advanceUntil(t *testing.T, mock *clock.Mock, step time.Duration, fn func() error) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- fn() }()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case err := <-done:
			return err
		case <-deadline:
			t.Fatal("operation did not complete in time")
			return nil
		default:
			mock.Add(step)
		}
	}
}
