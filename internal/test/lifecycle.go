package test

import (
	"context"

	"go.uber.org/fx"
)

// LifecycleRecorder stands in for fx.Lifecycle so tests can drive hooks by hand.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records h.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// Start runs OnStart of every recorded hook in registration order and stops at the first error.
func (l *LifecycleRecorder) Start(ctx context.Context) error {
	for _, h := range l.Hooks {
		if h.OnStart == nil {
			continue
		}
		if err := h.OnStart(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop runs OnStop in reverse registration order, like fx does, and returns the first error.
func (l *LifecycleRecorder) Stop(ctx context.Context) error {
	var first error
	for i := len(l.Hooks) - 1; i >= 0; i-- {
		if l.Hooks[i].OnStop == nil {
			continue
		}
		if err := l.Hooks[i].OnStop(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ShutdownerStub is an fx.Shutdowner that signals Called instead of exiting.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown never blocks; extra calls are dropped when Called is full.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called == nil {
		return nil
	}
	select {
	case s.Called <- struct{}{}:
	default:
	}
	return nil
}
