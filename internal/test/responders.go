package test

import (
	"context"
	"sync"
)

// ResponderStub returns canned chat replies and records calls.
type ResponderStub struct {
	ReplyFn func(ctx context.Context, message, partner string) (string, error)

	mu    sync.Mutex
	Calls []ResponderCall
}

// ResponderCall captures one Reply invocation.
type ResponderCall struct {
	Message string
	Partner string
}

// Reply delegates to ReplyFn or echoes a fixed acknowledgement.
func (s *ResponderStub) Reply(ctx context.Context, message, partner string) (string, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, ResponderCall{Message: message, Partner: partner})
	s.mu.Unlock()
	if s.ReplyFn != nil {
		return s.ReplyFn(ctx, message, partner)
	}
	return "Got it", nil
}

// CallCount returns number of Reply invocations.
func (s *ResponderStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}
