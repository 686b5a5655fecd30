package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"empty input", ErrEmptyInput},
		{"insufficient balance", ErrInsufficientBalance},
		{"responder unreachable", ErrResponderUnreachable},
		{"partner unspecified", ErrPartnerUnspecified},
		{"not found", ErrNotFound},
		{"invalid transition", ErrInvalidTransition},
		{"unknown partner", ErrUnknownPartner},
		{"ledger busy", ErrLedgerBusy},
		{"reply pending", ErrReplyPending},
		{"invalid tab", ErrInvalidTab},
		{"invalid theme", ErrInvalidTheme},
		{"session closed", ErrSessionClosed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match: %v", tc.err)
			}
		})
	}
}
