package errors

import "errors"

var (
	ErrEmptyInput           = errors.New("empty input")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrResponderUnreachable = errors.New("responder unreachable")
	ErrPartnerUnspecified   = errors.New("partner unspecified")
	ErrNotFound             = errors.New("not found")
	ErrInvalidTransition    = errors.New("invalid view transition")
	ErrUnknownPartner       = errors.New("unknown partner")
	ErrLedgerBusy           = errors.New("ledger operation in progress")
	ErrReplyPending         = errors.New("reply pending")
	ErrInvalidTab           = errors.New("invalid tab")
	ErrInvalidTheme         = errors.New("invalid theme")
	ErrSessionClosed        = errors.New("session closed")
)
