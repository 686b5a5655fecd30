package usecase

import (
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/domain/model"
)

// NavigationSnapshot is a consistent read of the navigator.
type NavigationSnapshot struct {
	State   model.ViewState
	Request string
	Partner *model.Partner
	History int
}

// Navigator is the view state machine: main, bidding and chat.
// Every transition reads the current state under the lock, so a back signal
// arriving after an explicit close is a no-op rather than a second close.
type Navigator struct {
	mu      sync.Mutex
	state   model.ViewState
	request string
	partner *model.Partner
	history int
}

// NewNavigator returns navigator in the main state.
func NewNavigator() *Navigator {
	return &Navigator{state: model.ViewMain}
}

// Submit moves main to bidding carrying the trimmed request text.
func (n *Navigator) Submit(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domainErrors.ErrEmptyInput
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != model.ViewMain {
		return domainErrors.ErrInvalidTransition
	}
	n.request = text
	n.state = model.ViewBidding
	n.history++
	return nil
}

// SelectPartner moves bidding to chat with the chosen partner.
func (n *Navigator) SelectPartner(partner model.Partner) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != model.ViewBidding {
		return domainErrors.ErrInvalidTransition
	}
	p := partner
	n.partner = &p
	n.state = model.ViewChat
	n.history++
	return nil
}

// Close dismisses the active overlay.
func (n *Navigator) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.state.IsOverlay() {
		return domainErrors.ErrInvalidTransition
	}
	n.toMain()
	return nil
}

// Back handles the platform previous-screen signal and reports whether it closed an overlay.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.history > 0 {
		n.history--
	}
	if !n.state.IsOverlay() {
		return false
	}
	n.toMain()
	return true
}

func (n *Navigator) toMain() {
	n.state = model.ViewMain
	n.partner = nil
}

// State returns the current view state.
func (n *Navigator) State() model.ViewState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// ChromeVisible reports whether header and bottom navigation are shown.
func (n *Navigator) ChromeVisible() bool {
	return n.State() == model.ViewMain
}

// Snapshot returns the full navigator state.
func (n *Navigator) Snapshot() NavigationSnapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	snap := NavigationSnapshot{State: n.state, Request: n.request, History: n.history}
	if n.partner != nil {
		p := *n.partner
		snap.Partner = &p
	}
	return snap
}
