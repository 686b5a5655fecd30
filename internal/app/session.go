package app

import (
	"sync"
	"time"

	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/usecase"
)

// SessionConfig holds the per-session tunables taken from configuration.
type SessionConfig struct {
	StartingBalance int
	Ledger          usecase.LedgerConfig
	Chat            usecase.ChatConfig
}

// Session is one user's application instance: root state plus its view machinery.
type Session struct {
	ID        string
	User      model.User
	CreatedAt time.Time

	Store  *usecase.Store
	Nav    *usecase.Navigator
	Tabs   *usecase.Tabs
	Ledger *usecase.Ledger

	// mu serializes navigation together with chat start and end.
	mu         sync.Mutex
	candidates []model.Partner
	chat       *usecase.ChatSession
}

// SessionView is a consistent read of a session for rendering.
type SessionView struct {
	ID            string
	User          model.User
	View          model.ViewState
	Request       string
	Partner       *model.Partner
	Tab           model.Tab
	TabOffset     int
	ChromeVisible bool
	Balance       int
	LiveOrder     *model.Order
}

// View snapshots the session.
func (s *Session) View() SessionView {
	nav := s.Nav.Snapshot()
	st := s.Store.Snapshot()
	view := SessionView{
		ID:            s.ID,
		User:          s.User,
		View:          nav.State,
		Request:       nav.Request,
		Partner:       nav.Partner,
		Tab:           s.Tabs.Active(),
		TabOffset:     s.Tabs.OffsetPercent(),
		ChromeVisible: nav.State == model.ViewMain,
		Balance:       st.Balance,
	}
	if live, ok := usecase.LiveOrder(st.Orders); ok {
		view.LiveOrder = &live
	}
	return view
}

// Candidates returns the partner snapshot taken when bidding started.
func (s *Session) Candidates() []model.Partner {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Partner, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// Chat returns the active chat, if any.
func (s *Session) Chat() *usecase.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat
}

// endChat must be called with mu held.
func (s *Session) endChat() {
	if s.chat != nil {
		s.chat.End()
		s.chat = nil
	}
}

// Close ends any active chat; used when the session is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endChat()
	s.candidates = nil
}
