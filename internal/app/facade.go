package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/polkiloo/presto/internal/adapter/events"
	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/scheduler"
	"github.com/polkiloo/presto/internal/usecase"
)

// Recorder receives business metrics.
type Recorder interface {
	OrderPlaced()
	LedgerOperation(op, result string)
	SessionsChanged(n int)
}

// WalletView is the wallet tab content.
type WalletView struct {
	Balance      int
	Busy         bool
	Transactions []model.Transaction
}

// PrestoFacade is the single entry point used by transport handlers.
type PrestoFacade struct {
	registry  *Registry
	partners  usecase.PartnerSource
	responder usecase.Responder
	theme     *usecase.ThemeService
	sched     *scheduler.Scheduler
	publisher events.Publisher
	recorder  Recorder
	cfg       SessionConfig
	logger    *slog.Logger
}

// FacadeDeps groups PrestoFacade collaborators.
type FacadeDeps struct {
	Registry  *Registry
	Partners  usecase.PartnerSource
	Responder usecase.Responder
	Theme     *usecase.ThemeService
	Scheduler *scheduler.Scheduler
	Publisher events.Publisher
	Recorder  Recorder
	Config    SessionConfig
	Logger    *slog.Logger
}

// NewPrestoFacade constructs PrestoFacade.
func NewPrestoFacade(d FacadeDeps) *PrestoFacade {
	if d.Publisher == nil {
		d.Publisher = events.NoopPublisher{}
	}
	return &PrestoFacade{
		registry:  d.Registry,
		partners:  d.Partners,
		responder: d.Responder,
		theme:     d.Theme,
		sched:     d.Scheduler,
		publisher: d.Publisher,
		recorder:  d.Recorder,
		cfg:       d.Config,
		logger:    d.Logger,
	}
}

// CreateSession starts a fresh session with seeded state.
func (f *PrestoFacade) CreateSession(ctx context.Context) (SessionView, error) {
	now := f.sched.Now()
	store := usecase.NewStore(usecase.InitialState(now, f.cfg.StartingBalance))
	s := &Session{
		ID:        uuid.NewString(),
		User:      usecase.DefaultUser(),
		CreatedAt: now,
		Store:     store,
		Nav:       usecase.NewNavigator(),
		Tabs:      usecase.NewTabs(),
		Ledger:    usecase.NewLedger(store, f.sched, f.cfg.Ledger, nil),
	}
	n := f.registry.Add(s)
	f.recorder.SessionsChanged(n)
	f.logger.Info("session created", slog.String("session", s.ID))
	return s.View(), nil
}

// Session returns the session view.
func (f *PrestoFacade) Session(id string) (SessionView, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return SessionView{}, err
	}
	return s.View(), nil
}

// DeleteSession discards the session and cancels its chat.
func (f *PrestoFacade) DeleteSession(id string) error {
	s, n, err := f.registry.Remove(id)
	if err != nil {
		return err
	}
	s.Close()
	f.recorder.SessionsChanged(n)
	return nil
}

// SelectTab switches the active main tab.
func (f *PrestoFacade) SelectTab(id, raw string) (SessionView, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return SessionView{}, err
	}
	tab, err := usecase.ParseTab(raw)
	if err != nil {
		return SessionView{}, err
	}
	s.Tabs.Select(tab)
	return s.View(), nil
}

// SubmitRequest opens bidding for the request text and snapshots nearby partners.
func (f *PrestoFacade) SubmitRequest(ctx context.Context, id, text string) (SessionView, []model.Partner, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return SessionView{}, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Nav.Submit(text); err != nil {
		return SessionView{}, nil, err
	}
	candidates, err := f.partners.Candidates(ctx)
	if err != nil {
		_ = s.Nav.Close()
		return SessionView{}, nil, err
	}
	s.candidates = candidates

	out := make([]model.Partner, len(candidates))
	copy(out, candidates)
	return s.View(), out, nil
}

// Partners returns the bidding snapshot of the session.
func (f *PrestoFacade) Partners(id string) ([]model.Partner, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return nil, err
	}
	return s.Candidates(), nil
}

// SelectPartner accepts a bid and opens the chat with that partner.
func (f *PrestoFacade) SelectPartner(id, partnerID string) (usecase.ChatView, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return usecase.ChatView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	partner, err := usecase.FindPartner(s.candidates, partnerID)
	if err != nil {
		return usecase.ChatView{}, err
	}
	if err := s.Nav.SelectPartner(partner); err != nil {
		return usecase.ChatView{}, err
	}
	request := s.Nav.Snapshot().Request
	s.endChat()
	s.chat = usecase.NewChatSession(request, partner, s.User, f.cfg.Chat, f.sched, f.responder, f.logger.With(slog.String("session", s.ID)))
	return s.chat.View(), nil
}

// Close dismisses the active overlay.
func (f *PrestoFacade) Close(id string) (SessionView, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return SessionView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Nav.Close(); err != nil {
		return SessionView{}, err
	}
	s.endChat()
	return s.View(), nil
}

// Back handles the platform back signal. It reports whether an overlay was closed.
func (f *PrestoFacade) Back(id string) (SessionView, bool, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return SessionView{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	closed := s.Nav.Back()
	if closed {
		s.endChat()
	}
	return s.View(), closed, nil
}

func (f *PrestoFacade) activeChat(id string) (*Session, *usecase.ChatSession, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return nil, nil, err
	}
	chat := s.Chat()
	if chat == nil {
		return s, nil, domainErrors.ErrPartnerUnspecified
	}
	return s, chat, nil
}

// Chat returns the active chat transcript. ErrPartnerUnspecified means no partner is selected yet.
func (f *PrestoFacade) Chat(id string) (usecase.ChatView, error) {
	_, chat, err := f.activeChat(id)
	if err != nil {
		return usecase.ChatView{}, err
	}
	return chat.View(), nil
}

// SendMessage forwards a user message to the partner and returns the updated transcript.
func (f *PrestoFacade) SendMessage(ctx context.Context, id, text string) (usecase.ChatView, error) {
	_, chat, err := f.activeChat(id)
	if err != nil {
		return usecase.ChatView{}, err
	}
	if err := chat.Send(ctx, text); err != nil {
		return usecase.ChatView{}, err
	}
	return chat.View(), nil
}

// PlaceOrder turns the chat into an order, ends the chat and returns to main.
func (f *PrestoFacade) PlaceOrder(ctx context.Context, id string) (model.Order, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return model.Order{}, err
	}

	s.mu.Lock()
	if s.chat == nil {
		s.mu.Unlock()
		return model.Order{}, domainErrors.ErrPartnerUnspecified
	}
	order, err := s.chat.Order()
	if err != nil {
		s.mu.Unlock()
		return model.Order{}, err
	}
	s.Store.AppendOrder(order)
	s.endChat()
	_ = s.Nav.Close()
	s.mu.Unlock()

	f.recorder.OrderPlaced()
	f.publish(ctx, events.Event{Type: events.TypeOrderPlaced, SessionID: s.ID, Payload: order})
	f.logger.Info("order placed",
		slog.String("session", s.ID),
		slog.String("order", order.ID),
		slog.String("partner", order.Partner))
	return order, nil
}

// TopUp adds funds to the wallet.
func (f *PrestoFacade) TopUp(ctx context.Context, id string) (model.Transaction, error) {
	return f.ledgerOp(ctx, id, "topup", func(l *usecase.Ledger) (model.Transaction, error) { return l.TopUp(ctx) })
}

// Withdraw moves funds out of the wallet.
func (f *PrestoFacade) Withdraw(ctx context.Context, id string) (model.Transaction, error) {
	return f.ledgerOp(ctx, id, "withdraw", func(l *usecase.Ledger) (model.Transaction, error) { return l.Withdraw(ctx) })
}

func (f *PrestoFacade) ledgerOp(ctx context.Context, id, op string, run func(*usecase.Ledger) (model.Transaction, error)) (model.Transaction, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return model.Transaction{}, err
	}

	tx, err := run(s.Ledger)
	f.recorder.LedgerOperation(op, ledgerResult(err))
	if err != nil {
		return model.Transaction{}, err
	}
	f.publish(ctx, events.Event{Type: events.TypeLedgerEntry, SessionID: s.ID, Payload: tx})
	return tx, nil
}

func ledgerResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		return "insufficient"
	case errors.Is(err, domainErrors.ErrLedgerBusy):
		return "busy"
	default:
		return "error"
	}
}

// Wallet returns balance and ledger.
func (f *PrestoFacade) Wallet(id string) (WalletView, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return WalletView{}, err
	}
	st := s.Store.Snapshot()
	return WalletView{Balance: st.Balance, Busy: s.Ledger.Busy(), Transactions: st.Transactions}, nil
}

// Orders lists session orders matching filter.
func (f *PrestoFacade) Orders(id string, filter usecase.OrderFilter) ([]model.Order, error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return nil, err
	}
	return usecase.FilterOrders(s.Store.Snapshot().Orders, filter), nil
}

// SubscribeOrders signals after every state change of the session.
func (f *PrestoFacade) SubscribeOrders(id string) (<-chan struct{}, func(), error) {
	s, err := f.registry.Get(id)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := s.Store.Subscribe()
	return ch, cancel, nil
}

// Theme returns the persisted theme.
func (f *PrestoFacade) Theme(ctx context.Context) (model.Theme, error) {
	return f.theme.Get(ctx)
}

// SetTheme persists a validated theme name.
func (f *PrestoFacade) SetTheme(ctx context.Context, raw string) (model.Theme, error) {
	theme, err := usecase.ParseTheme(raw)
	if err != nil {
		return "", err
	}
	if err := f.theme.Set(ctx, theme); err != nil {
		return "", err
	}
	return theme, nil
}

// ToggleTheme flips the persisted theme.
func (f *PrestoFacade) ToggleTheme(ctx context.Context) (model.Theme, error) {
	return f.theme.Toggle(ctx)
}

// Stores exposes live session stores to the progress simulator.
func (f *PrestoFacade) Stores() []*usecase.Store {
	return f.registry.Stores()
}

func (f *PrestoFacade) publish(ctx context.Context, event events.Event) {
	event.Timestamp = f.sched.Now()
	if err := f.publisher.Publish(ctx, event); err != nil {
		f.logger.Error("publish event failed",
			slog.String("type", string(event.Type)),
			slog.String("session", event.SessionID),
			slog.String("error", err.Error()))
	}
}
