package handlers

import (
	"context"
	"sync"

	"github.com/polkiloo/presto/internal/app"
	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/usecase"
)

// facadeStub implements PrestoFacade with overridable behaviour.
type facadeStub struct {
	CreateSessionFn   func(ctx context.Context) (app.SessionView, error)
	SessionFn         func(id string) (app.SessionView, error)
	DeleteSessionFn   func(id string) error
	SelectTabFn       func(id, raw string) (app.SessionView, error)
	SubmitRequestFn   func(ctx context.Context, id, text string) (app.SessionView, []model.Partner, error)
	PartnersFn        func(id string) ([]model.Partner, error)
	SelectPartnerFn   func(id, partnerID string) (usecase.ChatView, error)
	CloseFn           func(id string) (app.SessionView, error)
	BackFn            func(id string) (app.SessionView, bool, error)
	ChatFn            func(id string) (usecase.ChatView, error)
	SendMessageFn     func(ctx context.Context, id, text string) (usecase.ChatView, error)
	PlaceOrderFn      func(ctx context.Context, id string) (model.Order, error)
	TopUpFn           func(ctx context.Context, id string) (model.Transaction, error)
	WithdrawFn        func(ctx context.Context, id string) (model.Transaction, error)
	WalletFn          func(id string) (app.WalletView, error)
	OrdersFn          func(id string, filter usecase.OrderFilter) ([]model.Order, error)
	SubscribeOrdersFn func(id string) (<-chan struct{}, func(), error)
	ThemeFn           func(ctx context.Context) (model.Theme, error)
	SetThemeFn        func(ctx context.Context, raw string) (model.Theme, error)
	ToggleThemeFn     func(ctx context.Context) (model.Theme, error)

	mu    sync.Mutex
	calls []string
}

var _ PrestoFacade = (*facadeStub)(nil)

func (s *facadeStub) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
}

func (s *facadeStub) called(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (s *facadeStub) CreateSession(ctx context.Context) (app.SessionView, error) {
	s.record("CreateSession")
	if s.CreateSessionFn != nil {
		return s.CreateSessionFn(ctx)
	}
	return app.SessionView{ID: "s1", View: model.ViewMain, Tab: model.TabHome, ChromeVisible: true}, nil
}

func (s *facadeStub) Session(id string) (app.SessionView, error) {
	s.record("Session")
	if s.SessionFn != nil {
		return s.SessionFn(id)
	}
	return app.SessionView{ID: id, View: model.ViewMain, Tab: model.TabHome}, nil
}

func (s *facadeStub) DeleteSession(id string) error {
	s.record("DeleteSession")
	if s.DeleteSessionFn != nil {
		return s.DeleteSessionFn(id)
	}
	return nil
}

func (s *facadeStub) SelectTab(id, raw string) (app.SessionView, error) {
	s.record("SelectTab")
	if s.SelectTabFn != nil {
		return s.SelectTabFn(id, raw)
	}
	return app.SessionView{ID: id, Tab: model.Tab(raw)}, nil
}

func (s *facadeStub) SubmitRequest(ctx context.Context, id, text string) (app.SessionView, []model.Partner, error) {
	s.record("SubmitRequest")
	if s.SubmitRequestFn != nil {
		return s.SubmitRequestFn(ctx, id, text)
	}
	return app.SessionView{ID: id, View: model.ViewBidding, Request: text}, nil, nil
}

func (s *facadeStub) Partners(id string) ([]model.Partner, error) {
	s.record("Partners")
	if s.PartnersFn != nil {
		return s.PartnersFn(id)
	}
	return nil, nil
}

func (s *facadeStub) SelectPartner(id, partnerID string) (usecase.ChatView, error) {
	s.record("SelectPartner")
	if s.SelectPartnerFn != nil {
		return s.SelectPartnerFn(id, partnerID)
	}
	return usecase.ChatView{Partner: model.Partner{ID: partnerID}}, nil
}

func (s *facadeStub) Close(id string) (app.SessionView, error) {
	s.record("Close")
	if s.CloseFn != nil {
		return s.CloseFn(id)
	}
	return app.SessionView{ID: id, View: model.ViewMain}, nil
}

func (s *facadeStub) Back(id string) (app.SessionView, bool, error) {
	s.record("Back")
	if s.BackFn != nil {
		return s.BackFn(id)
	}
	return app.SessionView{ID: id, View: model.ViewMain}, false, nil
}

func (s *facadeStub) Chat(id string) (usecase.ChatView, error) {
	s.record("Chat")
	if s.ChatFn != nil {
		return s.ChatFn(id)
	}
	return usecase.ChatView{}, nil
}

func (s *facadeStub) SendMessage(ctx context.Context, id, text string) (usecase.ChatView, error) {
	s.record("SendMessage")
	if s.SendMessageFn != nil {
		return s.SendMessageFn(ctx, id, text)
	}
	return usecase.ChatView{}, nil
}

func (s *facadeStub) PlaceOrder(ctx context.Context, id string) (model.Order, error) {
	s.record("PlaceOrder")
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, id)
	}
	return model.Order{ID: "ord_1", Status: model.OrderStatusPending}, nil
}

func (s *facadeStub) TopUp(ctx context.Context, id string) (model.Transaction, error) {
	s.record("TopUp")
	if s.TopUpFn != nil {
		return s.TopUpFn(ctx, id)
	}
	return model.Transaction{ID: "tx_1", Type: model.TransactionTopUp, Amount: "+₹1000", IsPositive: true}, nil
}

func (s *facadeStub) Withdraw(ctx context.Context, id string) (model.Transaction, error) {
	s.record("Withdraw")
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, id)
	}
	return model.Transaction{ID: "tx_2", Type: model.TransactionPayment, Amount: "-₹500"}, nil
}

func (s *facadeStub) Wallet(id string) (app.WalletView, error) {
	s.record("Wallet")
	if s.WalletFn != nil {
		return s.WalletFn(id)
	}
	return app.WalletView{Balance: 500}, nil
}

func (s *facadeStub) Orders(id string, filter usecase.OrderFilter) ([]model.Order, error) {
	s.record("Orders")
	if s.OrdersFn != nil {
		return s.OrdersFn(id, filter)
	}
	return nil, nil
}

func (s *facadeStub) SubscribeOrders(id string) (<-chan struct{}, func(), error) {
	s.record("SubscribeOrders")
	if s.SubscribeOrdersFn != nil {
		return s.SubscribeOrdersFn(id)
	}
	return make(chan struct{}), func() {}, nil
}

func (s *facadeStub) Theme(ctx context.Context) (model.Theme, error) {
	s.record("Theme")
	if s.ThemeFn != nil {
		return s.ThemeFn(ctx)
	}
	return model.ThemeLight, nil
}

func (s *facadeStub) SetTheme(ctx context.Context, raw string) (model.Theme, error) {
	s.record("SetTheme")
	if s.SetThemeFn != nil {
		return s.SetThemeFn(ctx, raw)
	}
	return model.Theme(raw), nil
}

func (s *facadeStub) ToggleTheme(ctx context.Context) (model.Theme, error) {
	s.record("ToggleTheme")
	if s.ToggleThemeFn != nil {
		return s.ToggleThemeFn(ctx)
	}
	return model.ThemeDark, nil
}
