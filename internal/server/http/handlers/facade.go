package handlers

import (
	"context"

	"github.com/polkiloo/presto/internal/app"
	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/usecase"
)

// SessionFacade covers session lifecycle and navigation.
type SessionFacade interface {
	CreateSession(ctx context.Context) (app.SessionView, error)
	Session(id string) (app.SessionView, error)
	DeleteSession(id string) error
	SelectTab(id, raw string) (app.SessionView, error)
	SubmitRequest(ctx context.Context, id, text string) (app.SessionView, []model.Partner, error)
	Partners(id string) ([]model.Partner, error)
	SelectPartner(id, partnerID string) (usecase.ChatView, error)
	Close(id string) (app.SessionView, error)
	Back(id string) (app.SessionView, bool, error)
}

// ChatFacade encapsulates chat operations exposed via HTTP.
type ChatFacade interface {
	Chat(id string) (usecase.ChatView, error)
	SendMessage(ctx context.Context, id, text string) (usecase.ChatView, error)
	PlaceOrder(ctx context.Context, id string) (model.Order, error)
}

// WalletFacade provides wallet ledger operations.
type WalletFacade interface {
	TopUp(ctx context.Context, id string) (model.Transaction, error)
	Withdraw(ctx context.Context, id string) (model.Transaction, error)
	Wallet(id string) (app.WalletView, error)
}

// OrderFacade lists and streams session orders.
type OrderFacade interface {
	Orders(id string, filter usecase.OrderFilter) ([]model.Order, error)
	SubscribeOrders(id string) (<-chan struct{}, func(), error)
}

// ThemeFacade reads and writes the theme preference.
type ThemeFacade interface {
	Theme(ctx context.Context) (model.Theme, error)
	SetTheme(ctx context.Context, raw string) (model.Theme, error)
	ToggleTheme(ctx context.Context) (model.Theme, error)
}

// PrestoFacade aggregates the full set of operations used across handlers.
type PrestoFacade interface {
	SessionFacade
	ChatFacade
	WalletFacade
	OrderFacade
	ThemeFacade
}

var _ PrestoFacade = (*app.PrestoFacade)(nil)
