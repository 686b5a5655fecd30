package dto

import (
	"github.com/polkiloo/presto/internal/app"
	"github.com/polkiloo/presto/internal/domain/model"
)

// WalletResponse represents the balance and its ledger.
type WalletResponse struct {
	Balance      int                 `json:"balance"`
	Busy         bool                `json:"busy"`
	Transactions []model.Transaction `json:"transactions"`
}

// NewWalletResponse converts an app wallet view.
func NewWalletResponse(v app.WalletView) WalletResponse {
	txs := v.Transactions
	if txs == nil {
		txs = []model.Transaction{}
	}
	return WalletResponse{Balance: v.Balance, Busy: v.Busy, Transactions: txs}
}
