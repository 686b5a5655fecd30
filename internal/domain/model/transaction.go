package model

// TransactionType classifies wallet ledger entries.
type TransactionType string

const (
	TransactionRefund  TransactionType = "refund"
	TransactionPayment TransactionType = "payment"
	TransactionTopUp   TransactionType = "topup"
)

// TransactionStatus reflects settlement of a ledger entry.
type TransactionStatus string

const (
	TransactionSuccessful TransactionStatus = "successful"
	TransactionPending    TransactionStatus = "pending"
	TransactionFailed     TransactionStatus = "failed"
)

// Transaction is an immutable wallet ledger entry.
type Transaction struct {
	ID         string            `json:"id"`
	Type       TransactionType   `json:"type"`
	Title      string            `json:"title"`
	Subtitle   string            `json:"subtitle"`
	Amount     string            `json:"amount"`
	Date       string            `json:"date"`
	IsPositive bool              `json:"isPositive"`
	Status     TransactionStatus `json:"status"`
	Icon       string            `json:"icon"`
	Color      string            `json:"color"`
}
