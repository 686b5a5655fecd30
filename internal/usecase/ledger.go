package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/domain/model"
	"github.com/polkiloo/presto/internal/scheduler"
)

// LedgerConfig holds wallet amounts and simulated processing latency.
type LedgerConfig struct {
	TopUpAmount    int
	WithdrawAmount int
	MinLatency     time.Duration
	MaxLatency     time.Duration
}

// Ledger performs simulated wallet operations against a Store.
type Ledger struct {
	store  *Store
	sched  *scheduler.Scheduler
	cfg    LedgerConfig
	random func() float64

	mu   sync.Mutex
	busy bool
}

// NewLedger constructs Ledger. random draws the latency fraction; nil uses math/rand.
func NewLedger(store *Store, sched *scheduler.Scheduler, cfg LedgerConfig, random func() float64) *Ledger {
	if random == nil {
		random = rand.Float64
	}
	if cfg.MaxLatency < cfg.MinLatency {
		cfg.MaxLatency = cfg.MinLatency
	}
	return &Ledger{store: store, sched: sched, cfg: cfg, random: random}
}

// Busy reports whether an operation is in flight.
func (l *Ledger) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy
}

// TopUp adds the fixed top-up amount and records a topup transaction.
func (l *Ledger) TopUp(ctx context.Context) (model.Transaction, error) {
	return l.run(ctx, l.cfg.TopUpAmount)
}

// Withdraw removes the fixed withdrawal amount. Fails with ErrInsufficientBalance
// without touching balance or ledger when funds are short.
func (l *Ledger) Withdraw(ctx context.Context) (model.Transaction, error) {
	return l.run(ctx, -l.cfg.WithdrawAmount)
}

func (l *Ledger) run(ctx context.Context, delta int) (model.Transaction, error) {
	l.mu.Lock()
	if l.busy {
		l.mu.Unlock()
		return model.Transaction{}, domainErrors.ErrLedgerBusy
	}
	l.busy = true
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.busy = false
		l.mu.Unlock()
	}()

	if err := l.wait(ctx); err != nil {
		return model.Transaction{}, err
	}

	var (
		tx    model.Transaction
		opErr error
	)
	l.store.Update(func(s State) State {
		if delta < 0 && s.Balance < -delta {
			opErr = domainErrors.ErrInsufficientBalance
			return s
		}
		tx = ledgerTransaction(delta)
		return s.WithBalance(s.Balance + delta).WithTransaction(tx)
	})
	if opErr != nil {
		return model.Transaction{}, opErr
	}
	return tx, nil
}

func (l *Ledger) wait(ctx context.Context) error {
	latency := l.cfg.MinLatency + time.Duration(l.random()*float64(l.cfg.MaxLatency-l.cfg.MinLatency))
	done := make(chan struct{})
	task := l.sched.After(latency, func() { close(done) })
	select {
	case <-ctx.Done():
		task.Cancel()
		return ctx.Err()
	case <-done:
		return nil
	}
}

func ledgerTransaction(delta int) model.Transaction {
	tx := model.Transaction{
		ID:         "tx_" + uuid.NewString(),
		Amount:     FormatAmount(delta),
		Date:       "Just now",
		IsPositive: delta > 0,
		Status:     model.TransactionSuccessful,
	}
	if delta > 0 {
		tx.Type = model.TransactionTopUp
		tx.Title = "Wallet Top-up"
		tx.Subtitle = "Added via HDFC UPI"
		tx.Icon = "⚡"
		tx.Color = "amber"
	} else {
		tx.Type = model.TransactionPayment
		tx.Title = "Wallet Withdrawal"
		tx.Subtitle = "To Bank Account"
		tx.Icon = "🏦"
		tx.Color = "slate"
	}
	return tx
}

// FormatAmount renders a signed rupee label such as +₹1000 or -₹500.
func FormatAmount(delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("+₹%d", delta)
	case delta < 0:
		return fmt.Sprintf("-₹%d", -delta)
	default:
		return "₹0"
	}
}
