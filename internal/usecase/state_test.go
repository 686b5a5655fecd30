package usecase

import (
	"testing"
	"time"

	"github.com/polkiloo/presto/internal/domain/model"
)

func TestStateTransformsDoNotMutateReceiver(t *testing.T) {
	base := InitialState(time.Unix(0, 0), 500)

	next := base.WithOrder(model.Order{ID: "new"}).WithBalance(900).WithTransaction(model.Transaction{ID: "tx_new"})

	if len(base.Orders) != 2 || base.Balance != 500 || len(base.Transactions) != 1 {
		t.Fatalf("base state mutated: %+v", base)
	}
	if next.Orders[0].ID != "new" || next.Balance != 900 || next.Transactions[0].ID != "tx_new" {
		t.Fatalf("unexpected next state: %+v", next)
	}
}

func TestStoreSnapshotIsIsolated(t *testing.T) {
	store := NewStore(State{Orders: []model.Order{{ID: "a", Items: []model.OrderItem{{Name: "x", Price: 1}}}}})

	snap := store.Snapshot()
	snap.Orders[0].Items[0].Name = "changed"
	snap.Orders[0].ID = "changed"

	again := store.Snapshot()
	if again.Orders[0].ID != "a" || again.Orders[0].Items[0].Name != "x" {
		t.Fatalf("store state leaked through snapshot: %+v", again.Orders[0])
	}
}

func TestStoreUpdateNotifiesSubscribers(t *testing.T) {
	store := NewStore(State{})
	ch, cancel := store.Subscribe()

	store.AppendOrder(model.Order{ID: "o1"})

	select {
	case <-ch:
	default:
		t.Fatal("expected notification after update")
	}

	cancel()
	cancel()
	store.AppendOrder(model.Order{ID: "o2"})
	select {
	case <-ch:
		t.Fatal("unexpected notification after unsubscribe")
	default:
	}

	if got := store.Snapshot().Orders; len(got) != 2 || got[0].ID != "o2" {
		t.Fatalf("expected most recent order first, got %+v", got)
	}
}

func TestInitialStateSeed(t *testing.T) {
	now := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)
	st := InitialState(now, 500)

	if st.Balance != 500 {
		t.Fatalf("expected balance 500, got %d", st.Balance)
	}
	if st.Orders[0].Status != model.OrderStatusAssigned || st.Orders[0].Progress != 75 {
		t.Fatalf("unexpected live seed order: %+v", st.Orders[0])
	}
	if st.Orders[1].Status != model.OrderStatusDelivered || st.Orders[1].Timestamp != now.Add(-24*time.Hour).UnixMilli() {
		t.Fatalf("unexpected past seed order: %+v", st.Orders[1])
	}
	if st.Transactions[0].Type != model.TransactionRefund || !st.Transactions[0].IsPositive {
		t.Fatalf("unexpected seed transaction: %+v", st.Transactions[0])
	}
}
