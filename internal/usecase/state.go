package usecase

import (
	"sync"

	"github.com/polkiloo/presto/internal/domain/model"
)

// State is the root application state owned by a session.
// Transforms never mutate the receiver; they return the next state.
type State struct {
	Balance      int
	Orders       []model.Order
	Transactions []model.Transaction
}

// WithOrder prepends order, keeping the list most-recent-first.
func (s State) WithOrder(order model.Order) State {
	next := s.clone()
	next.Orders = append([]model.Order{order}, next.Orders...)
	return next
}

// WithTransaction prepends tx, keeping the ledger most-recent-first.
func (s State) WithTransaction(tx model.Transaction) State {
	next := s.clone()
	next.Transactions = append([]model.Transaction{tx}, next.Transactions...)
	return next
}

// WithBalance replaces the wallet balance.
func (s State) WithBalance(balance int) State {
	next := s.clone()
	next.Balance = balance
	return next
}

// WithOrders replaces the order list.
func (s State) WithOrders(orders []model.Order) State {
	next := s.clone()
	next.Orders = cloneOrders(orders)
	return next
}

func (s State) clone() State {
	return State{
		Balance:      s.Balance,
		Orders:       cloneOrders(s.Orders),
		Transactions: append([]model.Transaction(nil), s.Transactions...),
	}
}

func cloneOrders(orders []model.Order) []model.Order {
	if orders == nil {
		return nil
	}
	out := make([]model.Order, len(orders))
	for i, o := range orders {
		o.Items = append([]model.OrderItem(nil), o.Items...)
		out[i] = o
	}
	return out
}

// Store holds the authoritative State and applies transforms atomically.
type Store struct {
	mu      sync.RWMutex
	state   State
	subs    map[int]chan struct{}
	nextSub int
}

// NewStore creates Store seeded with initial state.
func NewStore(initial State) *Store {
	return &Store{state: initial.clone(), subs: make(map[int]chan struct{})}
}

// Snapshot returns a copy safe to read without holding the lock.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Update applies fn under the write lock and notifies subscribers.
func (s *Store) Update(fn func(State) State) State {
	s.mu.Lock()
	s.state = fn(s.state.clone())
	next := s.state.clone()
	subs := make([]chan struct{}, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return next
}

// AppendOrder is the callback handed to the chat flow.
func (s *Store) AppendOrder(order model.Order) {
	s.Update(func(st State) State { return st.WithOrder(order) })
}

// Subscribe returns a channel signalled after every update and a cancel func.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}
