package stub

import (
	"sync"
)

// Store keeps stub orders and messages in memory.
type Store struct {
	mu       sync.RWMutex
	orders   []Order
	messages []Message
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{}
}

// AddOrder records order.
func (s *Store) AddOrder(order Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
}

// Orders returns all orders in insertion order.
func (s *Store) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// AddMessage records msg.
func (s *Store) AddMessage(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns the messages attached to orderID.
func (s *Store) Messages(orderID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, 0)
	for _, m := range s.messages {
		if m.OrderID == orderID {
			out = append(out, m)
		}
	}
	return out
}
