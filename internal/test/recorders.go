package test

import "sync"

// RecorderStub counts business metrics in memory.
type RecorderStub struct {
	mu       sync.Mutex
	Orders   int
	Ledger   map[string]int
	Sessions int
}

// OrderPlaced increments order counter.
func (r *RecorderStub) OrderPlaced() {
	r.mu.Lock()
	r.Orders++
	r.mu.Unlock()
}

// LedgerOperation counts op/result pairs as "op:result".
func (r *RecorderStub) LedgerOperation(op, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Ledger == nil {
		r.Ledger = make(map[string]int)
	}
	r.Ledger[op+":"+result]++
}

// SessionsChanged stores the latest session count.
func (r *RecorderStub) SessionsChanged(n int) {
	r.mu.Lock()
	r.Sessions = n
	r.mu.Unlock()
}

// LedgerCount returns count for op/result pair.
func (r *RecorderStub) LedgerCount(op, result string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Ledger[op+":"+result]
}
