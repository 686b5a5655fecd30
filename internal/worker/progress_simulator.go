package worker

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/polkiloo/presto/internal/scheduler"
	"github.com/polkiloo/presto/internal/usecase"
)

// StoreSource exposes the live session stores the simulator advances.
type StoreSource interface {
	Stores() []*usecase.Store
}

// TickObserver is notified after each simulator tick.
type TickObserver interface {
	ObserveTick(sessions int)
}

// ProgressSimulator advances non-terminal orders on a fixed interval.
type ProgressSimulator struct {
	source   StoreSource
	sched    *scheduler.Scheduler
	interval time.Duration
	step     func() float64
	observer TickObserver
	logger   *slog.Logger

	mu   sync.Mutex
	task scheduler.Task
}

// NewProgressSimulator constructs simulator. step draws the per-order progress
// increment; nil draws uniformly from [0, maxStep).
func NewProgressSimulator(source StoreSource, sched *scheduler.Scheduler, interval time.Duration, maxStep float64, step func() float64, observer TickObserver, logger *slog.Logger) *ProgressSimulator {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if step == nil {
		step = func() float64 { return rand.Float64() * maxStep }
	}
	return &ProgressSimulator{
		source:   source,
		sched:    sched,
		interval: interval,
		step:     step,
		observer: observer,
		logger:   logger,
	}
}

// Start registers the recurring tick. Calling Start again while running is a no-op.
func (p *ProgressSimulator) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.task != nil {
		return
	}
	p.task = p.sched.Every(p.interval, p.Tick)
	p.logger.Info("progress simulator started", slog.Duration("interval", p.interval))
}

// Stop cancels the recurring tick.
func (p *ProgressSimulator) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.task == nil {
		return
	}
	p.task.Cancel()
	p.task = nil
}

// Running reports whether the tick is registered.
func (p *ProgressSimulator) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.task != nil
}

// Tick advances every live order of every session once.
func (p *ProgressSimulator) Tick() {
	stores := p.source.Stores()
	for _, store := range stores {
		store.Update(func(s usecase.State) usecase.State {
			return s.WithOrders(usecase.AdvanceOrders(s.Orders, p.step))
		})
	}
	if p.observer != nil {
		p.observer.ObserveTick(len(stores))
	}
}
