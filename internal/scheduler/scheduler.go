package scheduler

import (
	"sync"
	"time"

	"github.com/facebookgo/clock"
)

// Task is a scheduled callback that can be cancelled on teardown.
type Task interface {
	Cancel()
}

// Scheduler runs delayed and recurring callbacks against a clock.
// Production code uses clock.New(); tests drive a clock.Mock.
type Scheduler struct {
	clock clock.Clock
	wg    sync.WaitGroup
}

// New creates Scheduler backed by provided clock.
func New(c clock.Clock) *Scheduler {
	if c == nil {
		c = clock.New()
	}
	return &Scheduler{clock: c}
}

// Now returns current clock time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

type task struct {
	done chan struct{}
	once sync.Once
}

func newTask() *task {
	return &task{done: make(chan struct{})}
}

// Cancel prevents any further invocation. Safe to call more than once.
func (t *task) Cancel() {
	t.once.Do(func() { close(t.done) })
}

func (t *task) cancelled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

type delayed struct {
	once  sync.Once
	timer *clock.Timer
	wg    *sync.WaitGroup
}

// claim reports whether the caller won the single transition out of pending.
// The winner owns the WaitGroup slot.
func (d *delayed) claim() bool {
	won := false
	d.once.Do(func() { won = true })
	return won
}

// Cancel stops the timer if the callback has not started. Safe to call more than once.
func (d *delayed) Cancel() {
	if !d.claim() {
		return
	}
	d.timer.Stop()
	d.wg.Done()
}

// After runs fn once after d unless cancelled first.
// The callback runs on the clock's timer, so a cancelled task leaves nothing
// waiting on the clock.
func (s *Scheduler) After(d time.Duration, fn func()) Task {
	t := &delayed{wg: &s.wg}
	s.wg.Add(1)
	t.timer = s.clock.AfterFunc(d, func() {
		if !t.claim() {
			return
		}
		defer s.wg.Done()
		fn()
	})
	return t
}

// Every runs fn each interval until cancelled. Invocations never overlap.
func (s *Scheduler) Every(interval time.Duration, fn func()) Task {
	t := newTask()
	ticker := s.clock.Ticker(interval)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				if t.cancelled() {
					return
				}
				fn()
			}
		}
	}()
	return t
}

// Wait blocks until every task goroutine has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
