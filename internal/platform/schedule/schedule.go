// Package schedule runs delayed tasks whose lifetime is bound to a context.
//
// A Scheduler belongs to one view. When the view goes away its context is
// cancelled (or Stop is called) and every pending task is dropped before it
// can touch view state.
package schedule

import (
	"context"
	"sync"
	"time"
)

// Task is a scheduled callback. ctx is the scheduler context.
type Task func(ctx context.Context)

// Scheduler runs tasks after a delay. Tasks run one at a time, so the task
// scheduled to fire last leaves the final state.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	timers  map[uint64]*time.Timer
	nextID  uint64
	stopped bool

	run sync.Mutex
	wg  sync.WaitGroup
}

// New creates a scheduler that cancels its pending tasks when parent ends.
func New(parent context.Context) *Scheduler {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	s := &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		timers: map[uint64]*time.Timer{},
	}
	context.AfterFunc(ctx, s.cancelPending)
	return s
}

// After schedules task to run once after d. The returned func cancels the
// task and reports whether it was still pending.
func (s *Scheduler) After(d time.Duration, task Task) func() bool {
	if task == nil {
		return func() bool { return false }
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return func() bool { return false }
	}
	id := s.nextID
	s.nextID++
	s.wg.Add(1)
	s.timers[id] = time.AfterFunc(d, func() {
		if !s.claim(id) {
			return
		}
		defer s.wg.Done()
		s.run.Lock()
		defer s.run.Unlock()
		if s.ctx.Err() != nil {
			return
		}
		task(s.ctx)
	})
	return func() bool { return s.cancelTask(id) }
}

// Pending returns the number of tasks that have not fired or been cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Wait blocks until every scheduled task has run or been cancelled.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Done is closed once the scheduler is stopped.
func (s *Scheduler) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Stop cancels pending tasks and waits for a running one to return. It must
// not be called from inside a task.
func (s *Scheduler) Stop() {
	s.cancel()
	s.cancelPending()
	s.wg.Wait()
}

// claim removes id from the pending set. Whoever claims a task owns its
// WaitGroup slot.
func (s *Scheduler) claim(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

func (s *Scheduler) cancelTask(id uint64) bool {
	s.mu.Lock()
	timer, ok := s.timers[id]
	if ok {
		delete(s.timers, id)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	timer.Stop()
	s.wg.Done()
	return true
}

func (s *Scheduler) cancelPending() {
	s.mu.Lock()
	s.stopped = true
	timers := s.timers
	s.timers = map[uint64]*time.Timer{}
	s.mu.Unlock()
	for _, timer := range timers {
		timer.Stop()
		s.wg.Done()
	}
}
