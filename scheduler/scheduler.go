// Package scheduler drives every periodic task and one-shot timer of a match
// from a single virtual clock, so the interleaving of independent timers is
// fixed by due time and registration order instead of by the runtime.
//
// A Scheduler is not safe for concurrent use; callers serialise access.
package scheduler

import (
	"container/heap"
	"fmt"
	"time"
)

// Func is invoked when a task or timer comes due.
type Func func()

// Timer is a pending one-shot callback.
type Timer struct {
	due       time.Duration
	seq       uint64
	fn        Func
	index     int
	cancelled bool
	fired     bool
}

// Stop cancels the timer. It reports false if the timer already fired or was
// already cancelled.
func (t *Timer) Stop() bool {
	if t == nil || t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Due is the virtual time the timer fires at.
func (t *Timer) Due() time.Duration {
	return t.due
}

type task struct {
	name   string
	period time.Duration
	next   time.Duration
	fn     Func
}

// Scheduler owns the virtual clock.
//
// Ordering rules when several callbacks share a due time:
//   - one-shot timers fire before periodic tasks
//   - timers fire in the order they were scheduled
//   - periodic tasks fire in registration order
type Scheduler struct {
	now     time.Duration
	tasks   []*task
	timers  timerQueue
	seq     uint64
	paused  bool
	stopped bool
}

// New returns a scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Every registers a periodic task. Its first run is one period from now.
func (s *Scheduler) Every(name string, period time.Duration, fn Func) {
	if period <= 0 {
		panic(fmt.Sprintf("scheduler: task %q needs a positive period, got %v", name, period))
	}
	if s.stopped {
		return
	}
	s.tasks = append(s.tasks, &task{
		name:   name,
		period: period,
		next:   s.now + period,
		fn:     fn,
	})
}

// After schedules fn to run once, d from now. Timers scheduled on a stopped
// scheduler never fire.
func (s *Scheduler) After(d time.Duration, fn Func) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{due: s.now + d, seq: s.seq, fn: fn}
	if s.stopped {
		t.cancelled = true
		return t
	}
	heap.Push(&s.timers, t)
	return t
}

// Advance moves the clock forward by dt, firing everything that comes due in
// order. Callbacks may schedule new timers; those inside the window fire in the
// same call. Returns the number of callbacks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt <= 0 || s.paused || s.stopped {
		return 0
	}

	target := s.now + dt
	fired := 0
	for !s.stopped && !s.paused {
		due, t, tk := s.peek()
		if (t == nil && tk == nil) || due > target {
			break
		}
		s.now = due

		if t != nil {
			heap.Pop(&s.timers)
			if t.cancelled {
				continue
			}
			t.fired = true
			t.fn()
		} else {
			tk.next += tk.period
			tk.fn()
		}
		fired++
	}

	if !s.stopped && !s.paused {
		s.now = target
	}
	return fired
}

// peek returns the next callback due, preferring timers on ties.
func (s *Scheduler) peek() (time.Duration, *Timer, *task) {
	for len(s.timers) > 0 && s.timers[0].cancelled {
		heap.Pop(&s.timers)
	}

	var next *task
	for _, tk := range s.tasks {
		if next == nil || tk.next < next.next {
			next = tk
		}
	}

	if len(s.timers) > 0 {
		t := s.timers[0]
		if next == nil || t.due <= next.next {
			return t.due, t, nil
		}
	}
	if next != nil {
		return next.next, nil, next
	}
	return 0, nil, nil
}

// Now is the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pause freezes the clock. Advance is a no-op until Resume.
func (s *Scheduler) Pause() {
	s.paused = true
}

// Resume unfreezes the clock without replaying the paused interval.
func (s *Scheduler) Resume() {
	s.paused = false
}

func (s *Scheduler) Paused() bool {
	return s.paused
}

// Stop cancels every task and timer permanently.
func (s *Scheduler) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = nil
	s.tasks = nil
}

func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Pending counts timers that have yet to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Tasks lists the registered periodic tasks in firing order.
func (s *Scheduler) Tasks() []string {
	names := make([]string, 0, len(s.tasks))
	for _, tk := range s.tasks {
		names = append(names, tk.name)
	}
	return names
}

// timerQueue is a min-heap ordered by due time then scheduling order.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
