package schedule

import (
	"sync"
	"time"
)

// Manual is a Scheduler with a virtual clock. Nothing fires until Advance
// or Fire is called, and callbacks run on the caller's goroutine.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*manualTask
}

type manualTask struct {
	owner    *Manual
	interval time.Duration
	next     time.Duration
	fn       func()
	stopped  bool
}

// NewManual returns a Manual scheduler at virtual time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every implements Scheduler. Non-positive intervals are treated as one
// nanosecond.
func (m *Manual) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		interval = time.Nanosecond
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task := &manualTask{
		owner:    m,
		interval: interval,
		next:     m.now + interval,
		fn:       fn,
	}
	m.tasks = append(m.tasks, task)
	return task
}

func (t *manualTask) Stop() {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.stopped {
		return
	}
	t.stopped = true
	for i, task := range m.tasks {
		if task == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Active returns the number of tasks that have not been stopped.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves the clock forward by d, firing every task that comes due in
// time order. Ties fire in registration order. It returns the number of
// callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	fired := 0

	for {
		var due *manualTask
		for _, task := range m.tasks {
			if task.next <= target && (due == nil || task.next < due.next) {
				due = task
			}
		}
		if due == nil {
			break
		}

		m.now = due.next
		due.next += due.interval
		fn := due.fn

		m.mu.Unlock()
		fn()
		fired++
		m.mu.Lock()
	}

	m.now = target
	m.mu.Unlock()
	return fired
}

// Fire runs every active task once without moving the clock. Tasks stopped
// by an earlier callback in the same call are skipped.
func (m *Manual) Fire() int {
	m.mu.Lock()
	tasks := make([]*manualTask, len(m.tasks))
	copy(tasks, m.tasks)
	m.mu.Unlock()

	fired := 0
	for _, task := range tasks {
		m.mu.Lock()
		stopped := task.stopped
		m.mu.Unlock()
		if stopped {
			continue
		}
		task.fn()
		fired++
	}
	return fired
}
