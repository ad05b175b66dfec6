// Package clock provides cancellable deferred tasks. Behaviors take a Clock so
// the typeahead reset can be driven by a real timer in production and by a
// manually advanced clock in tests.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a scheduled task. Stop reports whether it prevented the call.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred tasks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

type realClock struct{}

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Manual is a Clock whose time only moves when Advance is called. Due tasks
// run synchronously inside Advance, in deadline order.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	tasks []*manualTimer
	seq   int
}

type manualTimer struct {
	m       *Manual
	due     time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, due: m.now.Add(d), seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d and runs every task that became due.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	var due, keep []*manualTimer
	for _, t := range m.tasks {
		switch {
		case t.stopped:
		case !t.due.After(now):
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	m.tasks = keep
	for _, t := range due {
		t.fired = true
	}
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if !due[i].due.Equal(due[j].due) {
			return due[i].due.Before(due[j].due)
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of scheduled tasks that have not fired or been
// stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
