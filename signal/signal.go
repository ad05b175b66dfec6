// Package signal provides the reactive cells every behavior and pattern is
// built from.
//
// A read cell (Signal) produces its current value on demand. A Writable cell
// additionally accepts Set and Update and notifies its subscribers. Computed
// cells are pull-based: they are recomputed on the first read after any
// Writable in the process has been written, and served from cache otherwise.
//
// Cells are not safe for concurrent mutation. Set must only be called from
// the goroutine that drives the widgets (the event loop).
//
// Example usage:
//
//	count := signal.New(0)
//	double := signal.NewComputed(func() int { return count.Get() * 2 })
//	count.Subscribe(func(v int) { fmt.Println("count changed to", v) })
//	count.Set(2) // prints, double.Get() == 4
package signal

import (
	"sync/atomic"
)

// Signal is a read cell.
type Signal[T any] interface {
	Get() T
}

// Unsubscribe removes a subscription. Calling it more than once is a no-op.
type Unsubscribe func()

// epoch is bumped on every write to any Writable. Computed cells compare it
// against the epoch they were computed at.
var epoch atomic.Uint64

// subscriberID is a global counter so ids are unique across all cells.
var subscriberID atomic.Uint64

// Func adapts a plain function to a read cell.
type Func[T any] func() T

// Get calls f.
func (f Func[T]) Get() T { return f() }

type constant[T any] struct{ v T }

func (c constant[T]) Get() T { return c.v }

// Const returns a read cell that always yields v.
func Const[T any](v T) Signal[T] { return constant[T]{v: v} }

// Or returns s, or a constant cell holding fallback when s is nil.
func Or[T any](s Signal[T], fallback T) Signal[T] {
	if s == nil {
		return Const(fallback)
	}
	return s
}

// Writable is a read cell that also accepts writes and notifies subscribers.
type Writable[T any] struct {
	value T
	equal func(a, b T) bool
	subs  []*subscriber[T]
}

type subscriber[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// Option configures a Writable.
type Option[T any] func(*Writable[T])

// WithEqual makes Set skip the write (and notifications) when eq reports the
// new value equal to the current one.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(w *Writable[T]) { w.equal = eq }
}

// New creates a writable cell holding initial.
func New[T any](initial T, opts ...Option[T]) *Writable[T] {
	w := &Writable[T]{value: initial}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Get returns the current value.
func (w *Writable[T]) Get() T {
	return w.value
}

// Set stores v and notifies subscribers. Inside Batch the notifications are
// deferred until the outermost batch returns.
func (w *Writable[T]) Set(v T) {
	if w.equal != nil && w.equal(w.value, v) {
		return
	}
	w.value = v
	epoch.Add(1)

	active := w.subs[:0]
	for _, s := range w.subs {
		if s.active {
			active = append(active, s)
		}
	}
	w.subs = active
	if len(active) == 0 {
		return
	}
	calls := make([]pendingCall, 0, len(active))
	for _, s := range active {
		s := s
		calls = append(calls, pendingCall{id: s.id, call: func() {
			if s.active {
				s.fn(v)
			}
		}})
	}
	if current.enqueue(calls) {
		return
	}
	for _, c := range calls {
		c.call()
	}
}

// Update applies fn to the current value and stores the result.
func (w *Writable[T]) Update(fn func(T) T) {
	w.Set(fn(w.value))
}

// Subscribe registers fn to be called with every new value. Subscribers run
// in registration order.
func (w *Writable[T]) Subscribe(fn func(T)) Unsubscribe {
	s := &subscriber[T]{id: subscriberID.Add(1), fn: fn, active: true}
	w.subs = append(w.subs, s)
	return func() { s.active = false }
}

// Computed is a memoized read cell derived from other cells.
type Computed[T any] struct {
	fn    func() T
	value T
	at    uint64
	valid bool
}

// NewComputed creates a derived cell. fn must be a pure function of the cells
// it reads.
func NewComputed[T any](fn func() T) *Computed[T] {
	return &Computed[T]{fn: fn}
}

// Get returns the cached value, recomputing it if any Writable has been
// written since the last computation.
func (c *Computed[T]) Get() T {
	now := epoch.Load()
	if c.valid && c.at == now {
		return c.value
	}
	v := c.fn()
	// A write during fn (which fn must not do) leaves the cache invalid.
	if epoch.Load() == now {
		c.value, c.at, c.valid = v, now, true
	}
	return v
}
