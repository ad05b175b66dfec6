package signal

// batchContext tracks batch state for deferring subscriber execution.
type batchContext struct {
	depth        int
	pending      map[uint64]func()
	pendingOrder []uint64
}

var current = &batchContext{}

// pendingCall is one subscriber notification bound to the value it carries.
type pendingCall struct {
	id   uint64
	call func()
}

// enqueue records deferred notifications. It reports false when no batch is
// open and the caller must notify immediately.
func (b *batchContext) enqueue(calls []pendingCall) bool {
	if b.depth == 0 {
		return false
	}
	if b.pending == nil {
		b.pending = make(map[uint64]func())
	}
	for _, c := range calls {
		if _, seen := b.pending[c.id]; !seen {
			b.pendingOrder = append(b.pendingOrder, c.id)
		}
		// A later Set on the same cell overwrites the pending value.
		b.pending[c.id] = c.call
	}
	return true
}

// Batch runs fn and defers every subscriber notification triggered inside it
// until fn returns. A subscriber notified several times fires once, with the
// last value. Batches nest; only the outermost one flushes.
//
// Reads inside fn always see the latest writes; only subscribers are delayed,
// so they never observe a half-applied transition.
func Batch(fn func()) {
	current.depth++
	defer func() {
		current.depth--
		if current.depth > 0 {
			return
		}
		for len(current.pendingOrder) > 0 {
			order := current.pendingOrder
			pending := current.pending
			current.pendingOrder = nil
			current.pending = nil
			for _, id := range order {
				if call, ok := pending[id]; ok {
					call()
				}
			}
		}
	}()
	fn()
}
