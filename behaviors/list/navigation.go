package list

// Navigation moves the active item over focusable items.
type Navigation[V comparable, T Entry[V]] struct {
	in    Inputs[V, T]
	focus *Focus[V, T]
}

// NewNavigation creates the navigation behavior.
func NewNavigation[V comparable, T Entry[V]](in Inputs[V, T], focus *Focus[V, T]) *Navigation[V, T] {
	return &Navigation[V, T]{in: in.withDefaults(), focus: focus}
}

// Goto makes item active.
func (n *Navigation[V, T]) Goto(item T) bool {
	return n.focus.Focus(item)
}

// Next moves to the next focusable item.
func (n *Navigation[V, T]) Next(wrap bool) bool { return n.advance(1, wrap) }

// Prev moves to the previous focusable item.
func (n *Navigation[V, T]) Prev(wrap bool) bool { return n.advance(-1, wrap) }

// First moves to the first focusable item.
func (n *Navigation[V, T]) First() bool {
	for _, it := range n.in.Items.Get() {
		if n.focus.IsFocusable(it) {
			return n.Goto(it)
		}
	}
	return false
}

// Last moves to the last focusable item.
func (n *Navigation[V, T]) Last() bool {
	items := n.in.Items.Get()
	for i := len(items) - 1; i >= 0; i-- {
		if n.focus.IsFocusable(items[i]) {
			return n.Goto(items[i])
		}
	}
	return false
}

// Peek returns the item Next or Prev would land on, without moving.
func (n *Navigation[V, T]) Peek(delta int, wrap bool) (T, bool) {
	var zero T
	items := n.in.Items.Get()
	count := len(items)
	if count == 0 || delta == 0 {
		return zero, false
	}
	active := n.focus.ActiveIndex()
	idx := active
	if idx < 0 {
		if delta > 0 {
			idx = -1
		} else {
			idx = count
		}
	}
	for step := 0; step < count; step++ {
		next := idx + delta
		if wrap {
			next = ((next % count) + count) % count
		} else if next < 0 || next >= count {
			return zero, false
		}
		idx = next
		if idx == active {
			return zero, false
		}
		if n.focus.IsFocusable(items[idx]) {
			return items[idx], true
		}
	}
	return zero, false
}

func (n *Navigation[V, T]) advance(delta int, wrap bool) bool {
	item, ok := n.Peek(delta, wrap)
	if !ok {
		return false
	}
	return n.Goto(item)
}
