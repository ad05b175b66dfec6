package list

import (
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

// Focus tracks the active item and derives tab stops.
type Focus[V comparable, T Entry[V]] struct {
	in        Inputs[V, T]
	prevIndex *signal.Writable[int]
}

// NewFocus creates the focus behavior over in.
func NewFocus[V comparable, T Entry[V]](in Inputs[V, T]) *Focus[V, T] {
	return &Focus[V, T]{in: in.withDefaults(), prevIndex: signal.New(-1)}
}

// ActiveItem returns the active item, or the zero T when the stored item is
// absent or no longer part of the list.
func (f *Focus[V, T]) ActiveItem() T {
	var zero T
	item := f.in.ActiveItem.Get()
	if indexOf[V](f.in.Items.Get(), item) < 0 {
		return zero
	}
	return item
}

// ActiveIndex returns the index of the active item, or -1.
func (f *Focus[V, T]) ActiveIndex() int {
	return indexOf[V](f.in.Items.Get(), f.in.ActiveItem.Get())
}

// PreviousActiveIndex returns the index that was active before the last move.
func (f *Focus[V, T]) PreviousActiveIndex() int { return f.prevIndex.Get() }

// IsFocusable reports whether item may become active.
func (f *Focus[V, T]) IsFocusable(item T) bool {
	var zero T
	if item == zero {
		return false
	}
	return !item.Disabled() || f.in.SoftDisabled.Get()
}

// IsListDisabled reports whether the whole list ignores interaction: it is
// disabled, empty, or every item is disabled.
func (f *Focus[V, T]) IsListDisabled() bool {
	if f.in.Disabled.Get() {
		return true
	}
	for _, it := range f.in.Items.Get() {
		if !it.Disabled() {
			return false
		}
	}
	return true
}

// FirstFocusable returns the first focusable item or the zero T.
func (f *Focus[V, T]) FirstFocusable() T {
	var zero T
	for _, it := range f.in.Items.Get() {
		if f.IsFocusable(it) {
			return it
		}
	}
	return zero
}

// ActiveDescendant returns the active item's id in activedescendant mode.
func (f *Focus[V, T]) ActiveDescendant() string {
	if f.in.FocusMode.Get() != ActiveDescendant {
		return ""
	}
	var zero T
	if item := f.ActiveItem(); item != zero {
		return item.ID()
	}
	return ""
}

// ListTabIndex is the container's tab index.
func (f *Focus[V, T]) ListTabIndex() int {
	if f.IsListDisabled() {
		return 0
	}
	if f.in.FocusMode.Get() == ActiveDescendant {
		return 0
	}
	return -1
}

// ItemTabIndex is item's tab index. In roving mode exactly one item, the
// active one or else the first focusable one, is tabbable.
func (f *Focus[V, T]) ItemTabIndex(item T) int {
	if f.IsListDisabled() || f.in.FocusMode.Get() == ActiveDescendant {
		return -1
	}
	var zero T
	stop := f.ActiveItem()
	if stop == zero {
		stop = f.FirstFocusable()
	}
	if stop != zero && stop == item {
		return 0
	}
	return -1
}

// Focus makes item active. In roving mode the item's element receives
// keyboard focus when it supports it.
func (f *Focus[V, T]) Focus(item T) bool {
	if f.IsListDisabled() || !f.IsFocusable(item) {
		return false
	}
	if indexOf[V](f.in.Items.Get(), item) < 0 {
		return false
	}
	f.prevIndex.Set(f.ActiveIndex())
	f.in.ActiveItem.Set(item)
	if f.in.FocusMode.Get() == Roving {
		if el, ok := item.Element().(events.Focusable); ok {
			el.Focus()
		}
	}
	return true
}

// Unfocus clears the active item.
func (f *Focus[V, T]) Unfocus() {
	var zero T
	f.prevIndex.Set(f.ActiveIndex())
	f.in.ActiveItem.Set(zero)
}
