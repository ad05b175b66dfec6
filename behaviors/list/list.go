package list

import (
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

// Options say what a navigation step does to the selection after the active
// item moved.
type Options struct {
	SelectOne   bool // replace the selection with the new active item
	Toggle      bool // flip the new active item
	ToggleOne   bool // flip the new active item, deselecting everything else
	SelectRange bool // extend the range from the anchor; never wraps
	KeepAnchor  bool // leave the range anchor where it was
}

func (o Options) any() bool {
	return o.SelectOne || o.Toggle || o.ToggleOne || o.SelectRange
}

// List composes focus, navigation, selection and typeahead over one set of
// inputs.
type List[V comparable, T Entry[V]] struct {
	in Inputs[V, T]

	Focus      *Focus[V, T]
	Navigation *Navigation[V, T]
	Selection  *Selection[V, T]
	Typeahead  *Typeahead[V, T]
}

// New builds a list over in. Missing writable cells are created, so callers
// that need to observe them must pass their own.
func New[V comparable, T Entry[V]](in Inputs[V, T]) *List[V, T] {
	in = in.withDefaults()
	focus := NewFocus(in)
	return &List[V, T]{
		in:         in,
		Focus:      focus,
		Navigation: NewNavigation(in, focus),
		Selection:  NewSelection(in, focus),
		Typeahead:  NewTypeahead(in, focus),
	}
}

// Inputs returns the resolved inputs.
func (l *List[V, T]) Inputs() Inputs[V, T] { return l.in }

// Items returns the current items.
func (l *List[V, T]) Items() []T { return l.in.Items.Get() }

// Values returns the selected values cell.
func (l *List[V, T]) Values() *signal.Writable[[]V] { return l.in.Values }

// ActiveItem returns the active item or the zero T.
func (l *List[V, T]) ActiveItem() T { return l.Focus.ActiveItem() }

// ActiveIndex returns the active item's index or -1.
func (l *List[V, T]) ActiveIndex() int { return l.Focus.ActiveIndex() }

// Disabled reports whether the whole list ignores interaction.
func (l *List[V, T]) Disabled() bool { return l.Focus.IsListDisabled() }

// Multi reports whether several values may be selected.
func (l *List[V, T]) Multi() bool { return l.in.Multi.Get() }

// IsFocusable reports whether item may become active.
func (l *List[V, T]) IsFocusable(item T) bool { return l.Focus.IsFocusable(item) }

// IsSelected reports whether item's value is selected.
func (l *List[V, T]) IsSelected(item T) bool { return l.Selection.IsSelected(item) }

// IsActive reports whether item is the active item.
func (l *List[V, T]) IsActive(item T) bool {
	var zero T
	return item != zero && l.Focus.ActiveItem() == item
}

// TabIndex is the container's tab index.
func (l *List[V, T]) TabIndex() int { return l.Focus.ListTabIndex() }

// ItemTabIndex is item's tab index.
func (l *List[V, T]) ItemTabIndex(item T) int { return l.Focus.ItemTabIndex(item) }

// ActiveDescendant is the active item's id in activedescendant mode.
func (l *List[V, T]) ActiveDescendant() string { return l.Focus.ActiveDescendant() }

// PrevKey is the key that moves backwards for the current orientation and
// text direction.
func (l *List[V, T]) PrevKey() string {
	if l.in.Orientation.Get() == Vertical {
		return events.KeyArrowUp
	}
	if l.in.TextDirection.Get() == RTL {
		return events.KeyArrowRight
	}
	return events.KeyArrowLeft
}

// NextKey is the key that moves forwards.
func (l *List[V, T]) NextKey() string {
	if l.in.Orientation.Get() == Vertical {
		return events.KeyArrowDown
	}
	if l.in.TextDirection.Get() == RTL {
		return events.KeyArrowLeft
	}
	return events.KeyArrowRight
}

// Next moves to the next focusable item.
func (l *List[V, T]) Next(opts Options) bool {
	return l.navigate(opts, func(wrap bool) bool { return l.Navigation.Next(wrap) })
}

// Prev moves to the previous focusable item.
func (l *List[V, T]) Prev(opts Options) bool {
	return l.navigate(opts, func(wrap bool) bool { return l.Navigation.Prev(wrap) })
}

// First moves to the first focusable item.
func (l *List[V, T]) First(opts Options) bool {
	return l.navigate(opts, func(bool) bool { return l.Navigation.First() })
}

// Last moves to the last focusable item.
func (l *List[V, T]) Last(opts Options) bool {
	return l.navigate(opts, func(bool) bool { return l.Navigation.Last() })
}

// Goto makes item active.
func (l *List[V, T]) Goto(item T, opts Options) bool {
	return l.navigate(opts, func(bool) bool { return l.Navigation.Goto(item) })
}

// Search feeds one typed character to typeahead.
func (l *List[V, T]) Search(char string, opts Options) bool {
	return l.navigate(opts, func(bool) bool { return l.Typeahead.Search(char) })
}

// IsTyping reports whether a typeahead buffer is live.
func (l *List[V, T]) IsTyping() bool { return l.Typeahead.IsTyping() }

// Select adds item (the active item when zero) and re-anchors on it.
func (l *List[V, T]) Select(item T) { l.Selection.Select(item, true) }

// Deselect removes item (the active item when zero).
func (l *List[V, T]) Deselect(item T) { l.Selection.Deselect(item) }

// Toggle flips item (the active item when zero).
func (l *List[V, T]) Toggle(item T) { l.Selection.Toggle(item) }

// ToggleOne flips the active item, deselecting everything else.
func (l *List[V, T]) ToggleOne() { l.Selection.ToggleOne() }

// SelectOne replaces the selection with the active item.
func (l *List[V, T]) SelectOne() { l.Selection.SelectOne() }

// SelectAll selects every selectable item in multi mode.
func (l *List[V, T]) SelectAll() { l.Selection.SelectAll() }

// DeselectAll clears the selection.
func (l *List[V, T]) DeselectAll() { l.Selection.DeselectAll() }

// ToggleAll selects all, or deselects all when everything is selected.
func (l *List[V, T]) ToggleAll() { l.Selection.ToggleAll() }

// SelectRange selects from the anchor to the active item.
func (l *List[V, T]) SelectRange() { l.Selection.SelectRange() }

// Anchor pins the range anchor at index.
func (l *List[V, T]) Anchor(index int) { l.Selection.BeginRangeSelection(index) }

// UpdateSelection applies opts to the current active item.
func (l *List[V, T]) UpdateSelection(opts Options) {
	if opts.KeepAnchor {
		start, end := l.Selection.rangeStart.Get(), l.Selection.rangeEnd.Get()
		defer func() {
			l.Selection.rangeStart.Set(start)
			l.Selection.rangeEnd.Set(end)
		}()
	}
	switch {
	case opts.Toggle:
		l.Selection.Toggle(l.ActiveItem())
	case opts.ToggleOne:
		l.Selection.ToggleOne()
	case opts.SelectOne:
		l.Selection.SelectOne()
	case opts.SelectRange:
		l.Selection.SelectRange()
	}
	if (opts.Toggle || opts.ToggleOne || opts.SelectOne) && !opts.KeepAnchor {
		l.Anchor(l.ActiveIndex())
	}
}

func (l *List[V, T]) navigate(opts Options, op func(wrap bool) bool) bool {
	if l.Disabled() {
		return false
	}
	wrap := l.in.Wrap.Get() && !opts.SelectRange
	var moved bool
	signal.Batch(func() {
		moved = op(wrap)
		if moved && opts.any() {
			l.UpdateSelection(opts)
		}
	})
	return moved
}
