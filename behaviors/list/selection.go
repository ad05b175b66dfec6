package list

import (
	"github.com/jask/ariakit/signal"
)

// Selection writes the selected values cell.
type Selection[V comparable, T Entry[V]] struct {
	in    Inputs[V, T]
	focus *Focus[V, T]

	// rangeStart is the anchor of the range being extended; rangeEnd is where
	// the previous range step ended.
	rangeStart *signal.Writable[int]
	rangeEnd   *signal.Writable[int]
}

// NewSelection creates the selection behavior.
func NewSelection[V comparable, T Entry[V]](in Inputs[V, T], focus *Focus[V, T]) *Selection[V, T] {
	return &Selection[V, T]{
		in:         in.withDefaults(),
		focus:      focus,
		rangeStart: signal.New(0),
		rangeEnd:   signal.New(0),
	}
}

// IsSelectable reports whether item may enter or leave the selection.
// Disabled items never can, soft-disabled or not.
func (s *Selection[V, T]) IsSelectable(item T) bool {
	var zero T
	if item == zero || s.in.Disabled.Get() {
		return false
	}
	return !item.Disabled() && item.Selectable()
}

// IsSelected reports whether item's value is selected.
func (s *Selection[V, T]) IsSelected(item T) bool {
	var zero T
	if item == zero {
		return false
	}
	return containsValue(s.in.Values.Get(), item.Value())
}

func (s *Selection[V, T]) orActive(item T) T {
	var zero T
	if item == zero {
		return s.focus.ActiveItem()
	}
	return item
}

// Select adds item (the active item when zero) to the selection. In single
// mode it replaces the selection. anchor moves the range anchor to item.
func (s *Selection[V, T]) Select(item T, anchor bool) {
	item = s.orActive(item)
	if !s.IsSelectable(item) {
		return
	}
	v := item.Value()
	if !s.in.Multi.Get() {
		s.in.Values.Set([]V{v})
	} else if !containsValue(s.in.Values.Get(), v) {
		values := append(append([]V(nil), s.in.Values.Get()...), v)
		s.in.Values.Set(values)
	}
	if anchor {
		s.BeginRangeSelection(indexOf[V](s.in.Items.Get(), item))
	}
}

// Deselect removes item (the active item when zero) from the selection.
func (s *Selection[V, T]) Deselect(item T) {
	item = s.orActive(item)
	if !s.IsSelectable(item) || !s.IsSelected(item) {
		return
	}
	v := item.Value()
	var out []V
	for _, x := range s.in.Values.Get() {
		if x != v {
			out = append(out, x)
		}
	}
	s.in.Values.Set(out)
}

// Toggle flips item's (or the active item's) membership.
func (s *Selection[V, T]) Toggle(item T) {
	item = s.orActive(item)
	if s.IsSelected(item) {
		s.Deselect(item)
		return
	}
	s.Select(item, true)
}

// ToggleOne deselects the active item when selected, otherwise makes it the
// only selected item.
func (s *Selection[V, T]) ToggleOne() {
	item := s.focus.ActiveItem()
	if s.IsSelected(item) {
		s.Deselect(item)
		return
	}
	s.SelectOne()
}

// SelectOne replaces the selection with the active item.
func (s *Selection[V, T]) SelectOne() {
	item := s.focus.ActiveItem()
	if !s.IsSelectable(item) {
		return
	}
	if s.in.Multi.Get() {
		s.DeselectAll()
	}
	s.Select(item, true)
}

// SelectAll selects every selectable item in multi mode.
func (s *Selection[V, T]) SelectAll() {
	if !s.in.Multi.Get() {
		return
	}
	for _, it := range s.in.Items.Get() {
		s.Select(it, false)
	}
}

// DeselectAll clears the selection. Values of disabled items stay selected
// since they cannot be changed; values with no matching item are dropped.
func (s *Selection[V, T]) DeselectAll() {
	items := s.in.Items.Get()
	var keep []V
	for _, v := range s.in.Values.Get() {
		for _, it := range items {
			if it.Value() == v && !s.IsSelectable(it) {
				keep = append(keep, v)
				break
			}
		}
	}
	if len(keep) == 0 && len(s.in.Values.Get()) == 0 {
		return
	}
	s.in.Values.Set(keep)
}

// ToggleAll selects every selectable item, or deselects all of them when
// they are all selected already.
func (s *Selection[V, T]) ToggleAll() {
	any := false
	for _, it := range s.in.Items.Get() {
		if !s.IsSelectable(it) {
			continue
		}
		any = true
		if !s.IsSelected(it) {
			s.SelectAll()
			return
		}
	}
	if any {
		s.DeselectAll()
	}
}

// BeginRangeSelection pins the range anchor at index.
func (s *Selection[V, T]) BeginRangeSelection(index int) {
	if index < 0 {
		return
	}
	s.rangeStart.Set(index)
	s.rangeEnd.Set(index)
}

// RangeAnchor returns the index ranges are extended from.
func (s *Selection[V, T]) RangeAnchor() int { return s.rangeStart.Get() }

// SelectRange selects the closed interval between the range anchor and the
// active item, and deselects the part of the previous interval that falls
// outside the new one.
func (s *Selection[V, T]) SelectRange() {
	if !s.in.Multi.Get() {
		return
	}
	items := s.in.Items.Get()
	active := s.focus.ActiveIndex()
	if active < 0 || len(items) == 0 {
		return
	}
	start := clamp(s.rangeStart.Get(), 0, len(items)-1)
	end := clamp(s.rangeEnd.Get(), 0, len(items)-1)

	inLo, inHi := minMax(start, active)
	oldLo, oldHi := minMax(start, end)
	for i := oldLo; i <= oldHi; i++ {
		if i < inLo || i > inHi {
			s.Deselect(items[i])
		}
	}
	for i := inLo; i <= inHi; i++ {
		s.Select(items[i], false)
	}
	s.rangeEnd.Set(active)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
