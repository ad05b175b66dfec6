package tree

import (
	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/events"
)

// ExpandKey opens the active item or moves into it.
func (t *Tree[V]) ExpandKey() string {
	if t.orientation.Get() == list.Horizontal {
		return events.KeyArrowDown
	}
	if t.textDirection.Get() == list.RTL {
		return events.KeyArrowLeft
	}
	return events.KeyArrowRight
}

// CollapseKey closes the active item or moves to its parent.
func (t *Tree[V]) CollapseKey() string {
	if t.orientation.Get() == list.Horizontal {
		return events.KeyArrowUp
	}
	if t.textDirection.Get() == list.RTL {
		return events.KeyArrowRight
	}
	return events.KeyArrowLeft
}

func (t *Tree[V]) followFocus() bool {
	return t.selectionMode.Get() == list.Follow
}

// ExpandActive expands the collapsed active item, or moves to its first
// focusable child when it is already open.
func (t *Tree[V]) ExpandActive(opts list.Options) {
	it := t.List.ActiveItem()
	if it == nil || !t.IsExpandable(it) {
		return
	}
	if !t.IsExpanded(it) {
		t.Expand(it)
		return
	}
	for _, c := range t.Children(it) {
		if t.List.IsFocusable(c) {
			t.List.Goto(c, opts)
			return
		}
	}
}

// CollapseActive collapses the open active item, or moves to its parent.
func (t *Tree[V]) CollapseActive(opts list.Options) {
	it := t.List.ActiveItem()
	if it == nil {
		return
	}
	if t.IsExpanded(it) {
		t.Collapse(it)
		return
	}
	if p := t.Parent(it); p != nil {
		t.List.Goto(p, opts)
	}
}

// Keydown builds the key rules for the current state.
func (t *Tree[V]) Keydown() *events.KeyboardEventManager {
	l := t.List
	m := events.NewKeyboardEventManager()
	multi := l.Multi()
	follow := t.followFocus()
	step := list.Options{SelectOne: follow}

	if l.IsTyping() {
		m.On(events.Key(events.KeySpace), func(*events.KeyboardEvent) { l.Search(" ", step) })
	}

	m.On(events.Key(l.PrevKey()), func(*events.KeyboardEvent) { l.Prev(step) }).
		On(events.Key(l.NextKey()), func(*events.KeyboardEvent) { l.Next(step) }).
		On(events.Key(events.KeyHome), func(*events.KeyboardEvent) { l.First(step) }).
		On(events.Key(events.KeyEnd), func(*events.KeyboardEvent) { l.Last(step) }).
		On(events.Key(t.ExpandKey()), func(*events.KeyboardEvent) { t.ExpandActive(step) }).
		On(events.Key(t.CollapseKey()), func(*events.KeyboardEvent) { t.CollapseActive(step) }).
		On(events.Key("*").With(events.ModNone, events.ModShift), func(*events.KeyboardEvent) { t.ExpandSiblings(l.ActiveItem()) })

	if multi {
		rng := list.Options{SelectRange: true}
		m.On(events.Key(events.KeyShift).AnyModifier(), func(*events.KeyboardEvent) { l.Anchor(l.ActiveIndex()) }, events.AllowDefault()).
			On(events.Key(l.PrevKey()).With(events.ModShift), func(*events.KeyboardEvent) { l.Prev(rng) }).
			On(events.Key(l.NextKey()).With(events.ModShift), func(*events.KeyboardEvent) { l.Next(rng) }).
			On(events.Key(events.KeyHome).With(events.Primary(events.ModShift)...), func(*events.KeyboardEvent) { l.First(rng) }).
			On(events.Key(events.KeyEnd).With(events.Primary(events.ModShift)...), func(*events.KeyboardEvent) { l.Last(rng) }).
			On(events.Key(events.KeyEnter).With(events.ModShift), func(*events.KeyboardEvent) { l.SelectRange() }).
			On(events.Key(events.KeySpace).With(events.ModShift), func(*events.KeyboardEvent) { l.SelectRange() })
	}

	switch {
	case !multi && !follow:
		m.On(events.Key(events.KeySpace), func(*events.KeyboardEvent) { l.SelectOne() }).
			On(events.Key(events.KeyEnter), func(*events.KeyboardEvent) { l.SelectOne() })
	case multi && !follow:
		m.On(events.Key(events.KeySpace), func(*events.KeyboardEvent) { l.Toggle(nil) }).
			On(events.Key(events.KeyEnter), func(*events.KeyboardEvent) { l.Toggle(nil) }).
			On(events.Key("a").With(events.Primary(0)...), func(*events.KeyboardEvent) { l.ToggleAll() })
	case multi && follow:
		m.On(events.Key(l.PrevKey()).With(events.Primary(0)...), func(*events.KeyboardEvent) { l.Prev(list.Options{}) }).
			On(events.Key(l.NextKey()).With(events.Primary(0)...), func(*events.KeyboardEvent) { l.Next(list.Options{}) }).
			On(events.Key(t.ExpandKey()).With(events.Primary(0)...), func(*events.KeyboardEvent) { t.ExpandActive(list.Options{}) }).
			On(events.Key(t.CollapseKey()).With(events.Primary(0)...), func(*events.KeyboardEvent) { t.CollapseActive(list.Options{}) }).
			On(events.Key(events.KeySpace).With(events.Primary(0)...), func(*events.KeyboardEvent) { l.Toggle(nil) }).
			On(events.Key(events.KeyEnter).With(events.Primary(0)...), func(*events.KeyboardEvent) { l.Toggle(nil) }).
			On(events.Key("a").With(events.Primary(0)...), func(*events.KeyboardEvent) {
				l.ToggleAll()
				l.Select(nil)
			})
	}

	m.On(events.Printable.With(events.ModNone, events.ModShift), func(e *events.KeyboardEvent) { l.Search(e.Key, step) })
	return m
}

// ItemFor returns the item whose element is or contains target.
func (t *Tree[V]) ItemFor(target events.Element) *Item[V] {
	var best *Item[V]
	for _, it := range t.allItems.Get() {
		if events.SameElement(it.Element(), target) {
			return it
		}
		if best == nil && events.Within(it.Element(), target) {
			best = it
		}
	}
	return best
}

// Pointerdown builds the pointer rules for the current state. Every press
// that lands on an item also toggles its expansion.
func (t *Tree[V]) Pointerdown() *events.PointerEventManager {
	l := t.List
	m := events.NewPointerEventManager()
	gotoTarget := func(opts list.Options) func(*events.PointerEvent) {
		return func(e *events.PointerEvent) {
			it := t.ItemFor(e.Target)
			if it == nil || !t.IsVisible(it) {
				return
			}
			l.Goto(it, opts)
			t.ToggleExpansion(it)
		}
	}

	if multi := l.Multi(); !multi {
		m.On(events.Pointer().AnyModifier(), gotoTarget(list.Options{SelectOne: true}))
		return m
	}
	m.On(events.Pointer().With(events.ModShift), gotoTarget(list.Options{SelectRange: true}))
	if t.followFocus() {
		m.On(events.Pointer(), gotoTarget(list.Options{SelectOne: true})).
			On(events.Pointer().With(events.Primary(0)...), gotoTarget(list.Options{Toggle: true}))
	} else {
		m.On(events.Pointer().AnyModifier(), gotoTarget(list.Options{Toggle: true}))
	}
	return m
}

// OnKeydown routes a key press.
func (t *Tree[V]) OnKeydown(e *events.KeyboardEvent) {
	if t.List.Disabled() {
		return
	}
	t.Keydown().Handle(e)
}

// OnPointerdown routes a pointer press.
func (t *Tree[V]) OnPointerdown(e *events.PointerEvent) {
	if t.List.Disabled() {
		return
	}
	t.Pointerdown().Handle(e)
}
