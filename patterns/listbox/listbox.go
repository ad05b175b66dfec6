// Package listbox implements the listbox pattern: a flat list of options
// with orientation-aware navigation, typeahead and single or multiple
// selection.
package listbox

import (
	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

// Inputs configure a listbox. The embedded list inputs carry items, the
// active option, selected values and the shared behavior switches.
type Inputs[V comparable] struct {
	list.Inputs[V, *Option[V]]

	ID            string
	Readonly      signal.Signal[bool]               // default false
	SelectionMode signal.Signal[list.SelectionMode] // default list.Follow
}

// Listbox is the listbox pattern.
type Listbox[V comparable] struct {
	id            string
	readonly      signal.Signal[bool]
	selectionMode signal.Signal[list.SelectionMode]

	List *list.List[V, *Option[V]]
}

// New creates a listbox.
func New[V comparable](in Inputs[V]) *Listbox[V] {
	return &Listbox[V]{
		id:            in.ID,
		readonly:      signal.Or(in.Readonly, false),
		selectionMode: signal.Or(in.SelectionMode, list.Follow),
		List:          list.New(in.Inputs),
	}
}

func (lb *Listbox[V]) ID() string { return lb.id }

// Options returns the current options.
func (lb *Listbox[V]) Options() []*Option[V] { return lb.List.Items() }

// Values returns the selected values cell.
func (lb *Listbox[V]) Values() *signal.Writable[[]V] { return lb.List.Values() }

func (lb *Listbox[V]) followFocus() bool {
	return lb.selectionMode.Get() == list.Follow
}

// IsSelected reports aria-selected for o.
func (lb *Listbox[V]) IsSelected(o *Option[V]) bool { return lb.List.IsSelected(o) }

// IsActive reports whether o is the active option.
func (lb *Listbox[V]) IsActive(o *Option[V]) bool { return lb.List.IsActive(o) }

// TabIndex is the container's tab index.
func (lb *Listbox[V]) TabIndex() int { return lb.List.TabIndex() }

// OptionTabIndex is o's tab index.
func (lb *Listbox[V]) OptionTabIndex(o *Option[V]) int { return lb.List.ItemTabIndex(o) }

// ActiveDescendant is the active option id in activedescendant mode.
func (lb *Listbox[V]) ActiveDescendant() string { return lb.List.ActiveDescendant() }

// SetSize is the number of options.
func (lb *Listbox[V]) SetSize() int { return len(lb.Options()) }

// PosInSet is o's 1-based position, or 0 when o is not an option.
func (lb *Listbox[V]) PosInSet(o *Option[V]) int {
	for i, x := range lb.Options() {
		if x == o {
			return i + 1
		}
	}
	return 0
}

// SetDefaultState picks the initial active option: the first selected
// focusable option, otherwise the first focusable one.
func (lb *Listbox[V]) SetDefaultState() {
	if lb.List.ActiveItem() != nil {
		return
	}
	var first *Option[V]
	for _, o := range lb.Options() {
		if !lb.List.IsFocusable(o) {
			continue
		}
		if first == nil {
			first = o
		}
		if lb.IsSelected(o) {
			lb.List.Inputs().ActiveItem.Set(o)
			return
		}
	}
	if first != nil {
		lb.List.Inputs().ActiveItem.Set(first)
	}
}

// OptionFor returns the option whose element is or contains target.
func (lb *Listbox[V]) OptionFor(target events.Element) *Option[V] {
	for _, o := range lb.Options() {
		if events.Within(o.Element(), target) {
			return o
		}
	}
	return nil
}

// Keydown builds the key rules for the current state.
func (lb *Listbox[V]) Keydown() *events.KeyboardEventManager {
	l := lb.List
	m := events.NewKeyboardEventManager()
	multi := l.Multi()
	follow := lb.followFocus()
	readonly := lb.readonly.Get()

	// In follow mode the selection moves with every plain step.
	step := list.Options{SelectOne: follow && !readonly}

	if l.IsTyping() {
		m.On(events.Key(events.KeySpace), func(*events.KeyboardEvent) { l.Search(" ", step) })
	}

	m.On(events.Key(l.PrevKey()), func(*events.KeyboardEvent) { l.Prev(step) }).
		On(events.Key(l.NextKey()), func(*events.KeyboardEvent) { l.Next(step) }).
		On(events.Key(events.KeyHome), func(*events.KeyboardEvent) { l.First(step) }).
		On(events.Key(events.KeyEnd), func(*events.KeyboardEvent) { l.Last(step) })

	if readonly {
		m.On(events.Printable.With(events.ModNone, events.ModShift), func(e *events.KeyboardEvent) { l.Search(e.Key, list.Options{}) })
		return m
	}

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

// Pointerdown builds the pointer rules for the current state.
func (lb *Listbox[V]) Pointerdown() *events.PointerEventManager {
	l := lb.List
	m := events.NewPointerEventManager()
	gotoTarget := func(opts list.Options) func(*events.PointerEvent) {
		return func(e *events.PointerEvent) {
			if o := lb.OptionFor(e.Target); o != nil {
				l.Goto(o, opts)
			}
		}
	}

	if lb.readonly.Get() {
		m.On(events.Pointer().AnyModifier(), gotoTarget(list.Options{}))
		return m
	}
	if !l.Multi() {
		m.On(events.Pointer().AnyModifier(), gotoTarget(list.Options{SelectOne: true}))
		return m
	}

	m.On(events.Pointer().With(events.ModShift), gotoTarget(list.Options{SelectRange: true}))
	if lb.followFocus() {
		m.On(events.Pointer(), gotoTarget(list.Options{SelectOne: true})).
			On(events.Pointer().With(events.Primary(0)...), gotoTarget(list.Options{Toggle: true}))
	} else {
		m.On(events.Pointer().AnyModifier(), gotoTarget(list.Options{Toggle: true}))
	}
	return m
}

// OnKeydown routes a key press.
func (lb *Listbox[V]) OnKeydown(e *events.KeyboardEvent) {
	if lb.List.Disabled() {
		return
	}
	lb.Keydown().Handle(e)
}

// OnPointerdown routes a pointer press.
func (lb *Listbox[V]) OnPointerdown(e *events.PointerEvent) {
	if lb.List.Disabled() {
		return
	}
	lb.Pointerdown().Handle(e)
}
