// Package list implements the generic navigation and selection engine shared
// by listbox, tree, menu and combobox popups.
//
// A List is parameterized over the value type V and the item type T. Items
// are owned by the caller; the list only reads them and writes the active
// item, selected values and anchor cells it is given.
//
// The engine is split into four cooperating behaviors:
//   - Focus: which item is active and how tab stops are assigned
//   - Navigation: moving the active item over focusable items
//   - Selection: single, multi, toggle and anchor-based range selection
//   - Typeahead: timed incremental search by text
package list

import (
	"time"

	"github.com/jask/ariakit/clock"
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

// Item is the capability set the list needs from an item.
type Item[V comparable] interface {
	ID() string
	Value() V
	Disabled() bool
	Selectable() bool
	SearchTerm() string
	Element() events.Element
}

// Entry constrains list type parameters to comparable items, which is what
// pointer-backed item types give for free. The zero value means "no item".
type Entry[V comparable] interface {
	comparable
	Item[V]
}

// FocusMode selects the tab stop strategy.
type FocusMode int

const (
	// Roving moves keyboard focus between items; one item is tabbable.
	Roving FocusMode = iota
	// ActiveDescendant keeps focus on the container and reports the active
	// item's id instead.
	ActiveDescendant
)

func (m FocusMode) String() string {
	if m == ActiveDescendant {
		return "activedescendant"
	}
	return "roving"
}

// Orientation is the axis items are laid out on.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// TextDirection affects horizontal key mapping only.
type TextDirection int

const (
	LTR TextDirection = iota
	RTL
)

func (d TextDirection) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// DefaultTypeaheadDelay is how long the typeahead buffer survives without a
// new character.
const DefaultTypeaheadDelay = 500 * time.Millisecond

// Inputs are the cells a List reads and writes. Nil read cells fall back to
// defaults; nil writable cells are created.
type Inputs[V comparable, T Entry[V]] struct {
	Items      signal.Signal[[]T]
	ActiveItem *signal.Writable[T]
	Values     *signal.Writable[[]V]

	Multi          signal.Signal[bool]          // default false
	Wrap           signal.Signal[bool]          // default true
	Disabled       signal.Signal[bool]          // default false
	SoftDisabled   signal.Signal[bool]          // default true
	FocusMode      signal.Signal[FocusMode]     // default Roving
	Orientation    signal.Signal[Orientation]   // default Vertical
	TextDirection  signal.Signal[TextDirection] // default LTR
	TypeaheadDelay signal.Signal[time.Duration] // default DefaultTypeaheadDelay

	Clock clock.Clock // default clock.Real()
}

func (in Inputs[V, T]) withDefaults() Inputs[V, T] {
	if in.Items == nil {
		in.Items = signal.Const[[]T](nil)
	}
	if in.ActiveItem == nil {
		var zero T
		in.ActiveItem = signal.New(zero)
	}
	if in.Values == nil {
		in.Values = signal.New[[]V](nil)
	}
	in.Multi = signal.Or(in.Multi, false)
	in.Wrap = signal.Or(in.Wrap, true)
	in.Disabled = signal.Or(in.Disabled, false)
	in.SoftDisabled = signal.Or(in.SoftDisabled, true)
	in.FocusMode = signal.Or(in.FocusMode, Roving)
	in.Orientation = signal.Or(in.Orientation, Vertical)
	in.TextDirection = signal.Or(in.TextDirection, LTR)
	in.TypeaheadDelay = signal.Or(in.TypeaheadDelay, DefaultTypeaheadDelay)
	if in.Clock == nil {
		in.Clock = clock.Real()
	}
	return in
}

func indexOf[V comparable, T Entry[V]](items []T, item T) int {
	var zero T
	if item == zero {
		return -1
	}
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}

func containsValue[V comparable](values []V, v V) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// SelectionMode says whether selection follows the active item.
type SelectionMode int

const (
	// Follow selects the item navigation lands on.
	Follow SelectionMode = iota
	// Explicit selects only on Space, Enter or click.
	Explicit
)

func (m SelectionMode) String() string {
	if m == Explicit {
		return "explicit"
	}
	return "follow"
}
