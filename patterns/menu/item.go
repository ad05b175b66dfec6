package menu

import (
	"github.com/google/uuid"

	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

// ItemInputs describe one menu item.
type ItemInputs[V comparable] struct {
	ID       string // default: a random uuid
	Value    V
	Text     string
	Disabled bool
	Element  events.Element
	Submenu  *Menu[V]
}

// Item is a menu or menubar item. An item owns its submenu; the submenu
// refers back to the item by id only.
type Item[V comparable] struct {
	id       string
	value    V
	text     string
	disabled *signal.Writable[bool]
	element  events.Element
	submenu  *Menu[V]
}

// NewItem creates an item.
func NewItem[V comparable](in ItemInputs[V]) *Item[V] {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	it := &Item[V]{
		id:       in.ID,
		value:    in.Value,
		text:     in.Text,
		disabled: signal.New(in.Disabled),
		element:  in.Element,
		submenu:  in.Submenu,
	}
	if it.submenu != nil {
		it.submenu.parentID = it.id
	}
	return it
}

func (i *Item[V]) ID() string              { return i.id }
func (i *Item[V]) Value() V                { return i.value }
func (i *Item[V]) Text() string            { return i.text }
func (i *Item[V]) SearchTerm() string      { return i.text }
func (i *Item[V]) Element() events.Element { return i.element }
func (i *Item[V]) Disabled() bool          { return i.disabled.Get() }

// Selectable is always false: menus activate items, they never select them.
func (i *Item[V]) Selectable() bool { return false }

// Submenu returns the owned submenu or nil.
func (i *Item[V]) Submenu() *Menu[V] { return i.submenu }

// HasPopup reports aria-haspopup.
func (i *Item[V]) HasPopup() bool { return i.submenu != nil }

// SetDisabled flips the item's disabled state.
func (i *Item[V]) SetDisabled(v bool) { i.disabled.Set(v) }
