package tree

import (
	"github.com/google/uuid"

	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

// ItemInputs describe one tree item.
type ItemInputs[V comparable] struct {
	ID         string // default: a random uuid
	ParentID   string // "" for top-level items
	Value      V
	Text       string
	Disabled   bool
	Selectable signal.Signal[bool] // default true
	// HasChildren marks an item expandable before its children are known.
	HasChildren bool
	Element     events.Element
}

// Item is one node of the flat, document-ordered item array a tree reads.
// Relationships are ids; the tree resolves them.
type Item[V comparable] struct {
	id          string
	parentID    string
	value       V
	text        string
	disabled    *signal.Writable[bool]
	selectable  signal.Signal[bool]
	hasChildren bool
	element     events.Element
}

// NewItem creates an item.
func NewItem[V comparable](in ItemInputs[V]) *Item[V] {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	return &Item[V]{
		id:          in.ID,
		parentID:    in.ParentID,
		value:       in.Value,
		text:        in.Text,
		disabled:    signal.New(in.Disabled),
		selectable:  signal.Or(in.Selectable, true),
		hasChildren: in.HasChildren,
		element:     in.Element,
	}
}

func (i *Item[V]) ID() string              { return i.id }
func (i *Item[V]) ParentID() string        { return i.parentID }
func (i *Item[V]) Value() V                { return i.value }
func (i *Item[V]) Text() string            { return i.text }
func (i *Item[V]) SearchTerm() string      { return i.text }
func (i *Item[V]) Element() events.Element { return i.element }
func (i *Item[V]) Disabled() bool          { return i.disabled.Get() }
func (i *Item[V]) Selectable() bool        { return i.selectable.Get() }

// SetDisabled flips the item's disabled state.
func (i *Item[V]) SetDisabled(v bool) { i.disabled.Set(v) }
