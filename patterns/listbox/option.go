package listbox

import (
	"github.com/google/uuid"

	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

// OptionInputs describe one option.
type OptionInputs[V comparable] struct {
	ID       string // default: a random uuid
	Value    V
	Label    string // typeahead and combobox text
	Disabled bool
	Element  events.Element
}

// Option is one listbox item. The listbox reads it; its owner may flip
// Disabled at any time.
type Option[V comparable] struct {
	id       string
	value    V
	label    string
	element  events.Element
	disabled *signal.Writable[bool]
}

// NewOption creates an option.
func NewOption[V comparable](in OptionInputs[V]) *Option[V] {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	return &Option[V]{
		id:       in.ID,
		value:    in.Value,
		label:    in.Label,
		element:  in.Element,
		disabled: signal.New(in.Disabled),
	}
}

func (o *Option[V]) ID() string              { return o.id }
func (o *Option[V]) Value() V                { return o.value }
func (o *Option[V]) Label() string           { return o.label }
func (o *Option[V]) SearchTerm() string      { return o.label }
func (o *Option[V]) Element() events.Element { return o.element }
func (o *Option[V]) Disabled() bool          { return o.disabled.Get() }
func (o *Option[V]) Selectable() bool        { return true }

// SetDisabled flips the option's disabled state.
func (o *Option[V]) SetDisabled(v bool) { o.disabled.Set(v) }
