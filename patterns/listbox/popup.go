package listbox

import (
	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/patterns/combobox"
)

// Popup adapts the listbox to the combobox popup interface.
func (lb *Listbox[V]) Popup() combobox.Popup[V] { return popup[V]{lb} }

type popup[V comparable] struct{ lb *Listbox[V] }

var _ combobox.Popup[string] = popup[string]{}

func snapshot[V comparable](o *Option[V]) combobox.Item[V] {
	return combobox.Item[V]{ID: o.ID(), Value: o.Value(), SearchTerm: o.SearchTerm(), Disabled: o.Disabled()}
}

func (p popup[V]) find(id string) *Option[V] {
	for _, o := range p.lb.Options() {
		if o.ID() == id {
			return o
		}
	}
	return nil
}

func (p popup[V]) ID() string { return p.lb.ID() }

func (p popup[V]) Items() []combobox.Item[V] {
	opts := p.lb.Options()
	out := make([]combobox.Item[V], len(opts))
	for i, o := range opts {
		out[i] = snapshot(o)
	}
	return out
}

func (p popup[V]) ActiveID() string {
	if o := p.lb.List.ActiveItem(); o != nil {
		return o.ID()
	}
	return ""
}

func (p popup[V]) Focus(id string) {
	if o := p.find(id); o != nil {
		p.lb.List.Goto(o, list.Options{})
	}
}

func (p popup[V]) Next()    { p.lb.List.Next(list.Options{}) }
func (p popup[V]) Prev()    { p.lb.List.Prev(list.Options{}) }
func (p popup[V]) First()   { p.lb.List.First(list.Options{}) }
func (p popup[V]) Last()    { p.lb.List.Last(list.Options{}) }
func (p popup[V]) Unfocus() { p.lb.List.Focus.Unfocus() }

func (p popup[V]) Select(id string) {
	if id == "" {
		p.lb.List.Select(nil)
		return
	}
	if o := p.find(id); o != nil {
		p.lb.List.Select(o)
	}
}

func (p popup[V]) ClearSelection() { p.lb.Values().Set(nil) }

func (p popup[V]) GetItem(e *events.PointerEvent) (combobox.Item[V], bool) {
	if o := p.lb.OptionFor(e.Target); o != nil {
		return snapshot(o), true
	}
	return combobox.Item[V]{}, false
}

func (p popup[V]) SelectedItem() (combobox.Item[V], bool) {
	values := p.lb.Values().Get()
	if len(values) == 0 {
		return combobox.Item[V]{}, false
	}
	for _, o := range p.lb.Options() {
		if o.Value() == values[0] {
			return snapshot(o), true
		}
	}
	return combobox.Item[V]{}, false
}

func (p popup[V]) SetValue(v V) { p.lb.Values().Set([]V{v}) }
