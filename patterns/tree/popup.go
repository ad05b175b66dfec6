package tree

import (
	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/patterns/combobox"
)

// Popup adapts the tree to the combobox tree-popup interface.
func (t *Tree[V]) Popup() combobox.TreePopup[V] { return popup[V]{t} }

type popup[V comparable] struct{ t *Tree[V] }

var _ combobox.TreePopup[string] = popup[string]{}

func snapshot[V comparable](it *Item[V]) combobox.Item[V] {
	return combobox.Item[V]{ID: it.ID(), Value: it.Value(), SearchTerm: it.SearchTerm(), Disabled: it.Disabled()}
}

func (p popup[V]) ID() string { return p.t.ID() }

// Items lists every item, hidden ones included, so a first match deep in
// a collapsed branch can still be found.
func (p popup[V]) Items() []combobox.Item[V] {
	all := p.t.AllItems()
	out := make([]combobox.Item[V], len(all))
	for i, it := range all {
		out[i] = snapshot(it)
	}
	return out
}

func (p popup[V]) ActiveID() string {
	if it := p.t.List.ActiveItem(); it != nil {
		return it.ID()
	}
	return ""
}

// Focus makes the item active, opening its ancestors first.
func (p popup[V]) Focus(id string) {
	it := p.t.find(id)
	if it == nil {
		return
	}
	var chain []*Item[V]
	for a := p.t.Parent(it); a != nil; a = p.t.Parent(a) {
		chain = append(chain, a)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		p.t.Expand(chain[i])
	}
	p.t.List.Goto(it, list.Options{})
}

func (p popup[V]) Next()    { p.t.List.Next(list.Options{}) }
func (p popup[V]) Prev()    { p.t.List.Prev(list.Options{}) }
func (p popup[V]) First()   { p.t.List.First(list.Options{}) }
func (p popup[V]) Last()    { p.t.List.Last(list.Options{}) }
func (p popup[V]) Unfocus() { p.t.List.Focus.Unfocus() }

func (p popup[V]) Select(id string) {
	if id == "" {
		p.t.List.Select(nil)
		return
	}
	if it := p.t.find(id); it != nil {
		p.t.List.Select(it)
	}
}

func (p popup[V]) ClearSelection() { p.t.Values().Set(nil) }

func (p popup[V]) GetItem(e *events.PointerEvent) (combobox.Item[V], bool) {
	if it := p.t.ItemFor(e.Target); it != nil {
		return snapshot(it), true
	}
	return combobox.Item[V]{}, false
}

func (p popup[V]) SelectedItem() (combobox.Item[V], bool) {
	values := p.t.Values().Get()
	if len(values) == 0 {
		return combobox.Item[V]{}, false
	}
	for _, it := range p.t.AllItems() {
		if it.Value() == values[0] {
			return snapshot(it), true
		}
	}
	return combobox.Item[V]{}, false
}

func (p popup[V]) SetValue(v V) { p.t.Values().Set([]V{v}) }

func (p popup[V]) ExpandItem()   { p.t.ExpandActive(list.Options{}) }
func (p popup[V]) CollapseItem() { p.t.CollapseActive(list.Options{}) }

func (p popup[V]) IsItemExpandable() bool {
	return p.t.IsExpandable(p.t.List.ActiveItem())
}

func (p popup[V]) IsItemCollapsible() bool {
	it := p.t.List.ActiveItem()
	return p.t.IsExpanded(it) || p.t.Parent(it) != nil
}

func (p popup[V]) ExpandAll()   { p.t.ExpandAll() }
func (p popup[V]) CollapseAll() { p.t.CollapseAll() }
