package menu

import (
	"github.com/jask/ariakit/events"
)

// Root indexes a menu tree and owns its select callback.
type Root[V comparable] struct {
	top      *Menu[V]
	trigger  *Trigger[V]
	onSelect func(V)
}

// NewRoot attaches every menu reachable from top to a new root.
func NewRoot[V comparable](top *Menu[V], onSelect func(V)) *Root[V] {
	r := &Root[V]{top: top, onSelect: onSelect}
	r.walk(func(m *Menu[V], _ *Item[V]) bool {
		m.root = r
		return true
	})
	return r
}

// Top returns the root menu or menubar.
func (r *Root[V]) Top() *Menu[V] { return r.top }

// walk visits each menu and then its items, depth first; fn returning false
// stops the walk.
func (r *Root[V]) walk(fn func(m *Menu[V], it *Item[V]) bool) {
	var visit func(m *Menu[V]) bool
	visit = func(m *Menu[V]) bool {
		if !fn(m, nil) {
			return false
		}
		for _, it := range m.Items() {
			if !fn(m, it) {
				return false
			}
			if it.submenu != nil {
				if it.submenu.root != r {
					it.submenu.root = r
				}
				if !visit(it.submenu) {
					return false
				}
			}
		}
		return true
	}
	visit(r.top)
}

// Item finds an item anywhere in the tree.
func (r *Root[V]) Item(id string) *Item[V] {
	var found *Item[V]
	r.walk(func(_ *Menu[V], it *Item[V]) bool {
		if it != nil && it.id == id {
			found = it
			return false
		}
		return true
	})
	return found
}

// MenuOf finds the menu that holds the item with id.
func (r *Root[V]) MenuOf(id string) *Menu[V] {
	var found *Menu[V]
	r.walk(func(m *Menu[V], it *Item[V]) bool {
		if it != nil && it.id == id {
			found = m
			return false
		}
		return true
	})
	return found
}

// Current returns the deepest open menu; keyboard input belongs to it. The
// active item's submenu wins, then any open one, since a pointer can open a
// submenu without moving the parent's active item.
func (r *Root[V]) Current() *Menu[V] {
	cur := r.top
	for {
		next := openChild(cur)
		if next == nil {
			return cur
		}
		cur = next
	}
}

func openChild[V comparable](m *Menu[V]) *Menu[V] {
	if it := m.List.ActiveItem(); m.IsExpanded(it) {
		return it.submenu
	}
	for _, it := range m.Items() {
		if m.IsExpanded(it) {
			return it.submenu
		}
	}
	return nil
}

// Path returns the open menus from the top down to Current.
func (r *Root[V]) Path() []*Menu[V] {
	out := []*Menu[V]{r.top}
	for m := openChild(r.top); m != nil; m = openChild(m) {
		out = append(out, m)
	}
	return out
}

// OnPointerdown routes a press to the open menu holding the struck item.
func (r *Root[V]) OnPointerdown(e *events.PointerEvent) bool {
	for _, m := range r.Path() {
		if !m.IsOpen() {
			continue
		}
		if m.ItemFor(e.Target) != nil {
			m.OnPointerdown(e)
			return true
		}
	}
	return false
}

// OnKeydown routes a key press to the current menu.
func (r *Root[V]) OnKeydown(e *events.KeyboardEvent) {
	r.Current().OnKeydown(e)
}

// CloseAll closes every submenu, and the top menu too when a trigger owns it.
func (r *Root[V]) CloseAll() {
	if r.trigger != nil {
		r.trigger.Close()
		return
	}
	r.top.CloseSubmenus()
}

func (r *Root[V]) selectItem(it *Item[V]) {
	if r.onSelect != nil {
		r.onSelect(it.value)
	}
	r.CloseAll()
}
