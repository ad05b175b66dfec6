// Package menu implements menus, menubars and menu triggers.
//
// Menus run the list behavior with wrapping on and selection off. Items own
// their submenus; a submenu keeps only its parent item's id and resolves it
// through the Root, which indexes the whole menu tree.
package menu

import (
	"time"

	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/clock"
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

// Inputs configure a menu or menubar.
type Inputs[V comparable] struct {
	ID             string
	Items          signal.Signal[[]*Item[V]]
	FocusMode      signal.Signal[list.FocusMode]
	TextDirection  signal.Signal[list.TextDirection]
	TypeaheadDelay signal.Signal[time.Duration]
	Clock          clock.Clock
}

// Menu is a vertical menu or a horizontal menubar.
type Menu[V comparable] struct {
	id            string
	bar           bool
	parentID      string
	root          *Root[V]
	textDirection signal.Signal[list.TextDirection]
	open          *signal.Writable[bool]

	List *list.List[V, *Item[V]]
}

func newMenu[V comparable](in Inputs[V], bar bool) *Menu[V] {
	orient := list.Vertical
	if bar {
		orient = list.Horizontal
	}
	m := &Menu[V]{
		id:            in.ID,
		bar:           bar,
		textDirection: signal.Or(in.TextDirection, list.LTR),
		open:          signal.New(bar),
	}
	m.List = list.New(list.Inputs[V, *Item[V]]{
		Items:          in.Items,
		Wrap:           signal.Const(true),
		FocusMode:      in.FocusMode,
		Orientation:    signal.Const(orient),
		TextDirection:  m.textDirection,
		TypeaheadDelay: in.TypeaheadDelay,
		Clock:          in.Clock,
	})
	return m
}

// NewMenu creates a vertical menu. It starts closed.
func NewMenu[V comparable](in Inputs[V]) *Menu[V] { return newMenu(in, false) }

// NewMenubar creates a horizontal menubar. A menubar is always open.
func NewMenubar[V comparable](in Inputs[V]) *Menu[V] { return newMenu(in, true) }

func (m *Menu[V]) ID() string { return m.id }

// IsMenubar reports whether m is horizontal.
func (m *Menu[V]) IsMenubar() bool { return m.bar }

// Items returns the current items.
func (m *Menu[V]) Items() []*Item[V] { return m.List.Items() }

// IsOpen reports whether the menu is shown.
func (m *Menu[V]) IsOpen() bool { return m.open.Get() }

// ParentItem returns the item owning this submenu, or nil for the root.
func (m *Menu[V]) ParentItem() *Item[V] {
	if m.parentID == "" || m.root == nil {
		return nil
	}
	return m.root.Item(m.parentID)
}

// ParentMenu returns the menu holding ParentItem.
func (m *Menu[V]) ParentMenu() *Menu[V] {
	if m.parentID == "" || m.root == nil {
		return nil
	}
	return m.root.MenuOf(m.parentID)
}

// IsExpanded is aria-expanded for it.
func (m *Menu[V]) IsExpanded(it *Item[V]) bool {
	return it != nil && it.submenu != nil && it.submenu.IsOpen()
}

// ItemTabIndex is it's tab index.
func (m *Menu[V]) ItemTabIndex(it *Item[V]) int { return m.List.ItemTabIndex(it) }

// ActiveDescendant is the active item id in activedescendant mode.
func (m *Menu[V]) ActiveDescendant() string { return m.List.ActiveDescendant() }

// Open shows the menu and optionally moves to its first or last item.
func (m *Menu[V]) Open(first, last bool) {
	signal.Batch(func() {
		m.open.Set(true)
		switch {
		case first:
			m.List.First(list.Options{})
		case last:
			m.List.Last(list.Options{})
		}
	})
}

// Close hides the menu and every open submenu below it. A menubar stays
// shown and only closes its submenus.
func (m *Menu[V]) Close() {
	signal.Batch(func() {
		m.CloseSubmenus()
		if m.bar {
			return
		}
		m.open.Set(false)
		m.List.Focus.Unfocus()
	})
}

// CloseSubmenus closes every submenu of m's items.
func (m *Menu[V]) CloseSubmenus() {
	for _, it := range m.Items() {
		if it.submenu != nil && it.submenu.IsOpen() {
			it.submenu.Close()
		}
	}
}

func (m *Menu[V]) anySubmenuOpen() bool {
	for _, it := range m.Items() {
		if m.IsExpanded(it) {
			return true
		}
	}
	return false
}

// Activate opens it's submenu on its first item, or fires the root's select
// callback and closes the whole menu tree.
func (m *Menu[V]) Activate(it *Item[V]) {
	if it == nil || it.Disabled() {
		return
	}
	signal.Batch(func() {
		if it.submenu != nil {
			m.CloseSubmenus()
			it.submenu.Open(true, false)
			return
		}
		if m.root != nil {
			m.root.selectItem(it)
		}
	})
}

func (m *Menu[V]) expandKey() string {
	if m.textDirection.Get() == list.RTL {
		return events.KeyArrowLeft
	}
	return events.KeyArrowRight
}

func (m *Menu[V]) collapseKey() string {
	if m.textDirection.Get() == list.RTL {
		return events.KeyArrowRight
	}
	return events.KeyArrowLeft
}

// moveAcrossBar moves the menubar one step, reopening the new item's submenu.
func moveAcrossBar[V comparable](bar *Menu[V], forward bool) {
	bar.CloseSubmenus()
	if forward {
		bar.List.Next(list.Options{})
	} else {
		bar.List.Prev(list.Options{})
	}
	if it := bar.List.ActiveItem(); it != nil && it.submenu != nil && !it.Disabled() {
		it.submenu.Open(true, false)
	}
}

func (m *Menu[V]) expand() {
	it := m.List.ActiveItem()
	if it != nil && it.submenu != nil && !it.Disabled() {
		it.submenu.Open(true, false)
		return
	}
	if m.root != nil && m.root.top.bar {
		moveAcrossBar(m.root.top, true)
	}
}

func (m *Menu[V]) collapse() {
	parent := m.ParentMenu()
	if parent == nil {
		return
	}
	if parent.bar {
		moveAcrossBar(parent, false)
		return
	}
	m.Close()
	if p := m.ParentItem(); p != nil {
		parent.List.Goto(p, list.Options{})
	}
}

func (m *Menu[V]) escape() {
	parent := m.ParentMenu()
	if parent == nil {
		if m.root != nil && m.root.trigger != nil {
			m.root.trigger.Close()
		}
		return
	}
	m.Close()
	if p := m.ParentItem(); p != nil {
		parent.List.Goto(p, list.Options{})
	}
}

// Keydown builds the key rules for the current state.
func (m *Menu[V]) Keydown() *events.KeyboardEventManager {
	l := m.List
	km := events.NewKeyboardEventManager()
	if l.IsTyping() {
		km.On(events.Key(events.KeySpace), func(*events.KeyboardEvent) { l.Search(" ", list.Options{}) })
	}

	if m.bar {
		km.On(events.Key(l.PrevKey()), func(*events.KeyboardEvent) { moveAcrossBarIfOpen(m, false) }).
			On(events.Key(l.NextKey()), func(*events.KeyboardEvent) { moveAcrossBarIfOpen(m, true) }).
			On(events.Key(events.KeyHome), func(*events.KeyboardEvent) { l.First(list.Options{}) }).
			On(events.Key(events.KeyEnd), func(*events.KeyboardEvent) { l.Last(list.Options{}) }).
			On(events.Key(events.KeyArrowDown), func(*events.KeyboardEvent) { m.openActive(true) }).
			On(events.Key(events.KeyArrowUp), func(*events.KeyboardEvent) { m.openActive(false) }).
			On(events.Key(events.KeyEnter), func(*events.KeyboardEvent) { m.Activate(l.ActiveItem()) }).
			On(events.Key(events.KeySpace), func(*events.KeyboardEvent) { m.Activate(l.ActiveItem()) }).
			On(events.Key(events.KeyEscape), func(*events.KeyboardEvent) { m.CloseSubmenus() })
	} else {
		km.On(events.Key(events.KeyArrowUp), func(*events.KeyboardEvent) { l.Prev(list.Options{}) }).
			On(events.Key(events.KeyArrowDown), func(*events.KeyboardEvent) { l.Next(list.Options{}) }).
			On(events.Key(events.KeyHome), func(*events.KeyboardEvent) { l.First(list.Options{}) }).
			On(events.Key(events.KeyEnd), func(*events.KeyboardEvent) { l.Last(list.Options{}) }).
			On(events.Key(m.expandKey()), func(*events.KeyboardEvent) { m.expand() }).
			On(events.Key(m.collapseKey()), func(*events.KeyboardEvent) { m.collapse() }).
			On(events.Key(events.KeyEnter), func(*events.KeyboardEvent) { m.Activate(l.ActiveItem()) }).
			On(events.Key(events.KeySpace), func(*events.KeyboardEvent) { m.Activate(l.ActiveItem()) }).
			On(events.Key(events.KeyEscape), func(*events.KeyboardEvent) { m.escape() })
	}

	km.On(events.Printable.With(events.ModNone, events.ModShift), func(e *events.KeyboardEvent) { l.Search(e.Key, list.Options{}) })
	return km
}

func moveAcrossBarIfOpen[V comparable](bar *Menu[V], forward bool) {
	if bar.anySubmenuOpen() {
		moveAcrossBar(bar, forward)
		return
	}
	if forward {
		bar.List.Next(list.Options{})
	} else {
		bar.List.Prev(list.Options{})
	}
}

func (m *Menu[V]) openActive(first bool) {
	it := m.List.ActiveItem()
	if it == nil || it.submenu == nil || it.Disabled() {
		return
	}
	m.CloseSubmenus()
	it.submenu.Open(first, !first)
}

// ItemFor returns the item whose element is or contains target.
func (m *Menu[V]) ItemFor(target events.Element) *Item[V] {
	for _, it := range m.Items() {
		if events.Within(it.Element(), target) {
			return it
		}
	}
	return nil
}

// OnKeydown routes a key press.
func (m *Menu[V]) OnKeydown(e *events.KeyboardEvent) {
	if m.List.Disabled() {
		return
	}
	m.Keydown().Handle(e)
}

// OnPointerdown makes the struck item active and activates it. Clicking an
// item whose submenu is open closes the submenu.
func (m *Menu[V]) OnPointerdown(e *events.PointerEvent) {
	it := m.ItemFor(e.Target)
	if it == nil {
		return
	}
	events.NewPointerEventManager().
		On(events.Pointer().AnyModifier(), func(*events.PointerEvent) {
			m.List.Goto(it, list.Options{})
			if m.IsExpanded(it) {
				it.submenu.Close()
				return
			}
			m.Activate(it)
		}).
		Handle(e)
}
