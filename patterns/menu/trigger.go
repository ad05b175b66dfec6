package menu

import (
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

// Trigger is a menu button: it opens its menu and takes focus back when the
// menu closes.
type Trigger[V comparable] struct {
	element events.Element
	menu    *Menu[V]
	root    *Root[V]
}

// NewTrigger wires element to menu. onSelect fires with the value of any
// activated leaf item anywhere below menu.
func NewTrigger[V comparable](element events.Element, menu *Menu[V], onSelect func(V)) *Trigger[V] {
	t := &Trigger[V]{element: element, menu: menu}
	t.root = NewRoot(menu, onSelect)
	t.root.trigger = t
	return t
}

// Menu returns the controlled menu.
func (t *Trigger[V]) Menu() *Menu[V] { return t.menu }

// Root returns the menu tree index.
func (t *Trigger[V]) Root() *Root[V] { return t.root }

// Expanded is aria-expanded.
func (t *Trigger[V]) Expanded() bool { return t.menu.IsOpen() }

// Controls is aria-controls.
func (t *Trigger[V]) Controls() string { return t.menu.ID() }

// Open shows the menu on its first or last item.
func (t *Trigger[V]) Open(last bool) { t.menu.Open(!last, last) }

// Close hides the menu tree and refocuses the trigger.
func (t *Trigger[V]) Close() {
	signal.Batch(func() {
		t.menu.Close()
		if f, ok := t.element.(events.Focusable); ok {
			f.Focus()
		}
	})
}

// Toggle opens a closed menu on its first item and closes an open one.
func (t *Trigger[V]) Toggle() {
	if t.Expanded() {
		t.Close()
		return
	}
	t.Open(false)
}

// Keydown builds the rules used while the menu is closed.
func (t *Trigger[V]) Keydown() *events.KeyboardEventManager {
	return events.NewKeyboardEventManager().
		On(events.Key(events.KeyArrowDown), func(*events.KeyboardEvent) { t.Open(false) }).
		On(events.Key(events.KeyEnter), func(*events.KeyboardEvent) { t.Open(false) }).
		On(events.Key(events.KeySpace), func(*events.KeyboardEvent) { t.Open(false) }).
		On(events.Key(events.KeyArrowUp), func(*events.KeyboardEvent) { t.Open(true) })
}

// OnKeydown opens the menu, or routes the key into it once open.
func (t *Trigger[V]) OnKeydown(e *events.KeyboardEvent) {
	if t.Expanded() {
		t.root.OnKeydown(e)
		return
	}
	t.Keydown().Handle(e)
}

// OnPointerdown toggles the menu on a click on the trigger and activates
// items clicked inside the open menu tree.
func (t *Trigger[V]) OnPointerdown(e *events.PointerEvent) {
	if events.Within(t.element, e.Target) {
		t.Toggle()
		return
	}
	if !t.Expanded() {
		return
	}
	t.root.OnPointerdown(e)
}
