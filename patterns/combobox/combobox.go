// Package combobox coordinates a text input with a detached popup.
//
// The combobox never knows the concrete popup type. It drives any Popup
// (listbox or tree) through the operation set in popup.go, and probes for
// TreePopup when it needs expand and collapse.
package combobox

import (
	"strings"
	"unicode/utf8"

	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

// FilterMode says how typing interacts with the popup.
type FilterMode int

const (
	// Manual leaves selection to the user.
	Manual FilterMode = iota
	// AutoSelect selects the first match as the user types.
	AutoSelect
	// Highlight selects the first match and completes the input with the
	// match's remaining text, selected so the next keystroke replaces it.
	Highlight
)

func (m FilterMode) String() string {
	switch m {
	case AutoSelect:
		return "auto-select"
	case Highlight:
		return "highlight"
	default:
		return "manual"
	}
}

// ParseFilterMode maps "manual", "auto-select" and "highlight" to a mode.
func ParseFilterMode(s string) (FilterMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return Manual, true
	case "auto-select", "autoselect":
		return AutoSelect, true
	case "highlight":
		return Highlight, true
	}
	return Manual, false
}

// Inputs configure a combobox.
type Inputs[V comparable] struct {
	Popup     signal.Signal[Popup[V]]
	Input     signal.Signal[InputElement]
	Container signal.Signal[events.Element]

	FilterMode signal.Signal[FilterMode] // default Manual
	// InputValue is the text the user typed; consumers filter on it.
	InputValue *signal.Writable[string]
	// FirstMatch is the value the consumer considers the best match for
	// InputValue, or nil to fall back to the popup's first item.
	FirstMatch signal.Signal[*V]

	Disabled      signal.Signal[bool] // default false
	Readonly      signal.Signal[bool] // default false
	TextDirection signal.Signal[list.TextDirection]
}

// OpenOptions pick where the popup's active item starts.
type OpenOptions struct {
	First bool
	Last  bool
}

// SelectOptions control what Select does besides selecting.
type SelectOptions struct {
	ID     string // item to select; "" selects the active item
	Commit bool   // write the item text into the input
	Close  bool   // close the popup afterwards
}

// Combobox is the combobox coordinator.
type Combobox[V comparable] struct {
	in Inputs[V]

	expanded    *signal.Writable[bool]
	highlighted *signal.Writable[string] // id of the item shown as a completion
	deleting    bool
	focused     bool
}

// New creates a combobox.
func New[V comparable](in Inputs[V]) *Combobox[V] {
	if in.Popup == nil {
		in.Popup = signal.Const[Popup[V]](nil)
	}
	if in.Input == nil {
		in.Input = signal.Const[InputElement](nil)
	}
	if in.Container == nil {
		in.Container = signal.Const[events.Element](nil)
	}
	if in.InputValue == nil {
		in.InputValue = signal.New("")
	}
	if in.FirstMatch == nil {
		in.FirstMatch = signal.Const[*V](nil)
	}
	in.FilterMode = signal.Or(in.FilterMode, Manual)
	in.Disabled = signal.Or(in.Disabled, false)
	in.Readonly = signal.Or(in.Readonly, false)
	in.TextDirection = signal.Or(in.TextDirection, list.LTR)
	return &Combobox[V]{
		in:          in,
		expanded:    signal.New(false),
		highlighted: signal.New(""),
	}
}

// Expanded is aria-expanded.
func (c *Combobox[V]) Expanded() bool { return c.expanded.Get() }

// ExpandedCell exposes the expanded state for subscribers.
func (c *Combobox[V]) ExpandedCell() signal.Signal[bool] { return c.expanded }

// InputValue returns the typed text cell.
func (c *Combobox[V]) InputValue() *signal.Writable[string] { return c.in.InputValue }

// ActiveDescendant is the popup's active item id while open.
func (c *Combobox[V]) ActiveDescendant() string {
	p := c.in.Popup.Get()
	if p == nil || !c.Expanded() {
		return ""
	}
	return p.ActiveID()
}

// Controls is the id of the popup the input controls.
func (c *Combobox[V]) Controls() string {
	if p := c.in.Popup.Get(); p != nil {
		return p.ID()
	}
	return ""
}

func (c *Combobox[V]) inert() bool {
	return c.in.Disabled.Get() || c.in.Readonly.Get()
}

// Open expands the popup and optionally moves to its first or last item.
func (c *Combobox[V]) Open(opts OpenOptions) {
	signal.Batch(func() {
		c.expanded.Set(true)
		p := c.in.Popup.Get()
		if p == nil {
			return
		}
		switch {
		case opts.First:
			p.First()
		case opts.Last:
			p.Last()
		}
	})
}

// Close collapses the popup and unfocuses its active item. The selection is
// kept.
func (c *Combobox[V]) Close() {
	signal.Batch(func() {
		c.expanded.Set(false)
		c.highlighted.Set("")
		if p := c.in.Popup.Get(); p != nil {
			p.Unfocus()
		}
	})
}

// OnFocusIn marks the combobox focused; filtering is live from now on.
func (c *Combobox[V]) OnFocusIn(events.FocusEvent) {
	c.focused = true
}

// OnInput handles an edit of the input element.
func (c *Combobox[V]) OnInput(e events.InputEvent) {
	if c.inert() {
		return
	}
	input := c.in.Input.Get()
	if input == nil {
		return
	}
	c.focused = true
	signal.Batch(func() {
		if !c.Expanded() {
			c.Open(OpenOptions{})
		}
		text := input.Value()
		c.in.InputValue.Set(text)
		c.deleting = e.IsDeletion()
		c.highlighted.Set("")

		if c.in.FilterMode.Get() != Manual {
			return
		}
		p := c.in.Popup.Get()
		if p == nil {
			return
		}
		if sel, ok := p.SelectedItem(); ok && sel.SearchTerm != text {
			p.ClearSelection()
		}
	})
}

// OnFilter is called after the consumer re-filtered the popup items.
func (c *Combobox[V]) OnFilter() {
	if !c.focused {
		return
	}
	mode := c.in.FilterMode.Get()
	if mode == Manual {
		return
	}
	p := c.in.Popup.Get()
	if p == nil {
		return
	}
	signal.Batch(func() {
		item, ok := c.firstMatch(p)
		if !ok {
			p.ClearSelection()
			p.Unfocus()
			return
		}
		p.Focus(item.ID)
		p.Select(item.ID)
		if mode == Highlight && !c.deleting {
			c.highlight(item)
		}
	})
}

func (c *Combobox[V]) firstMatch(p Popup[V]) (Item[V], bool) {
	items := p.Items()
	if v := c.in.FirstMatch.Get(); v != nil {
		for _, it := range items {
			if it.Value == *v {
				return it, true
			}
		}
		return Item[V]{}, false
	}
	// Tree items include collapsed descendants; only flat popups fall back
	// to their first item.
	if _, ok := p.(TreePopup[V]); ok {
		return Item[V]{}, false
	}
	for _, it := range items {
		if !it.Disabled {
			return it, true
		}
	}
	return Item[V]{}, false
}

// highlight completes the typed text with item's remaining text and selects
// the completion. A match that does not start with the typed text leaves the
// input alone, apart from dropping a completion shown for another item.
func (c *Combobox[V]) highlight(item Item[V]) {
	input := c.in.Input.Get()
	if input == nil {
		return
	}
	typed := c.in.InputValue.Get()
	term := item.SearchTerm
	n := utf8.RuneCountInString(term)
	k := utf8.RuneCountInString(typed)
	if k > n || !strings.HasPrefix(strings.ToLower(term), strings.ToLower(typed)) {
		if c.highlighted.Get() != "" {
			c.highlighted.Set("")
			input.SetValue(typed)
		}
		return
	}
	c.highlighted.Set(item.ID)
	input.SetValue(typed + string([]rune(term)[k:]))
	input.SetSelectionRange(k, n)
}

// OnFocusOut handles focus leaving the input or popup.
func (c *Combobox[V]) OnFocusOut(e events.FocusEvent) {
	if c.inert() {
		return
	}
	if events.Within(c.in.Container.Get(), e.RelatedTarget) {
		return
	}
	signal.Batch(func() {
		if c.in.FilterMode.Get() != Manual {
			c.Commit()
		} else if input := c.in.Input.Get(); input != nil {
			if p := c.in.Popup.Get(); p != nil {
				for _, it := range p.Items() {
					if it.SearchTerm == input.Value() && !it.Disabled {
						p.Select(it.ID)
						break
					}
				}
			}
		}
		c.Close()
	})
	c.focused = false
}

// Select selects an item and optionally commits and closes.
func (c *Combobox[V]) Select(opts SelectOptions) {
	p := c.in.Popup.Get()
	if p == nil {
		return
	}
	signal.Batch(func() {
		if opts.ID != "" {
			p.Focus(opts.ID)
		}
		p.Select(opts.ID)
		if opts.Commit {
			c.Commit()
		}
		if opts.Close {
			c.Close()
		}
	})
}

// Commit writes the selected item's text into the input.
func (c *Combobox[V]) Commit() {
	p := c.in.Popup.Get()
	input := c.in.Input.Get()
	if p == nil || input == nil {
		return
	}
	sel, ok := p.SelectedItem()
	if !ok {
		return
	}
	signal.Batch(func() {
		input.SetValue(sel.SearchTerm)
		c.in.InputValue.Set(sel.SearchTerm)
		if c.in.FilterMode.Get() == Highlight {
			n := utf8.RuneCountInString(sel.SearchTerm)
			input.SetSelectionRange(n, n)
		}
		c.highlighted.Set("")
	})
}

// navigate runs a popup move and, outside manual mode, selects the landing
// item and refreshes the completion.
func (c *Combobox[V]) navigate(move func(Popup[V])) {
	p := c.in.Popup.Get()
	if p == nil {
		return
	}
	move(p)
	mode := c.in.FilterMode.Get()
	if mode == Manual {
		return
	}
	id := p.ActiveID()
	if id == "" {
		return
	}
	p.Select(id)
	if mode != Highlight {
		return
	}
	for _, it := range p.Items() {
		if it.ID == id {
			c.highlight(it)
			return
		}
	}
}

// escape clears a live completion, or closes and clears the selection.
func (c *Combobox[V]) escape() {
	p := c.in.Popup.Get()
	if c.in.FilterMode.Get() == Highlight && c.highlighted.Get() != "" {
		if input := c.in.Input.Get(); input != nil {
			input.SetValue(c.in.InputValue.Get())
		}
		c.highlighted.Set("")
		if p != nil {
			p.ClearSelection()
		}
		return
	}
	c.Close()
	if p != nil {
		p.ClearSelection()
	}
}

func (c *Combobox[V]) expandKey() string {
	if c.in.TextDirection.Get() == list.RTL {
		return events.KeyArrowLeft
	}
	return events.KeyArrowRight
}

func (c *Combobox[V]) collapseKey() string {
	if c.in.TextDirection.Get() == list.RTL {
		return events.KeyArrowRight
	}
	return events.KeyArrowLeft
}

// Keydown builds the key rules for the current state.
func (c *Combobox[V]) Keydown() *events.KeyboardEventManager {
	m := events.NewKeyboardEventManager()
	if !c.Expanded() {
		m.On(events.Key(events.KeyArrowDown), func(*events.KeyboardEvent) { c.Open(OpenOptions{First: true}) }).
			On(events.Key(events.KeyArrowUp), func(*events.KeyboardEvent) { c.Open(OpenOptions{Last: true}) })
		return m
	}

	m.On(events.Key(events.KeyArrowDown), func(*events.KeyboardEvent) { c.navigate(Popup[V].Next) }).
		On(events.Key(events.KeyArrowUp), func(*events.KeyboardEvent) { c.navigate(Popup[V].Prev) }).
		On(events.Key(events.KeyHome), func(*events.KeyboardEvent) { c.navigate(Popup[V].First) }).
		On(events.Key(events.KeyEnd), func(*events.KeyboardEvent) { c.navigate(Popup[V].Last) }).
		On(events.Key(events.KeyEscape), func(*events.KeyboardEvent) { c.escape() }).
		On(events.Key(events.KeyEnter), func(*events.KeyboardEvent) { c.Select(SelectOptions{Commit: true, Close: true}) })

	if tp, ok := c.in.Popup.Get().(TreePopup[V]); ok {
		if tp.IsItemExpandable() {
			m.On(events.Key(c.expandKey()), func(*events.KeyboardEvent) { tp.ExpandItem() })
		}
		if tp.IsItemCollapsible() {
			m.On(events.Key(c.collapseKey()), func(*events.KeyboardEvent) { tp.CollapseItem() })
		}
	}
	return m
}

// OnKeydown routes a key press on the input.
func (c *Combobox[V]) OnKeydown(e *events.KeyboardEvent) {
	if c.inert() {
		return
	}
	c.Keydown().Handle(e)
}

// OnPointerup handles a click on a popup item or on the input.
func (c *Combobox[V]) OnPointerup(e *events.PointerEvent) {
	if c.inert() {
		return
	}
	if p := c.in.Popup.Get(); p != nil {
		if it, ok := p.GetItem(e); ok {
			if it.Disabled {
				return
			}
			c.Select(SelectOptions{ID: it.ID, Commit: true, Close: true})
			return
		}
	}
	if events.SameElement(c.in.Input.Get(), e.Target) {
		if c.Expanded() {
			c.Close()
		} else {
			c.Open(OpenOptions{})
		}
	}
}
