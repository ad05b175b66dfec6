// Package tree implements the tree pattern.
//
// A tree reads one flat, document-ordered array of items. Parent, children,
// level, visibility and position in set are derived from parent ids on every
// read. Navigation runs a list behavior over the visible items only, and each
// parent (the tree itself for top-level items) owns the expansion state of
// its children.
package tree

import (
	"time"

	"github.com/jask/ariakit/behaviors/expansion"
	"github.com/jask/ariakit/behaviors/list"
	"github.com/jask/ariakit/clock"
	"github.com/jask/ariakit/signal"
)

// rootID keys the expansion group of top-level items.
const rootID = ""

// Inputs configure a tree.
type Inputs[V comparable] struct {
	ID         string
	AllItems   signal.Signal[[]*Item[V]]
	ActiveItem *signal.Writable[*Item[V]]
	Values     *signal.Writable[[]V]

	Multi           signal.Signal[bool] // default false
	Wrap            signal.Signal[bool] // default true
	Disabled        signal.Signal[bool] // default false
	SoftDisabled    signal.Signal[bool] // default true
	Nav             signal.Signal[bool] // default false; report Current instead of Selected
	MultiExpandable signal.Signal[bool] // default true
	SelectionMode   signal.Signal[list.SelectionMode]
	FocusMode       signal.Signal[list.FocusMode]
	Orientation     signal.Signal[list.Orientation]
	TextDirection   signal.Signal[list.TextDirection]
	TypeaheadDelay  signal.Signal[time.Duration]
	Clock           clock.Clock
}

// Tree is the tree pattern.
type Tree[V comparable] struct {
	id              string
	allItems        signal.Signal[[]*Item[V]]
	disabled        signal.Signal[bool]
	nav             signal.Signal[bool]
	multiExpandable signal.Signal[bool]
	selectionMode   signal.Signal[list.SelectionMode]
	orientation     signal.Signal[list.Orientation]
	textDirection   signal.Signal[list.TextDirection]

	expansions map[string]*expansion.Expansion
	visible    *signal.Computed[[]*Item[V]]

	List *list.List[V, *Item[V]]
}

// New creates a tree.
func New[V comparable](in Inputs[V]) *Tree[V] {
	t := &Tree[V]{
		id:              in.ID,
		allItems:        signal.Or(in.AllItems, nil),
		disabled:        signal.Or(in.Disabled, false),
		nav:             signal.Or(in.Nav, false),
		multiExpandable: signal.Or(in.MultiExpandable, true),
		selectionMode:   signal.Or(in.SelectionMode, list.Follow),
		orientation:     signal.Or(in.Orientation, list.Vertical),
		textDirection:   signal.Or(in.TextDirection, list.LTR),
		expansions:      make(map[string]*expansion.Expansion),
	}
	t.visible = signal.NewComputed(func() []*Item[V] {
		var out []*Item[V]
		for _, it := range t.allItems.Get() {
			if t.IsVisible(it) {
				out = append(out, it)
			}
		}
		return out
	})
	t.List = list.New(list.Inputs[V, *Item[V]]{
		Items:          t.visible,
		ActiveItem:     in.ActiveItem,
		Values:         in.Values,
		Multi:          in.Multi,
		Wrap:           in.Wrap,
		Disabled:       in.Disabled,
		SoftDisabled:   in.SoftDisabled,
		FocusMode:      in.FocusMode,
		Orientation:    t.orientation,
		TextDirection:  t.textDirection,
		TypeaheadDelay: in.TypeaheadDelay,
		Clock:          in.Clock,
	})
	return t
}

func (t *Tree[V]) ID() string { return t.id }

// AllItems returns every item in document order.
func (t *Tree[V]) AllItems() []*Item[V] { return t.allItems.Get() }

// VisibleItems returns the items whose ancestors are all expanded.
func (t *Tree[V]) VisibleItems() []*Item[V] { return t.visible.Get() }

// Values returns the selected values cell.
func (t *Tree[V]) Values() *signal.Writable[[]V] { return t.List.Values() }

func (t *Tree[V]) find(id string) *Item[V] {
	if id == rootID {
		return nil
	}
	for _, it := range t.allItems.Get() {
		if it.ID() == id {
			return it
		}
	}
	return nil
}

// Parent returns it's parent, or nil for top-level items and orphans.
func (t *Tree[V]) Parent(it *Item[V]) *Item[V] {
	if it == nil {
		return nil
	}
	return t.find(it.parentID)
}

// Children returns the direct children of it (nil means the top level).
func (t *Tree[V]) Children(it *Item[V]) []*Item[V] {
	parent := rootID
	if it != nil {
		parent = it.id
	}
	var out []*Item[V]
	for _, x := range t.allItems.Get() {
		if t.parentKey(x) == parent {
			out = append(out, x)
		}
	}
	return out
}

// parentKey is x's parent id, with orphans treated as top level.
func (t *Tree[V]) parentKey(x *Item[V]) string {
	if p := t.Parent(x); p != nil {
		return p.id
	}
	return rootID
}

// Level is 1 for top-level items and one more than the parent otherwise.
func (t *Tree[V]) Level(it *Item[V]) int {
	level := 0
	for cur := it; cur != nil; cur = t.Parent(cur) {
		level++
	}
	return level
}

// IsExpandable reports whether it has, or declares, children.
func (t *Tree[V]) IsExpandable(it *Item[V]) bool {
	if it == nil {
		return false
	}
	return it.hasChildren || len(t.Children(it)) > 0
}

// IsExpanded reports whether it is expandable and open.
func (t *Tree[V]) IsExpanded(it *Item[V]) bool {
	if !t.IsExpandable(it) {
		return false
	}
	return t.group(t.parentKey(it)).IsExpanded(it.id)
}

// IsVisible reports whether every ancestor of it is expanded.
func (t *Tree[V]) IsVisible(it *Item[V]) bool {
	for p := t.Parent(it); p != nil; p = t.Parent(p) {
		if !t.IsExpanded(p) {
			return false
		}
	}
	return it != nil
}

// SetSize is the number of siblings including it.
func (t *Tree[V]) SetSize(it *Item[V]) int {
	return len(t.Children(t.Parent(it)))
}

// PosInSet is it's 1-based position among its siblings.
func (t *Tree[V]) PosInSet(it *Item[V]) int {
	for i, x := range t.Children(t.Parent(it)) {
		if x == it {
			return i + 1
		}
	}
	return 0
}

// IsActive reports whether it is the active item.
func (t *Tree[V]) IsActive(it *Item[V]) bool { return t.List.IsActive(it) }

// TabIndex is the container's tab index.
func (t *Tree[V]) TabIndex() int { return t.List.TabIndex() }

// ItemTabIndex is it's tab index. Hidden items are never tabbable.
func (t *Tree[V]) ItemTabIndex(it *Item[V]) int {
	if !t.IsVisible(it) {
		return -1
	}
	return t.List.ItemTabIndex(it)
}

// ActiveDescendant is the active item id in activedescendant mode.
func (t *Tree[V]) ActiveDescendant() string { return t.List.ActiveDescendant() }

// IsSelected is aria-selected; always false in nav mode.
func (t *Tree[V]) IsSelected(it *Item[V]) bool {
	return !t.nav.Get() && t.List.IsSelected(it)
}

// IsCurrent is aria-current; only reported in nav mode.
func (t *Tree[V]) IsCurrent(it *Item[V]) bool {
	return t.nav.Get() && t.List.IsSelected(it)
}

type expansionItem[V comparable] struct {
	t  *Tree[V]
	it *Item[V]
}

func (e expansionItem[V]) ID() string       { return e.it.id }
func (e expansionItem[V]) Expandable() bool { return e.t.IsExpandable(e.it) }
func (e expansionItem[V]) Disabled() bool   { return e.it.Disabled() }

// group returns the expansion state owned by the parent with id parentID.
func (t *Tree[V]) group(parentID string) *expansion.Expansion {
	if g, ok := t.expansions[parentID]; ok {
		return g
	}
	g := expansion.New(expansion.Inputs{
		Items: signal.Func[[]expansion.Item](func() []expansion.Item {
			var out []expansion.Item
			for _, c := range t.Children(t.find(parentID)) {
				out = append(out, expansionItem[V]{t, c})
			}
			return out
		}),
		MultiExpandable: t.multiExpandable,
		Disabled:        t.disabled,
	})
	t.expansions[parentID] = g
	return g
}

// Expand opens it.
func (t *Tree[V]) Expand(it *Item[V]) bool {
	if it == nil {
		return false
	}
	var ok bool
	signal.Batch(func() {
		ok = t.group(t.parentKey(it)).Open(it.id)
		// Single expansion may have closed a sibling holding the active item.
		t.repairActive()
	})
	return ok
}

// Collapse closes it. When the active item becomes hidden it moves to its
// nearest visible ancestor.
func (t *Tree[V]) Collapse(it *Item[V]) bool {
	if it == nil {
		return false
	}
	var ok bool
	signal.Batch(func() {
		ok = t.group(t.parentKey(it)).Close(it.id)
		t.repairActive()
	})
	return ok
}

// ToggleExpansion flips it.
func (t *Tree[V]) ToggleExpansion(it *Item[V]) bool {
	if t.IsExpanded(it) {
		return t.Collapse(it)
	}
	return t.Expand(it)
}

// ExpandSiblings opens every expandable sibling of it (it included).
func (t *Tree[V]) ExpandSiblings(it *Item[V]) {
	if it == nil {
		return
	}
	signal.Batch(func() {
		for _, s := range t.Children(t.Parent(it)) {
			t.Expand(s)
		}
	})
}

// ExpandAll opens every expandable item.
func (t *Tree[V]) ExpandAll() {
	signal.Batch(func() {
		for _, it := range t.allItems.Get() {
			t.Expand(it)
		}
	})
}

// CollapseAll closes every item.
func (t *Tree[V]) CollapseAll() {
	signal.Batch(func() {
		for _, it := range t.allItems.Get() {
			t.group(t.parentKey(it)).Close(it.id)
		}
		t.repairActive()
	})
}

// ExpandedIDs lists the open items in document order.
func (t *Tree[V]) ExpandedIDs() []string {
	var out []string
	for _, it := range t.allItems.Get() {
		if t.IsExpanded(it) {
			out = append(out, it.id)
		}
	}
	return out
}

// SetExpandedIDs replaces the expansion state of every group. Unknown ids
// are dropped.
func (t *Tree[V]) SetExpandedIDs(ids []string) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	groups := make(map[string][]string)
	for _, it := range t.allItems.Get() {
		if want[it.id] && t.IsExpandable(it) {
			key := t.parentKey(it)
			groups[key] = append(groups[key], it.id)
		}
	}
	signal.Batch(func() {
		for key, g := range t.expansions {
			if _, ok := groups[key]; !ok {
				g.ExpandedIDs().Set(nil)
			}
		}
		for key, open := range groups {
			if !t.multiExpandable.Get() && len(open) > 1 {
				open = open[len(open)-1:]
			}
			t.group(key).ExpandedIDs().Set(open)
		}
		t.repairActive()
	})
}

func (t *Tree[V]) repairActive() {
	active := t.List.Inputs().ActiveItem.Get()
	if active == nil || t.IsVisible(active) {
		return
	}
	for p := t.Parent(active); p != nil; p = t.Parent(p) {
		if t.IsVisible(p) {
			t.List.Inputs().ActiveItem.Set(p)
			return
		}
	}
	t.List.Inputs().ActiveItem.Set(nil)
}

// SetDefaultState picks the initial active item: the first visible selected
// focusable item, otherwise the first visible focusable one.
func (t *Tree[V]) SetDefaultState() {
	if t.List.ActiveItem() != nil {
		return
	}
	var first *Item[V]
	for _, it := range t.VisibleItems() {
		if !t.List.IsFocusable(it) {
			continue
		}
		if first == nil {
			first = it
		}
		if t.List.IsSelected(it) {
			t.List.Inputs().ActiveItem.Set(it)
			return
		}
	}
	if first != nil {
		t.List.Inputs().ActiveItem.Set(first)
	}
}
