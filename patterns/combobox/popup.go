package combobox

import "github.com/jask/ariakit/events"

// Item is a snapshot of one popup item as the combobox sees it.
type Item[V comparable] struct {
	ID         string
	Value      V
	SearchTerm string
	Disabled   bool
}

// Popup is the operation set a combobox drives. Listbox and tree patterns
// provide implementations through their Popup methods.
type Popup[V comparable] interface {
	ID() string
	Items() []Item[V]
	// ActiveID is the active item's id, or "" when nothing is active.
	ActiveID() string

	// Focus makes the item with id active.
	Focus(id string)
	Next()
	Prev()
	First()
	Last()
	Unfocus()

	// Select selects the item with id, or the active item when id is "".
	Select(id string)
	ClearSelection()
	// GetItem resolves the item a pointer event struck.
	GetItem(e *events.PointerEvent) (Item[V], bool)
	SelectedItem() (Item[V], bool)
	SetValue(v V)
}

// TreePopup is the optional capability of tree-shaped popups. All operations
// act on the active item.
type TreePopup[V comparable] interface {
	Popup[V]
	ExpandItem()
	CollapseItem()
	IsItemExpandable() bool
	IsItemCollapsible() bool
	ExpandAll()
	CollapseAll()
}
