// Package expansion tracks which items of one group are expanded.
//
// Expansion is keyed by item id. A tree gives every parent its own instance
// so "close the siblings" never reaches outside one parent's children.
package expansion

import (
	"slices"

	"github.com/jask/ariakit/signal"
)

// Item is what expansion needs to know about an item.
type Item interface {
	ID() string
	Expandable() bool
	Disabled() bool
}

// Inputs are the cells an Expansion reads and writes.
type Inputs struct {
	Items           signal.Signal[[]Item]
	ExpandedIDs     *signal.Writable[[]string]
	MultiExpandable signal.Signal[bool] // default false
	Disabled        signal.Signal[bool] // default false
}

// Expansion opens and closes items.
type Expansion struct {
	in Inputs
}

// New creates an Expansion. A nil ExpandedIDs cell is created.
func New(in Inputs) *Expansion {
	if in.Items == nil {
		in.Items = signal.Const[[]Item](nil)
	}
	if in.ExpandedIDs == nil {
		in.ExpandedIDs = signal.New[[]string](nil)
	}
	in.MultiExpandable = signal.Or(in.MultiExpandable, false)
	in.Disabled = signal.Or(in.Disabled, false)
	return &Expansion{in: in}
}

// ExpandedIDs returns the expanded ids cell.
func (e *Expansion) ExpandedIDs() *signal.Writable[[]string] { return e.in.ExpandedIDs }

// IsExpanded reports whether id is open.
func (e *Expansion) IsExpanded(id string) bool {
	return slices.Contains(e.in.ExpandedIDs.Get(), id)
}

// IsExpandable reports whether id names an enabled, expandable item of this
// group and the group itself is enabled.
func (e *Expansion) IsExpandable(id string) bool {
	if e.in.Disabled.Get() {
		return false
	}
	it, ok := e.find(id)
	return ok && it.Expandable() && !it.Disabled()
}

// Open expands id. Without multi-expansion every other item of the group is
// closed first.
func (e *Expansion) Open(id string) bool {
	if !e.IsExpandable(id) || e.IsExpanded(id) {
		return false
	}
	if !e.in.MultiExpandable.Get() {
		e.in.ExpandedIDs.Set([]string{id})
		return true
	}
	e.in.ExpandedIDs.Set(append(slices.Clone(e.in.ExpandedIDs.Get()), id))
	return true
}

// Close collapses id.
func (e *Expansion) Close(id string) bool {
	if !e.IsExpandable(id) || !e.IsExpanded(id) {
		return false
	}
	e.in.ExpandedIDs.Set(slices.DeleteFunc(slices.Clone(e.in.ExpandedIDs.Get()), func(x string) bool {
		return x == id
	}))
	return true
}

// Toggle flips id.
func (e *Expansion) Toggle(id string) bool {
	if e.IsExpanded(id) {
		return e.Close(id)
	}
	return e.Open(id)
}

// OpenAll expands every expandable item. It only acts with multi-expansion.
func (e *Expansion) OpenAll() {
	if !e.in.MultiExpandable.Get() {
		return
	}
	for _, it := range e.in.Items.Get() {
		e.Open(it.ID())
	}
}

// CloseAll collapses every expandable item.
func (e *Expansion) CloseAll() {
	for _, it := range e.in.Items.Get() {
		e.Close(it.ID())
	}
}

func (e *Expansion) find(id string) (Item, bool) {
	for _, it := range e.in.Items.Get() {
		if it.ID() == id {
			return it, true
		}
	}
	return nil, false
}
