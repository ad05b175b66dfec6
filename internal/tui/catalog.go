package tui

import (
	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/internal/database/repository"
	"github.com/jask/ariakit/patterns/listbox"
	"github.com/jask/ariakit/patterns/tree"
)

// treeItems turns document-ordered catalog entries into tree items keyed by
// catalog id, so persisted expansion and selection survive restarts.
func treeItems(entries []repository.CatalogEntry, container *events.Node) []*tree.Item[string] {
	parents := map[string]bool{}
	for _, e := range entries {
		if e.ParentID != nil {
			parents[*e.ParentID] = true
		}
	}
	out := make([]*tree.Item[string], 0, len(entries))
	for _, e := range entries {
		parent := ""
		if e.ParentID != nil {
			parent = *e.ParentID
		}
		out = append(out, tree.NewItem(tree.ItemInputs[string]{
			ID:          e.ID,
			ParentID:    parent,
			Value:       e.ID,
			Text:        e.Text,
			Disabled:    e.Disabled,
			HasChildren: parents[e.ID],
			Element:     events.NewNode(e.ID, container),
		}))
	}
	return out
}

// leafOptions offers every catalog leaf as a combobox option.
func leafOptions(entries []repository.CatalogEntry, container *events.Node) []*listbox.Option[string] {
	parents := map[string]bool{}
	for _, e := range entries {
		if e.ParentID != nil {
			parents[*e.ParentID] = true
		}
	}
	var out []*listbox.Option[string]
	for _, e := range entries {
		if parents[e.ID] {
			continue
		}
		out = append(out, listbox.NewOption(listbox.OptionInputs[string]{
			ID:       "opt-" + e.ID,
			Value:    e.Text,
			Label:    e.Text,
			Disabled: e.Disabled,
			Element:  events.NewNode("opt-"+e.ID, container),
		}))
	}
	return out
}
