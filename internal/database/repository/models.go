package repository

import "time"

// CatalogEntry represents a catalog row: one node of the demo hierarchy
// shown by trees and comboboxes.
type CatalogEntry struct {
	ID        string
	ParentID  *string
	Text      string
	Disabled  bool
	SortOrder int
}

// WidgetState is the persisted state of one widget instance.
type WidgetState struct {
	WidgetID    string
	Kind        string
	ActiveID    *string
	Input       string
	ExpandedIDs []string
	Selected    []string
	UpdatedAt   time.Time
}
