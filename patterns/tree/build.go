package tree

import (
	"github.com/google/uuid"

	"github.com/jask/ariakit/events"
)

// Node is nested input for Build.
type Node[V comparable] struct {
	Value    V
	Text     string
	Disabled bool
	Children []Node[V]
}

// Build flattens nested nodes into document-ordered items. Ids are
// name-based uuids of the text path, so rebuilding the same data yields the
// same ids and persisted expansion state still applies. Elements are created
// under container.
func Build[V comparable](container *events.Node, nodes []Node[V]) []*Item[V] {
	var out []*Item[V]
	var walk func(parentID, path string, nodes []Node[V])
	walk = func(parentID, path string, nodes []Node[V]) {
		for _, n := range nodes {
			p := path + "/" + n.Text
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("tree:"+p)).String()
			out = append(out, NewItem(ItemInputs[V]{
				ID:          id,
				ParentID:    parentID,
				Value:       n.Value,
				Text:        n.Text,
				Disabled:    n.Disabled,
				HasChildren: len(n.Children) > 0,
				Element:     events.NewNode(id, container),
			}))
			walk(id, p, n.Children)
		}
	}
	walk(rootID, "", nodes)
	return out
}
