package events

// Element is the identity of a rendered node. Patterns only compare elements
// and ask containers whether they contain a target; they never inspect them.
type Element interface {
	ElementID() string
	Contains(other Element) bool
}

// Focusable is implemented by elements that can take keyboard focus. In
// roving focus mode the list behavior focuses the active item's element.
type Focusable interface {
	Focus()
}

// Child is implemented by elements that know the element they sit in.
type Child interface {
	ParentElement() Element
}

// Node is a minimal Element implementation forming a tree through
// non-owning parent pointers.
type Node struct {
	id      string
	parent  *Node
	focused func(*Node)
}

// NewNode creates a node under parent (nil for a root).
func NewNode(id string, parent *Node) *Node {
	n := &Node{id: id, parent: parent}
	if parent != nil {
		n.focused = parent.focused
	}
	return n
}

// OnFocus registers fn to run when n or any node created under it later is
// focused.
func (n *Node) OnFocus(fn func(*Node)) { n.focused = fn }

func (n *Node) ElementID() string {
	if n == nil {
		return ""
	}
	return n.id
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) ParentElement() Element {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent
}

// Contains reports whether other is n or one of its descendants. Foreign
// elements are followed upwards through Child.
func (n *Node) Contains(other Element) bool {
	if n == nil {
		return false
	}
	for cur := other; !isNil(cur); {
		if o, ok := cur.(*Node); ok && o == n {
			return true
		}
		c, ok := cur.(Child)
		if !ok {
			return false
		}
		cur = c.ParentElement()
	}
	return false
}

// Focus reports the node to its focus callback.
func (n *Node) Focus() {
	if n != nil && n.focused != nil {
		n.focused(n)
	}
}

// SameElement reports whether a and b are the same element. Nil interfaces
// and typed nils both count as "no element".
func SameElement(a, b Element) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	return a == b
}

// Within reports whether target is container or inside it.
func Within(container, target Element) bool {
	if isNil(container) || isNil(target) {
		return false
	}
	return container == target || container.Contains(target)
}

func isNil(e Element) bool {
	if e == nil {
		return true
	}
	if n, ok := e.(*Node); ok && n == nil {
		return true
	}
	return false
}
