package xmltree

// Node is one element of a parsed tree.
// Attribute names can legally repeat on a single element, so every attribute keeps an ordered slice
// of values; lookups through Attr only ever see the first one.
type Node struct {
	Name     string
	Attrs    map[string][]string
	Children []*Node
}

// NewNode creates an empty node with the given name.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Attrs: make(map[string][]string),
	}
}

// AddAttr appends a value to the named attribute.
func (n *Node) AddAttr(name, value string) {
	n.Attrs[name] = append(n.Attrs[name], value)
}

// Attr returns the first value recorded for the attribute.
func (n *Node) Attr(name string) (string, bool) {
	values := n.Attrs[name]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Values returns every value recorded for the attribute, in document order.
func (n *Node) Values(name string) []string {
	return n.Attrs[name]
}

// Child returns the first direct child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ChildrenOf returns the children of the first direct child named name.
// It returns nil when no such child exists.
func (n *Node) ChildrenOf(name string) []*Node {
	c, ok := n.Child(name)
	if !ok {
		return nil
	}
	return c.Children
}

// Append attaches child as the last child of n.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}
