package document

// Node types used by the scan and populate pipeline. The document may
// contain other types; they are preserved but otherwise ignored.
const (
	TypeDocument     = "DOCUMENT"
	TypePage         = "PAGE"
	TypeFrame        = "FRAME"
	TypeComponentSet = "COMPONENT_SET"
	TypeComponent    = "COMPONENT"
	TypeInstance     = "INSTANCE"
)

// Layout modes for auto-layout frames.
const (
	LayoutNone       = "NONE"
	LayoutHorizontal = "HORIZONTAL"
	LayoutVertical   = "VERTICAL"
)

// Layout wrap values.
const (
	WrapNone = "NO_WRAP"
	WrapWrap = "WRAP"
)

// Node is one element of the document tree. Positions are absolute within
// the owning page; sizes are in document units.
type Node struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	ComponentID string  `json:"componentId,omitempty"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`

	// Auto-layout fields; meaningful on frames only.
	LayoutMode  string  `json:"layoutMode,omitempty"`
	LayoutWrap  string  `json:"layoutWrap,omitempty"`
	ItemSpacing float64 `json:"itemSpacing,omitempty"`
	Padding     float64 `json:"padding,omitempty"`

	// VariantProperties carries the structured variant attributes of a
	// component, in document order.
	VariantProperties PropertySet `json:"variantProperties,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// ChildrenOfType returns the direct children with the given node type,
// in document order.
func (n *Node) ChildrenOfType(nodeType string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Type == nodeType {
			out = append(out, c)
		}
	}
	return out
}

// FindChild returns the first direct child with the given name and type,
// or nil.
func (n *Node) FindChild(name, nodeType string) *Node {
	for _, c := range n.Children {
		if c.Name == name && c.Type == nodeType {
			return c
		}
	}
	return nil
}

// AppendChild adds c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	n.Children = append(n.Children, c)
}

// RemoveChild removes the direct child with the given id. Reports whether
// a child was removed.
func (n *Node) RemoveChild(id string) bool {
	for i, c := range n.Children {
		if c.ID == id {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return true
		}
	}
	return false
}

// Find walks the subtree rooted at n (including n itself) and returns the
// first node with the given id, or nil.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if hit := c.Find(id); hit != nil {
			return hit
		}
	}
	return nil
}
