package host

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/framefold/instancer/internal/document"
	"github.com/framefold/instancer/internal/layout"
)

// DocHost implements all three capabilities over a loaded document tree.
// It mutates the tree in memory only; saving is the caller's concern.
type DocHost struct {
	doc *document.Document
}

// NewDocHost wraps a loaded document.
func NewDocHost(doc *document.Document) *DocHost {
	return &DocHost{doc: doc}
}

// ComponentSets returns the component sets among the page's direct
// children, in document order.
func (h *DocHost) ComponentSets(page *document.Node) []*document.Node {
	return page.ChildrenOfType(document.TypeComponentSet)
}

// Materialize clones the component with the given id into a detached
// instance node: fresh ids throughout, top node typed INSTANCE with
// ComponentID pointing back at the source member.
func (h *DocHost) Materialize(ctx context.Context, memberID, name string) (*document.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := h.doc.Find(memberID)
	if src == nil {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, memberID)
	}
	if src.Type != document.TypeComponent {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotComponent, memberID, src.Type)
	}

	inst := cloneSubtree(src)
	inst.Type = document.TypeInstance
	inst.ComponentID = memberID
	inst.Name = name
	inst.VariantProperties = nil
	// Position is owned by the container's auto-layout.
	inst.X, inst.Y = 0, 0
	return inst, nil
}

// Provision creates or replaces the plan's container among the page's
// children. Replacement keeps the node (and thus its position, already
// folded into the plan) but drops all previous children, so a re-run
// replaces output instead of merging into it.
func (h *DocHost) Provision(page *document.Node, plan layout.Plan) *document.Node {
	container := page.FindChild(plan.ContainerName, document.TypeFrame)
	if container == nil {
		container = &document.Node{
			ID:   uuid.NewString(),
			Name: plan.ContainerName,
			Type: document.TypeFrame,
		}
		page.AppendChild(container)
	}

	container.X = plan.X
	container.Y = plan.Y
	container.LayoutMode = plan.Mode
	container.ItemSpacing = plan.Spacing
	container.Padding = plan.Padding
	if plan.Wrap {
		container.LayoutWrap = document.WrapWrap
		container.Width = plan.MaxWidth
	} else {
		container.LayoutWrap = document.WrapNone
	}
	container.Children = nil
	return container
}

// Remove deletes the named generated container from the page.
func (h *DocHost) Remove(page *document.Node, name string) bool {
	container := page.FindChild(name, document.TypeFrame)
	if container == nil {
		return false
	}
	return page.RemoveChild(container.ID)
}

// cloneSubtree deep-copies a node and its children with fresh ids.
func cloneSubtree(n *document.Node) *document.Node {
	c := *n
	c.ID = uuid.NewString()
	if len(n.VariantProperties) > 0 {
		c.VariantProperties = append(document.PropertySet(nil), n.VariantProperties...)
	}
	c.Children = nil
	for _, child := range n.Children {
		c.Children = append(c.Children, cloneSubtree(child))
	}
	return &c
}
