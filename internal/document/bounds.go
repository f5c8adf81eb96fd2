package document

// Rect is an axis-aligned bounding box in page coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rect covers no area.
func (r Rect) Empty() bool { return r.Width <= 0 && r.Height <= 0 }

// Union returns the smallest rect covering both r and o. An empty rect is
// the identity element.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), o.Right()) - x,
		Height: max(r.Bottom(), o.Bottom()) - y,
	}
}

// Bounds returns the node's own bounding box.
func (n *Node) Bounds() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// ContentBounds returns the union of the bounding boxes of n's direct
// children, skipping any child whose id is in exclude. Zero rect when the
// node has no (non-excluded) children.
func (n *Node) ContentBounds(exclude ...string) Rect {
	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	var r Rect
	for _, c := range n.Children {
		if skip[c.ID] {
			continue
		}
		r = r.Union(c.Bounds())
	}
	return r
}
