package trellis

// container holds an ordered list of child views. Order is both visual and
// traversal order. Duplicates are not filtered; removal matches by ID.
type container struct {
	children []View
}

func (c *container) appendChild(v View) {
	c.children = append(c.children, v)
}

// removeChild removes the first child whose ID is id and returns it.
// Returns nil if no child matches.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (c *container) removeChild(id ID) View {
	for i, v := range c.children {
		if v.ID() == id {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return v
		}
	}
	return nil
}

func (c *container) renderChildren(vp *Viewport) {
	for _, child := range c.children {
		child.render(vp)
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (c *container) Children() []View {
	return c.children
}

// NumChildren returns the number of children.
func (c *container) NumChildren() int {
	return len(c.children)
}

// ChildAt returns the child at the given index.
func (c *container) ChildAt(index int) View {
	return c.children[index]
}
