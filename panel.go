package trellis

// Panel groups views into a region. A parentless panel is a top-level
// window registered with its Viewport; a parented panel is a child region
// drawn inside its parent's area.
//
// A panel lives in exactly one place: the viewport's top-level list or one
// parent's child list. The parent link is a handle resolved through the
// viewport, so a child never keeps its parent alive.
type Panel struct {
	container

	id     ID
	vp     *Viewport
	parent ID

	Title string
	// Size applies when the panel is drawn as a child region.
	Size   Size
	Border bool
	Flags  WindowFlags

	destroyed bool
}

// NewPanel creates a top-level panel and registers it with vp. It will be
// rendered on every AdvanceFrame until it is appended to another panel or
// destroyed.
func (vp *Viewport) NewPanel(title string, size Size) *Panel {
	p := &Panel{id: nextID(), vp: vp, Title: title, Size: size}
	vp.live[p.id] = p
	vp.registerTopLevel(p)
	return p
}

// ID returns the panel's identity.
func (p *Panel) ID() ID { return p.id }

// Kind returns KindPanel.
func (p *Panel) Kind() ViewKind { return KindPanel }

// Viewport returns the viewport the panel was created in.
func (p *Panel) Viewport() *Viewport { return p.vp }

// Parent returns the panel currently holding p, or nil for a top-level
// panel. Also nil once the parent has been destroyed.
func (p *Panel) Parent() *Panel {
	if p.parent == 0 {
		return nil
	}
	return p.vp.live[p.parent]
}

// IsTopLevel reports whether p is rendered directly by its viewport.
func (p *Panel) IsTopLevel() bool {
	return p.parent == 0 && !p.destroyed
}

// IsDestroyed returns true if Destroy has been called on p or on one of its
// ancestors.
func (p *Panel) IsDestroyed() bool {
	return p.destroyed
}

// Append adds v at the end of p's children.
// If v is a panel it is first detached from wherever it currently lives
// (its previous parent or the top-level list), so it renders exactly once.
// Panics if v is nil, if p or v is a destroyed panel, if v is a panel from
// another viewport, or if v is p or one of p's ancestors (cycle).
func (p *Panel) Append(v View) {
	if v == nil {
		panic("trellis: cannot append nil view")
	}
	checkDestroyed(p, "Append to")
	if child, ok := v.(*Panel); ok {
		checkDestroyed(child, "Append of")
		if child.vp != p.vp {
			panic("trellis: cannot append a panel from another viewport")
		}
		if isAncestor(child, p) {
			panic("trellis: appending panel would create a cycle")
		}
		child.detach()
		child.parent = p.id
	}
	p.appendChild(v)
	if p.vp.debug {
		debugWarnShape(p)
	}
}

// Remove detaches the first child whose ID matches v's. No-op if v is not
// a child of p. A removed panel is not destroyed: it becomes a top-level
// panel of the viewport again. Panics if p has been destroyed.
func (p *Panel) Remove(v View) {
	if v == nil {
		return
	}
	checkDestroyed(p, "Remove from")
	removed := p.removeChild(v.ID())
	if child, ok := removed.(*Panel); ok && child.parent == p.id {
		child.parent = 0
		p.vp.registerTopLevel(child)
	}
}

// Destroy removes p from its parent (or from the top-level list) and
// disposes its subtree: nested panels are marked destroyed and text inputs
// release their buffers. Calling Destroy again is a no-op.
func (p *Panel) Destroy() {
	if p.destroyed {
		return
	}
	if parent := p.Parent(); parent != nil {
		parent.removeChild(p.id)
	} else if p.parent == 0 {
		p.vp.unregisterTopLevel(p)
	}
	p.dispose()
}

func (p *Panel) dispose() {
	p.destroyed = true
	delete(p.vp.live, p.id)
	for _, child := range p.children {
		disposeView(child)
	}
	p.children = nil
	p.parent = 0
}

// detach removes p from its current owner without destroying it.
func (p *Panel) detach() {
	if p.parent == 0 {
		p.vp.unregisterTopLevel(p)
		return
	}
	if parent := p.Parent(); parent != nil {
		parent.removeChild(p.id)
	}
	p.parent = 0
}

func (p *Panel) render(vp *Viewport) {
	b := vp.backend
	nested := p.parent != 0
	vp.stats.Views++

	b.PushID(p.id)
	if nested {
		b.BeginChild(p.Title, p.Size, p.Border, p.Flags)
	} else {
		b.BeginWindow(p.Title, p.Flags)
	}
	p.renderChildren(vp)
	if nested {
		b.EndChild()
	} else {
		b.EndWindow()
	}
	b.PopID()
}

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Panel) bool {
	for q := node; q != nil; q = q.Parent() {
		if q == candidate {
			return true
		}
	}
	return false
}
