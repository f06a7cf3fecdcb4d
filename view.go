package trellis

// View is anything the view tree can render and identify. The variant set
// is closed: Panel, Button, Text and TextInput are the only implementations.
type View interface {
	ID() ID
	Kind() ViewKind

	// render re-declares the view to the viewport's backend. Called once per
	// frame by the viewport (top-level panels) or by the containing panel.
	render(vp *Viewport)
}

var (
	_ View = (*Panel)(nil)
	_ View = (*Button)(nil)
	_ View = (*Text)(nil)
	_ View = (*TextInput)(nil)
)

// disposeView tears down backend resources held by v and, for panels, by
// its whole subtree.
func disposeView(v View) {
	switch v := v.(type) {
	case *Panel:
		v.dispose()
	case *TextInput:
		v.Release()
	}
}
