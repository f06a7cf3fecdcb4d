package trellis

// Button is a clickable control. DidClick reports the result of the most
// recent render only; OnClick, when set, is queued on the viewport and runs
// after the render pass completes.
type Button struct {
	id ID

	Title   string
	Size    Size
	OnClick func()

	didClick bool
}

// NewButton creates a button. Size zero lets the backend fit it to the title.
func NewButton(title string, size Size) *Button {
	return &Button{id: nextID(), Title: title, Size: size}
}

// ID returns the button's identity.
func (b *Button) ID() ID { return b.id }

// Kind returns KindButton.
func (b *Button) Kind() ViewKind { return KindButton }

// DidClick reports whether the button was activated during the last render.
func (b *Button) DidClick() bool { return b.didClick }

func (b *Button) render(vp *Viewport) {
	be := vp.backend
	vp.stats.Views++

	be.PushID(b.id)
	b.didClick = be.Button(b.Title, b.Size)
	be.PopID()

	if b.didClick && b.OnClick != nil {
		vp.Enqueue(b.OnClick)
	}
}
