package trellis

// Text draws a string verbatim. It captures no interaction.
type Text struct {
	id ID

	Text string
}

// NewText creates a text view.
func NewText(text string) *Text {
	return &Text{id: nextID(), Text: text}
}

// ID returns the text view's identity.
func (t *Text) ID() ID { return t.id }

// Kind returns KindText.
func (t *Text) Kind() ViewKind { return KindText }

func (t *Text) render(vp *Viewport) {
	b := vp.backend
	vp.stats.Views++

	b.PushID(t.id)
	b.Text(t.Text)
	b.PopID()
}
