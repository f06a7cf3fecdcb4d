package trellis

// TextInput is an editable text control. Its contents live in a backend
// buffer that is acquired on first render and released by Release (or when
// a containing panel is destroyed).
type TextInput struct {
	id ID

	Title        string
	Size         Size
	Multiline    bool
	OnTextChange func()

	didTextChange bool

	buf     BufferHandle
	backend Backend // owner of buf
}

// NewTextInput creates a single-line text input. Set Multiline before the
// first frame for a multi-line editor.
func NewTextInput(title string, size Size) *TextInput {
	return &TextInput{id: nextID(), Title: title, Size: size}
}

// ID returns the input's identity.
func (t *TextInput) ID() ID { return t.id }

// Kind returns KindTextInput.
func (t *TextInput) Kind() ViewKind { return KindTextInput }

// DidTextChange reports whether the contents changed during the last render.
func (t *TextInput) DidTextChange() bool { return t.didTextChange }

// Text decodes the current buffer contents. Returns "" before the first
// render and after Release.
func (t *TextInput) Text() string {
	if t.buf == 0 {
		return ""
	}
	return t.backend.ReadTextBuffer(t.buf)
}

// Release returns the backing buffer to the backend. No-op if no buffer is
// held. Rendering the input again acquires a fresh, empty buffer.
func (t *TextInput) Release() {
	if t.buf == 0 {
		return
	}
	t.backend.ReleaseTextBuffer(t.buf)
	t.buf = 0
	t.backend = nil
	t.didTextChange = false
}

func (t *TextInput) render(vp *Viewport) {
	b := vp.backend
	vp.stats.Views++

	b.PushID(t.id)
	if t.buf == 0 {
		t.buf = b.AcquireTextBuffer()
		t.backend = b
	}
	t.didTextChange = b.InputText(t.Title, t.buf, t.Size, t.Multiline)
	b.PopID()

	if t.didTextChange && t.OnTextChange != nil {
		vp.Enqueue(t.OnTextChange)
	}
}
